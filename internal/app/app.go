//go:build ebiten

// Package app adapts a generated world to the ebiten.Game interface for the
// interactive viewer build.
package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"planetforge/internal/render"
	"planetforge/internal/ui"
	"planetforge/internal/world"
)

// Game displays the composed scene for one world and regenerates on demand.
type Game struct {
	cfg     world.Config
	scene   *render.Scene
	painter *render.ScenePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	scale   float64
}

// New generates the initial world and prepares the painter.
func New(cfg world.Config, scale float64) (*Game, error) {
	g := &Game{cfg: cfg, scale: scale}
	g.painter = render.NewScenePainter(cfg.Width, cfg.Height)
	g.hud = ui.NewHUD()
	g.overlay = ui.NewOverlay()
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) regenerate() error {
	w, err := world.GenerateWithConfig(g.cfg)
	if err != nil {
		return err
	}
	g.scene = render.Compose(w)
	g.hud.SetWorld(w)
	g.overlay.SetWorld(w)
	return nil
}

// Update handles key input: R regenerates the same seed, S rolls a fresh
// one, Q/Escape quits. The HUD and overlay consume their own keys.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenerate(); err != nil {
			return fmt.Errorf("regenerate: %w", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg.Spec.Seed = time.Now().UnixNano()
		if err := g.regenerate(); err != nil {
			return fmt.Errorf("regenerate: %w", err)
		}
	}
	g.hud.Update()
	g.overlay.Update()
	return nil
}

// Draw renders the current scene, then the field overlay, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scene, g.scale)
	g.overlay.Draw(screen, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(float64(g.cfg.Width) * g.scale), int(float64(g.cfg.Height) * g.scale)
}
