//go:build ebiten

// Package ui draws the viewer's parameter panel and field overlays on top of
// the rendered planet.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"planetforge/internal/world"
)

// HUD shows the parameters of the displayed world in a corner panel.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
	lines   []string
}

// NewHUD constructs the panel, initially visible.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// SetWorld refreshes the panel contents after a regeneration.
func (h *HUD) SetWorld(w *world.World) {
	h.lines = []string{
		fmt.Sprintf("planet        %s", w.Spec.Archetype),
		fmt.Sprintf("seed          %d", w.Spec.Seed),
		fmt.Sprintf("sea level     %+.2f", w.Spec.SeaLevel),
		fmt.Sprintf("volcanic      %.2f", w.Spec.VolcanicIntensity),
		fmt.Sprintf("circumference %.0f km", w.Spec.CircumferenceKm),
		fmt.Sprintf("gravity       %.2fg", w.Derived.GravityModifier),
		"",
		"R regen   S reseed   H hide panel",
		"1 moisture  2 temperature  3 elevation",
	}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel anchored to the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	panelW := width + 2*panelPadding
	panelH := len(h.lines)*lineHeight + 2*panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.ColorM.Scale(0.05, 0.05, 0.07, 0.8)
	screen.DrawImage(h.pixel, op)

	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

const (
	panelPadding = 10
	lineHeight   = 15
)
