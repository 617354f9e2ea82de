//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"planetforge/internal/world"
)

type overlayMode int

const (
	overlayOff overlayMode = iota
	overlayMoisture
	overlayTemperature
	overlayElevation
)

// Overlay tints the rendered planet by one of the underlying climate fields.
// Pressing the active mode's key again switches the overlay off.
type Overlay struct {
	w     *world.World
	mode  overlayMode
	img   *ebiten.Image
	buf   []byte
	dirty bool
}

// NewOverlay constructs an overlay with no field selected.
func NewOverlay() *Overlay { return &Overlay{} }

// SetWorld points the overlay at a freshly generated world.
func (o *Overlay) SetWorld(w *world.World) {
	o.w = w
	o.dirty = true
}

// Update handles the field toggle keys.
func (o *Overlay) Update() {
	toggle := func(m overlayMode) {
		if o.mode == m {
			o.mode = overlayOff
		} else {
			o.mode = m
		}
		o.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		toggle(overlayMoisture)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		toggle(overlayTemperature)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		toggle(overlayElevation)
	}
}

// Draw paints the selected field tint over the scene.
func (o *Overlay) Draw(screen *ebiten.Image, scale float64) {
	if o.w == nil || o.mode == overlayOff {
		return
	}
	total := o.w.Width * o.w.Height
	if o.img == nil || o.img.Bounds().Dx() != o.w.Width || o.img.Bounds().Dy() != o.w.Height {
		o.img = ebiten.NewImage(o.w.Width, o.w.Height)
		o.buf = make([]byte, 4*total)
		o.dirty = true
	}
	if o.dirty {
		o.fill()
		o.img.WritePixels(o.buf)
		o.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(o.img, op)
}

func (o *Overlay) fill() {
	switch o.mode {
	case overlayMoisture:
		o.fillTint(color.RGBA{R: 64, G: 164, B: 223}, func(t world.Tile) float64 {
			return (t.Moisture + 1) / 2
		})
	case overlayTemperature:
		o.fillTint(color.RGBA{R: 230, G: 80, B: 40}, func(t world.Tile) float64 {
			return (t.Temperature + 1) / 2
		})
	case overlayElevation:
		o.fillHypsometric()
	}
}

// fillTint maps a unit-interval field to alpha and a glow-scaled tint.
func (o *Overlay) fillTint(tint color.RGBA, field func(world.Tile) float64) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, tile := range o.w.Tiles() {
		base := i * 4
		intensity := clamp01(field(tile))
		if intensity == 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := (glowBase + glowRange*math.Sqrt(intensity)) * alpha / 255
		o.buf[base+0] = scaleComponent(tint.R, glow)
		o.buf[base+1] = scaleComponent(tint.G, glow)
		o.buf[base+2] = scaleComponent(tint.B, glow)
		o.buf[base+3] = uint8(alpha)
	}
}

// fillHypsometric shades sea-level-relative elevation through the classic
// blue-green-tan ramp.
func (o *Overlay) fillHypsometric() {
	for i, tile := range o.w.Tiles() {
		base := i * 4
		rel := o.w.RelElevationAt(tile.Row, tile.Col)
		col := elevationColor((rel + 1) / 2)
		// WritePixels expects premultiplied alpha.
		glow := float64(col.A) / 255
		o.buf[base+0] = scaleComponent(col.R, glow)
		o.buf[base+1] = scaleComponent(col.G, glow)
		o.buf[base+2] = scaleComponent(col.B, glow)
		o.buf[base+3] = col.A
	}
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
