//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ScenePainter uploads a composed Scene into a single ebiten image.
type ScenePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewScenePainter allocates a painter for a w x h scene.
func NewScenePainter(w, h int) *ScenePainter {
	sp := &ScenePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Blit uploads the scene pixels and draws them onto dst at the given scale.
func (sp *ScenePainter) Blit(dst *ebiten.Image, s *Scene, scale float64) {
	if s.Width != sp.w || s.Height != sp.h {
		return
	}
	for i, c := range s.Pix {
		base := i * 4
		sp.buf[base+0] = c.R
		sp.buf[base+1] = c.G
		sp.buf[base+2] = c.B
		sp.buf[base+3] = c.A
	}
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(sp.img, op)
}

// Size returns the dimensions of the underlying image.
func (sp *ScenePainter) Size() (int, int) { return sp.w, sp.h }
