// Package render composes the cartographic scene: biome fill, iso-elevation
// contours and dotted latitude reference lines, in that z-order. Both the
// raster and the vector encoders consume the same composed buffer, so the
// two outputs can never diverge.
package render

import (
	"image/color"
	"runtime"
	"sync"

	"planetforge/internal/world"
)

// Contour lines are drawn whenever a tile and a 4-neighbour straddle one of
// these sea-level-relative elevation levels. Level 0 traces the coastline.
var contourLevels = []float64{-0.45, -0.15, 0, 0.15, 0.30, 0.45, 0.60, 0.75, 0.90}

// Fraction to darken a pixel sitting on a contour line.
const contourDarkness = 0.40

// Dash pattern for the latitude reference lines: 6 px on, 4 px off.
const (
	dashOn     = 6
	dashPeriod = 10
)

// ReferenceLine is one dotted latitude overlay row.
type ReferenceLine struct {
	LatitudeDeg float64
	Row         int
	Color       color.RGBA
}

// ReferenceLines returns the five overlay lines for a map of the given
// height: equator (red), tropics (amber) and polar circles (cyan). Rows
// follow row = round(height * (0.5 + latitude/180)); rows outside the grid
// are dropped.
func ReferenceLines(height int) []ReferenceLine {
	defs := []struct {
		lat float64
		c   color.RGBA
	}{
		{0, color.RGBA{220, 50, 50, 255}},
		{23.5, color.RGBA{220, 150, 0, 255}},
		{-23.5, color.RGBA{220, 150, 0, 255}},
		{66.5, color.RGBA{0, 200, 240, 255}},
		{-66.5, color.RGBA{0, 200, 240, 255}},
	}
	var lines []ReferenceLine
	for _, d := range defs {
		row := int(float64(height)*(0.5+d.lat/180) + 0.5)
		if row < 0 || row >= height {
			continue
		}
		lines = append(lines, ReferenceLine{LatitudeDeg: d.lat, Row: row, Color: d.c})
	}
	return lines
}

// Scene is the composed pixel-colour buffer, row-major. It is derived from a
// World and never the reverse.
type Scene struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

// At returns the pixel colour at (row, col).
func (s *Scene) At(row, col int) color.RGBA { return s.Pix[row*s.Width+col] }

// Compose builds the Scene for a world. Rows are rendered in parallel bands
// over disjoint slices of the pixel buffer.
func Compose(w *world.World) *Scene {
	s := &Scene{
		Width:  w.Width,
		Height: w.Height,
		Pix:    make([]color.RGBA, w.Width*w.Height),
	}

	refByRow := make(map[int]color.RGBA, 5)
	for _, line := range ReferenceLines(w.Height) {
		refByRow[line.Row] = line.Color
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > w.Height {
		workers = w.Height
	}
	rowsPerBand := (w.Height + workers - 1) / workers
	var wg sync.WaitGroup
	for band := 0; band < workers; band++ {
		r0 := band * rowsPerBand
		r1 := r0 + rowsPerBand
		if r1 > w.Height {
			r1 = w.Height
		}
		if r0 >= r1 {
			continue
		}
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			composeRows(s, w, refByRow, r0, r1)
		}(r0, r1)
	}
	wg.Wait()
	return s
}

func composeRows(s *Scene, w *world.World, refByRow map[int]color.RGBA, r0, r1 int) {
	for row := r0; row < r1; row++ {
		refColor, isRefRow := refByRow[row]
		for col := 0; col < w.Width; col++ {
			c := w.At(row, col).Biome.Color()
			if onContour(w, row, col) {
				c = darken(c, contourDarkness)
			}
			if isRefRow && col%dashPeriod < dashOn {
				c = refColor
			}
			s.Pix[row*s.Width+col] = c
		}
	}
}

// onContour reports whether the tile and any 4-neighbour straddle a contour
// level. This is a read-only bounded-neighbourhood lookup into the finished
// world, so render rows stay independent.
func onContour(w *world.World, row, col int) bool {
	e := w.RelElevationAt(row, col)
	neighbours := [4][2]int{{row - 1, col}, {row + 1, col}, {row, col - 1}, {row, col + 1}}
	for _, n := range neighbours {
		if n[0] < 0 || n[0] >= w.Height || n[1] < 0 || n[1] >= w.Width {
			continue
		}
		if crossesContour(e, w.RelElevationAt(n[0], n[1])) {
			return true
		}
	}
	return false
}

func crossesContour(a, b float64) bool {
	for _, lvl := range contourLevels {
		if (a < lvl) != (b < lvl) {
			return true
		}
	}
	return false
}

func darken(c color.RGBA, fraction float64) color.RGBA {
	keep := 1 - fraction
	return color.RGBA{
		R: uint8(float64(c.R) * keep),
		G: uint8(float64(c.G) * keep),
		B: uint8(float64(c.B) * keep),
		A: c.A,
	}
}
