package export

import (
	"fmt"
	"image/color"
	"io"

	"planetforge/internal/render"
)

// Rect is one run-length-encoded horizontal rectangle of the vector output.
// Height is always one pixel row.
type Rect struct {
	X, Y, W int
	Color   color.RGBA
}

// VectorRows re-expresses each scene row as the minimal sequence of
// same-colour rectangles, in row order. Repainting the rectangles
// reproduces the raster buffer exactly.
func VectorRows(s *render.Scene) [][]Rect {
	rows := make([][]Rect, s.Height)
	for row := 0; row < s.Height; row++ {
		var runs []Rect
		runStart := 0
		runColor := s.At(row, 0)
		for col := 1; col <= s.Width; col++ {
			if col < s.Width && s.At(row, col) == runColor {
				continue
			}
			runs = append(runs, Rect{X: runStart, Y: row, W: col - runStart, Color: runColor})
			if col < s.Width {
				runStart = col
				runColor = s.At(row, col)
			}
		}
		rows[row] = runs
	}
	return rows
}

// WriteSVG emits the scene as an SVG of run-length-encoded rects. The RLE
// keeps the file a couple of orders of magnitude smaller than one rect per
// pixel.
func WriteSVG(path string, s *render.Scene) error {
	return writeAtomic(path, func(w io.Writer) error {
		return encodeSVG(w, s)
	})
}

func encodeSVG(w io.Writer, s *render.Scene) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		s.Width, s.Height, s.Width, s.Height); err != nil {
		return err
	}
	for _, row := range VectorRows(s) {
		for _, r := range row {
			if _, err := fmt.Fprintf(w,
				"<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"1\" fill=\"#%02X%02X%02X\"/>\n",
				r.X, r.Y, r.W, r.Color.R, r.Color.G, r.Color.B); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
