package export

import (
	"image"
	"image/png"
	"io"

	"planetforge/internal/render"
)

// RasterImage copies the scene buffer into an RGBA image, pixel by pixel.
func RasterImage(s *render.Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			img.SetRGBA(col, row, s.At(row, col))
		}
	}
	return img
}

// WritePNG encodes the scene as a PNG at path.
func WritePNG(path string, s *render.Scene) error {
	img := RasterImage(s)
	return writeAtomic(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
