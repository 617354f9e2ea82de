package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"planetforge/internal/noise"
	"planetforge/internal/planet"
)

// Diagnostic false-colour dumps of every intermediate field. All maps share
// the jet ramp (blue low, red high); signed fields are rescaled so 0 lands
// on green.

type fieldMap struct {
	name   string
	signed bool
	value  func(noise.Sample) float64
}

var fieldMaps = []fieldMap{
	{"field_warp_x.png", true, func(s noise.Sample) float64 { return s.WarpX }},
	{"field_warp_y.png", true, func(s noise.Sample) float64 { return s.WarpY }},
	{"field_continent.png", true, func(s noise.Sample) float64 { return s.Continent }},
	{"field_mountain.png", false, func(s noise.Sample) float64 { return s.Mountain }},
	{"field_mountain_wt.png", false, func(s noise.Sample) float64 { return s.MountainWeight }},
	{"field_elevation.png", true, func(s noise.Sample) float64 { return s.Elevation }},
	{"field_rel_elevation.png", true, func(s noise.Sample) float64 { return s.RelElevation }},
	{"field_moisture.png", true, func(s noise.Sample) float64 { return s.Moisture }},
	{"field_temperature.png", true, func(s noise.Sample) float64 { return s.Temperature }},
	{"field_volcanic_raw.png", true, func(s noise.Sample) float64 { return s.VolcanicRaw }},
	{"field_volcanic_zone.png", false, func(s noise.Sample) float64 { return s.VolcanicZone }},
}

// WriteFieldMaps re-samples the synthesizer over a width x height grid and
// writes one false-colour PNG per intermediate field into dir. The spec must
// match the generation run for the maps to correspond to the world output.
func WriteFieldMaps(dir string, width, height int, spec planet.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	derived, err := planet.Derive(spec.CircumferenceKm)
	if err != nil {
		return err
	}
	synth := noise.NewSynthesizer(width, height, spec, derived)

	imgs := make([]*image.RGBA, len(fieldMaps))
	for i := range imgs {
		imgs[i] = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			s := synth.At(row, col)
			for i, fm := range fieldMaps {
				v := fm.value(s)
				if fm.signed {
					v = (clamp(v, -1, 1) + 1) * 0.5
				}
				imgs[i].SetRGBA(col, row, jet(v))
			}
		}
	}
	for i, fm := range fieldMaps {
		img := imgs[i]
		path := filepath.Join(dir, fm.name)
		err := writeAtomic(path, func(w io.Writer) error {
			return png.Encode(w, img)
		})
		if err != nil {
			return fmt.Errorf("field map %s: %w", fm.name, err)
		}
	}
	return nil
}

// jet maps t in [0,1] onto the blue-cyan-green-yellow-red ramp using shifted
// hat functions per channel.
func jet(t float64) color.RGBA {
	t = clamp(t, 0, 1)
	r := clamp(1.5-abs(4*t-3), 0, 1)
	g := clamp(1.5-abs(4*t-2), 0, 1)
	b := clamp(1.5-abs(4*t-1), 0, 1)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
