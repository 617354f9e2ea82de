package export

import (
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"

	"planetforge/internal/planet"
	"planetforge/internal/world"
)

// Document is the JSON export shape. Per-tile fields plus the planet
// parameters; noise_scale and mountain_blend are derivable from the
// circumference the same way the generator derives them.
type Document struct {
	Width             int              `json:"width"`
	Height            int              `json:"height"`
	Seed              int64            `json:"seed"`
	Planet            planet.Archetype `json:"planet"`
	SeaLevel          float64          `json:"sea_level"`
	VolcanicIntensity float64          `json:"volcanic_intensity"`
	CircumferenceKm   float64          `json:"circumference_km"`
	GravityModifier   float64          `json:"gravity_modifier"`
	Tiles             []world.Tile     `json:"tiles"`
}

// NewDocument snapshots a world into its export shape.
func NewDocument(w *world.World) Document {
	return Document{
		Width:             w.Width,
		Height:            w.Height,
		Seed:              w.Spec.Seed,
		Planet:            w.Spec.Archetype,
		SeaLevel:          w.Spec.SeaLevel,
		VolcanicIntensity: w.Spec.VolcanicIntensity,
		CircumferenceKm:   w.Spec.CircumferenceKm,
		GravityModifier:   w.Derived.GravityModifier,
		Tiles:             w.Tiles(),
	}
}

// WriteJSON writes the world document to path. With compress set the stream
// is zstd-encoded (callers append .zst to the path by convention).
func WriteJSON(path string, w *world.World, compress bool) error {
	doc := NewDocument(w)
	return writeAtomic(path, func(out io.Writer) error {
		if !compress {
			return json.NewEncoder(out).Encode(doc)
		}
		enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return err
		}
		if err := json.NewEncoder(enc).Encode(doc); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	})
}
