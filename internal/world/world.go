// Package world assembles the immutable tile grid from the noise synthesizer
// and the biome classifier.
package world

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"planetforge/internal/biome"
	"planetforge/internal/noise"
	"planetforge/internal/planet"
)

// Production grid dimensions. Tests and diagnostic tools may generate
// smaller grids through Config.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Tile is one grid cell. Created once during assembly, never mutated after.
type Tile struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Elevation   float64     `json:"elevation"`
	Moisture    float64     `json:"moisture"`
	Temperature float64     `json:"temperature"`
	Biome       biome.Biome `json:"biome"`
}

// World is an immutable snapshot of one generation run. It is handed by
// reference to the renderer and the exporters; none of them mutate it.
type World struct {
	Spec    planet.Spec
	Derived planet.DerivedParams
	Width   int
	Height  int

	tiles []Tile // row-major
}

// Config controls a generation run.
type Config struct {
	Spec    planet.Spec
	Width   int
	Height  int
	Workers int // parallel row bands; defaults to GOMAXPROCS
}

// DefaultConfig returns the production configuration for the given spec.
func DefaultConfig(spec planet.Spec) Config {
	return Config{Spec: spec, Width: DefaultWidth, Height: DefaultHeight}
}

// InvariantViolationError reports a synthesized or classified value outside
// its documented contract. It is a programming error: the run aborts and no
// output files are written.
type InvariantViolationError struct {
	Row, Col int
	Detail   string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation at tile (%d,%d): %s", e.Row, e.Col, e.Detail)
}

// Generate runs the full pipeline for the production 1920x1080 grid.
func Generate(spec planet.Spec) (*World, error) {
	return GenerateWithConfig(DefaultConfig(spec))
}

// GenerateWithConfig validates the spec, derives the physical parameters and
// fills the grid. Tile synthesis is partitioned by row range across workers;
// each worker owns a disjoint slice of the tile buffer, so no locking is
// needed. The result is deterministic regardless of worker count.
func GenerateWithConfig(cfg Config) (*World, error) {
	if err := cfg.Spec.Validate(); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &planet.InvalidParameterError{
			Field:  "grid",
			Value:  fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
			Reason: "dimensions must be positive",
		}
	}
	derived, err := planet.Derive(cfg.Spec.CircumferenceKm)
	if err != nil {
		return nil, err
	}

	w := &World{
		Spec:    cfg.Spec,
		Derived: derived,
		Width:   cfg.Width,
		Height:  cfg.Height,
		tiles:   make([]Tile, cfg.Width*cfg.Height),
	}

	synth := noise.NewSynthesizer(cfg.Width, cfg.Height, cfg.Spec, derived)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Height {
		workers = cfg.Height
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	rowsPerBand := (cfg.Height + workers - 1) / workers
	for band := 0; band < workers; band++ {
		r0 := band * rowsPerBand
		r1 := r0 + rowsPerBand
		if r1 > cfg.Height {
			r1 = cfg.Height
		}
		if r0 >= r1 {
			continue
		}
		wg.Add(1)
		go func(band, r0, r1 int) {
			defer wg.Done()
			errs[band] = w.fillRows(synth, r0, r1)
		}(band, r0, r1)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}

// fillRows synthesizes and classifies tiles for rows [r0, r1).
func (w *World) fillRows(synth *noise.Synthesizer, r0, r1 int) error {
	a := w.Spec.Archetype
	for row := r0; row < r1; row++ {
		for col := 0; col < w.Width; col++ {
			s := synth.At(row, col)
			b := biome.Classify(biome.Climate{
				RelElevation: s.RelElevation,
				Moisture:     s.Moisture,
				Temperature:  s.Temperature,
				VolcanicZone: s.VolcanicZone,
			}, a, w.Spec.VolcanicIntensity)

			tile := Tile{
				Row:         row,
				Col:         col,
				Elevation:   s.Elevation,
				Moisture:    s.Moisture,
				Temperature: s.Temperature,
				Biome:       b,
			}
			if err := w.checkTile(tile, s); err != nil {
				return err
			}
			w.tiles[row*w.Width+col] = tile
		}
	}
	return nil
}

// checkTile verifies the per-tile contract: finite in-range fields, a biome
// the archetype permits, and the sea-level boundary rule.
func (w *World) checkTile(t Tile, s noise.Sample) error {
	inRange := func(v, lo, hi float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= lo && v <= hi
	}
	switch {
	case !inRange(t.Elevation, -1, 1):
		return &InvariantViolationError{t.Row, t.Col, fmt.Sprintf("elevation %v out of [-1,1]", t.Elevation)}
	case !inRange(t.Moisture, -1, 1):
		return &InvariantViolationError{t.Row, t.Col, fmt.Sprintf("moisture %v out of [-1,1]", t.Moisture)}
	case !inRange(t.Temperature, -1, 1):
		return &InvariantViolationError{t.Row, t.Col, fmt.Sprintf("temperature %v out of [-1,1]", t.Temperature)}
	}
	a := w.Spec.Archetype
	if !biome.Permitted(t.Biome, a) {
		return &InvariantViolationError{t.Row, t.Col, fmt.Sprintf("biome %s not permitted for %s", t.Biome, a)}
	}
	// Barren has no water family; its below-sea tiles route to land by design.
	if a != planet.Barren {
		underwater := s.RelElevation < 0
		if underwater != biome.IsWater(t.Biome, a) {
			return &InvariantViolationError{t.Row, t.Col, fmt.Sprintf(
				"sea-level boundary: rel elevation %v with biome %s", s.RelElevation, t.Biome)}
		}
	}
	return nil
}

// Tiles exposes the backing tile slice in row-major order. Callers must
// treat it as read-only.
func (w *World) Tiles() []Tile { return w.tiles }

// At returns the tile at (row, col).
func (w *World) At(row, col int) Tile { return w.tiles[row*w.Width+col] }

// RelElevationAt returns the sea-level-relative elevation at (row, col),
// clamped the same way the classifier saw it.
func (w *World) RelElevationAt(row, col int) float64 {
	e := w.tiles[row*w.Width+col].Elevation - w.Spec.SeaLevel
	if e < -1 {
		return -1
	}
	if e > 1 {
		return 1
	}
	return e
}
