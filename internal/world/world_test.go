package world

import (
	"errors"
	"math"
	"testing"

	"planetforge/internal/biome"
	"planetforge/internal/planet"
)

func testConfig(a planet.Archetype, seed int64) Config {
	return Config{
		Spec: planet.Spec{
			Archetype:         a,
			SeaLevel:          0.1,
			VolcanicIntensity: 0.5,
			CircumferenceKm:   planet.EarthCircumferenceKm,
			Seed:              seed,
		},
		Width:  96,
		Height: 64,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(planet.Terran, 4242)

	first, err := GenerateWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Worker partitioning must not leak into the result.
	cfg.Workers = 1
	serial, err := GenerateWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	a, b, c := first.Tiles(), second.Tiles(), serial.Tiles()
	if len(a) != cfg.Width*cfg.Height {
		t.Fatalf("tile count %d, want %d", len(a), cfg.Width*cfg.Height)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d differs between identical runs: %+v vs %+v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			t.Fatalf("tile %d differs between parallel and serial runs", i)
		}
	}
}

func TestGenerateRejectsInvalidSpec(t *testing.T) {
	cfg := testConfig(planet.Terran, 1)
	cfg.Spec.CircumferenceKm = -10

	_, err := GenerateWithConfig(cfg)
	var invalid *planet.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidParameterError", err)
	}

	cfg = testConfig(planet.Terran, 1)
	cfg.Width = 0
	if _, err := GenerateWithConfig(cfg); !errors.As(err, &invalid) {
		t.Fatalf("zero width error = %v, want InvalidParameterError", err)
	}
}

func TestDefaultConfigDimensions(t *testing.T) {
	cfg := DefaultConfig(planet.Spec{})
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Fatalf("default grid %dx%d, want 1920x1080", cfg.Width, cfg.Height)
	}
}

func TestFieldBoundsAndPermittedBiomes(t *testing.T) {
	for _, a := range planet.Archetypes() {
		w, err := GenerateWithConfig(testConfig(a, 777))
		if err != nil {
			t.Fatalf("archetype %s: %v", a, err)
		}
		for _, tile := range w.Tiles() {
			for name, v := range map[string]float64{
				"elevation":   tile.Elevation,
				"moisture":    tile.Moisture,
				"temperature": tile.Temperature,
			} {
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("archetype %s: %s %v out of range at (%d,%d)", a, name, v, tile.Row, tile.Col)
				}
			}
			if !biome.Permitted(tile.Biome, a) {
				t.Fatalf("archetype %s emitted %s", a, tile.Biome)
			}
		}
	}
}

func TestSeaLevelBoundary(t *testing.T) {
	for _, a := range []planet.Archetype{planet.Terran, planet.Volcanic, planet.Frozen, planet.Caustic} {
		w, err := GenerateWithConfig(testConfig(a, 31337))
		if err != nil {
			t.Fatal(err)
		}
		for _, tile := range w.Tiles() {
			underwater := w.RelElevationAt(tile.Row, tile.Col) < 0
			if underwater != biome.IsWater(tile.Biome, a) {
				t.Fatalf("archetype %s: tile (%d,%d) rel elevation %v classified as %s",
					a, tile.Row, tile.Col, w.RelElevationAt(tile.Row, tile.Col), tile.Biome)
			}
		}
	}
}

func TestBarrenHasNoWaterBiomes(t *testing.T) {
	for _, seed := range []int64{1, 99, 31337} {
		cfg := testConfig(planet.Barren, seed)
		cfg.Spec.SeaLevel = 0.5 // drown most of the planet on any other archetype
		w, err := GenerateWithConfig(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for _, tile := range w.Tiles() {
			for _, a := range planet.Archetypes() {
				if biome.IsWater(tile.Biome, a) {
					t.Fatalf("seed %d: barren tile (%d,%d) got water biome %s", seed, tile.Row, tile.Col, tile.Biome)
				}
			}
		}
	}
}

func TestZeroVolcanicIntensityYieldsNoVolcanoes(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 1337} {
		cfg := testConfig(planet.Terran, seed)
		cfg.Spec.VolcanicIntensity = 0
		w, err := GenerateWithConfig(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for _, tile := range w.Tiles() {
			switch tile.Biome {
			case biome.Volcano, biome.LavaField, biome.AshLand:
				t.Fatalf("seed %d: volcanic biome %s at zero intensity", seed, tile.Biome)
			}
		}
	}
}

func TestFullVolcanicIntensityConvertsMostRidges(t *testing.T) {
	qualifying, volcanic := 0, 0
	for _, seed := range []int64{5, 17, 23} {
		cfg := testConfig(planet.Terran, seed)
		cfg.Spec.SeaLevel = -0.5 // expose plenty of high terrain
		cfg.Spec.VolcanicIntensity = 1
		w, err := GenerateWithConfig(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for _, tile := range w.Tiles() {
			if w.RelElevationAt(tile.Row, tile.Col) <= 0.7 {
				continue
			}
			qualifying++
			switch tile.Biome {
			case biome.Volcano, biome.LavaField, biome.AshLand:
				volcanic++
			}
		}
	}
	if qualifying == 0 {
		t.Fatal("no qualifying high-elevation tiles generated")
	}
	if frac := float64(volcanic) / float64(qualifying); frac < 0.6 {
		t.Fatalf("volcanic override hit %.0f%% of %d qualifying ridge tiles, want a clear majority",
			frac*100, qualifying)
	}
}

func TestTilesCarryGridCoordinates(t *testing.T) {
	w, err := GenerateWithConfig(testConfig(planet.Terran, 8))
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < w.Height; row += 13 {
		for col := 0; col < w.Width; col += 11 {
			tile := w.At(row, col)
			if tile.Row != row || tile.Col != col {
				t.Fatalf("tile at (%d,%d) carries coordinates (%d,%d)", row, col, tile.Row, tile.Col)
			}
		}
	}
}
