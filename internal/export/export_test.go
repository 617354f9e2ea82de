package export

import (
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"planetforge/internal/planet"
	"planetforge/internal/render"
	"planetforge/internal/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.GenerateWithConfig(world.Config{
		Spec: planet.Spec{
			Archetype:         planet.Terran,
			SeaLevel:          0.1,
			VolcanicIntensity: 0.5,
			CircumferenceKm:   planet.EarthCircumferenceKm,
			Seed:              20240817,
		},
		Width:  96,
		Height: 64,
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestVectorRowsRepaintMatchesRaster(t *testing.T) {
	s := render.Compose(testWorld(t))
	rows := VectorRows(s)
	if len(rows) != s.Height {
		t.Fatalf("got %d vector rows, want %d", len(rows), s.Height)
	}

	for row, runs := range rows {
		cursor := 0
		for _, r := range runs {
			if r.Y != row {
				t.Fatalf("run %+v filed under row %d", r, row)
			}
			if r.X != cursor {
				t.Fatalf("row %d: run starts at %d, want %d (gap or overlap)", row, r.X, cursor)
			}
			if r.W < 1 {
				t.Fatalf("row %d: empty run %+v", row, r)
			}
			for col := r.X; col < r.X+r.W; col++ {
				if s.At(row, col) != r.Color {
					t.Fatalf("pixel (%d,%d) = %v, run colour %v", row, col, s.At(row, col), r.Color)
				}
			}
			cursor += r.W
		}
		if cursor != s.Width {
			t.Fatalf("row %d: runs cover %d columns, want %d", row, cursor, s.Width)
		}
		// Minimality: adjacent runs must change colour.
		for i := 1; i < len(runs); i++ {
			if runs[i].Color == runs[i-1].Color {
				t.Fatalf("row %d: adjacent runs %d and %d share colour %v", row, i-1, i, runs[i].Color)
			}
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	s := render.Compose(testWorld(t))
	path := filepath.Join(t.TempDir(), "world.png")
	if err := WritePNG(path, s); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != s.Width || bounds.Dy() != s.Height {
		t.Fatalf("decoded %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), s.Width, s.Height)
	}
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			r, g, b, a := img.At(col, row).RGBA()
			want := s.At(row, col)
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B || uint8(a>>8) != want.A {
				t.Fatalf("pixel (%d,%d) decoded as (%d,%d,%d,%d), want %v", row, col, r>>8, g>>8, b>>8, a>>8, want)
			}
		}
	}
}

func TestJSONMatchesSchema(t *testing.T) {
	w := testWorld(t)
	path := filepath.Join(t.TempDir(), "world.json")
	if err := WriteJSON(path, w, false); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}

	schema, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", "world.schema.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := schema.Validate(doc); err != nil {
		t.Fatalf("export does not match schema: %v", err)
	}
}

func TestJSONZstdRoundTrip(t *testing.T) {
	w := testWorld(t)
	path := filepath.Join(t.TempDir(), "world.json.zst")
	if err := WriteJSON(path, w, true); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()

	var doc Document
	if err := json.NewDecoder(dec).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if doc.Width != w.Width || doc.Height != w.Height || doc.Seed != w.Spec.Seed {
		t.Fatalf("decoded header %+v does not match source world", doc)
	}
	if len(doc.Tiles) != w.Width*w.Height {
		t.Fatalf("decoded %d tiles, want %d", len(doc.Tiles), w.Width*w.Height)
	}
	for i, tile := range w.Tiles() {
		got := doc.Tiles[i]
		if got.Row != tile.Row || got.Col != tile.Col || got.Biome != tile.Biome {
			t.Fatalf("tile %d decoded as %+v, want %+v", i, got, tile)
		}
	}
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := render.Compose(testWorld(t))
	if err := WritePNG(filepath.Join(dir, "world.png"), s); err != nil {
		t.Fatal(err)
	}

	// A failing payload writer must clean up after itself.
	fail := errors.New("boom")
	err := writeAtomic(filepath.Join(dir, "broken.bin"), func(io.Writer) error { return fail })
	if !errors.Is(err, fail) {
		t.Fatalf("writeAtomic error = %v, want %v", err, fail)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "world.png" {
			t.Fatalf("unexpected leftover %q", e.Name())
		}
	}
}
