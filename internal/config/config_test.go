package config

import (
	"os"
	"path/filepath"
	"testing"

	"planetforge/internal/planet"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planet.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndApplyFullDocument(t *testing.T) {
	path := writeDoc(t, `
planet: frozen
sea_level: -0.2
volcanic_intensity: 0.15
circumference_km: 30000
seed: 424242
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	spec := planet.Spec{Archetype: planet.Terran, SeaLevel: 0.1, CircumferenceKm: planet.EarthCircumferenceKm, Seed: 1}
	if err := doc.Apply(&spec); err != nil {
		t.Fatal(err)
	}
	if spec.Archetype != planet.Frozen {
		t.Fatalf("archetype = %v, want frozen", spec.Archetype)
	}
	if spec.SeaLevel != -0.2 || spec.VolcanicIntensity != 0.15 || spec.CircumferenceKm != 30000 || spec.Seed != 424242 {
		t.Fatalf("merged spec %+v does not match document", spec)
	}
}

func TestApplyKeepsUnsetFields(t *testing.T) {
	path := writeDoc(t, "sea_level: 0\n")
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	spec := planet.Spec{
		Archetype:         planet.Caustic,
		SeaLevel:          0.25,
		VolcanicIntensity: 0.9,
		CircumferenceKm:   12345,
		Seed:              77,
	}
	if err := doc.Apply(&spec); err != nil {
		t.Fatal(err)
	}
	// An explicit zero in the document still wins over the caller's value.
	if spec.SeaLevel != 0 {
		t.Fatalf("sea level = %v, want explicit 0 from document", spec.SeaLevel)
	}
	if spec.Archetype != planet.Caustic || spec.VolcanicIntensity != 0.9 || spec.CircumferenceKm != 12345 || spec.Seed != 77 {
		t.Fatalf("unset fields changed: %+v", spec)
	}
}

func TestApplyRejectsUnknownArchetype(t *testing.T) {
	path := writeDoc(t, "planet: gas-giant\n")
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	spec := planet.Spec{}
	if err := doc.Apply(&spec); err == nil {
		t.Fatal("unknown archetype accepted")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeDoc(t, "planet: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed document accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing document accepted")
	}
}
