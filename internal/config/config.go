// Package config loads planet documents: small YAML files fixing some or all
// generation parameters. Fields left out of the document keep whatever value
// the caller already picked (flag or randomized default).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"planetforge/internal/planet"
)

// Document mirrors the planet YAML shape. Pointer fields distinguish
// "absent" from zero values.
type Document struct {
	Planet            string   `yaml:"planet"`
	SeaLevel          *float64 `yaml:"sea_level"`
	VolcanicIntensity *float64 `yaml:"volcanic_intensity"`
	CircumferenceKm   *float64 `yaml:"circumference_km"`
	Seed              *int64   `yaml:"seed"`
}

// Load reads and parses a planet document.
func Load(path string) (Document, error) {
	var d Document
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("planet document %s: %w", path, err)
	}
	return d, nil
}

// Apply overrides spec fields that the document sets. The merged spec is
// still validated by the generator afterwards.
func (d Document) Apply(spec *planet.Spec) error {
	if d.Planet != "" {
		a, err := planet.ParseArchetype(d.Planet)
		if err != nil {
			return err
		}
		spec.Archetype = a
	}
	if d.SeaLevel != nil {
		spec.SeaLevel = *d.SeaLevel
	}
	if d.VolcanicIntensity != nil {
		spec.VolcanicIntensity = *d.VolcanicIntensity
	}
	if d.CircumferenceKm != nil {
		spec.CircumferenceKm = *d.CircumferenceKm
	}
	if d.Seed != nil {
		spec.Seed = *d.Seed
	}
	return nil
}
