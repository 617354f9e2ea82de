package planet

import (
	"fmt"
	"math"
	"strings"
)

// Archetype enumerates the five planet categories. Each archetype owns a
// closed set of permitted biomes; the biome package holds that table.
type Archetype uint8

const (
	Terran Archetype = iota
	Volcanic
	Frozen
	Caustic
	Barren
)

var archetypeNames = [...]string{"terran", "volcanic", "frozen", "caustic", "barren"}

// Archetypes returns all archetypes in declaration order.
func Archetypes() []Archetype {
	return []Archetype{Terran, Volcanic, Frozen, Caustic, Barren}
}

// String returns the lowercase archetype name used on the CLI and in exports.
func (a Archetype) String() string {
	if int(a) < len(archetypeNames) {
		return archetypeNames[a]
	}
	return fmt.Sprintf("archetype(%d)", uint8(a))
}

// ParseArchetype resolves a CLI/config string to an Archetype.
func ParseArchetype(s string) (Archetype, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), nil
		}
	}
	return Terran, &InvalidParameterError{Field: "planet", Value: s, Reason: "unknown archetype"}
}

// MarshalText lets an Archetype round-trip through JSON and YAML as its name.
func (a Archetype) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText parses an archetype name.
func (a *Archetype) UnmarshalText(text []byte) error {
	parsed, err := ParseArchetype(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Spec fixes every input of a generation run. Once validated it fully
// determines the world: two runs with an equal Spec produce identical output.
type Spec struct {
	Archetype         Archetype
	SeaLevel          float64 // elevation bias in [-1, 1]; positive drowns more land
	VolcanicIntensity float64 // fraction of mountain chains turning volcanic, [0, 1]
	CircumferenceKm   float64 // equatorial circumference, > 0
	Seed              int64
}

// Validate reports the first out-of-range field, if any. Generation never
// starts on an invalid spec.
func (s Spec) Validate() error {
	if int(s.Archetype) >= len(archetypeNames) {
		return &InvalidParameterError{Field: "planet", Value: s.Archetype, Reason: "unknown archetype"}
	}
	if math.IsNaN(s.SeaLevel) || s.SeaLevel < -1 || s.SeaLevel > 1 {
		return &InvalidParameterError{Field: "sea_level", Value: s.SeaLevel, Reason: "must be in [-1, 1]"}
	}
	if math.IsNaN(s.VolcanicIntensity) || s.VolcanicIntensity < 0 || s.VolcanicIntensity > 1 {
		return &InvalidParameterError{Field: "volcanic_intensity", Value: s.VolcanicIntensity, Reason: "must be in [0, 1]"}
	}
	if math.IsNaN(s.CircumferenceKm) || s.CircumferenceKm <= 0 {
		return &InvalidParameterError{Field: "circumference_km", Value: s.CircumferenceKm, Reason: "must be positive"}
	}
	return nil
}

// InvalidParameterError reports a spec field that failed range validation.
type InvalidParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}
