package planet

import "math"

// EarthCircumferenceKm is the noise-scale baseline: a planet with Earth's
// circumference keeps the reference noise frequencies and 1 g surface gravity.
const EarthCircumferenceKm = 40075.0

// Gravity is clamped to a physically plausible range, roughly Moon-mass
// rock up to a super-Jupiter rocky core.
const (
	minGravity = 0.1
	maxGravity = 5.0
)

// DerivedParams are the physical knobs derived once from the circumference
// and shared read-only by every tile of a run.
type DerivedParams struct {
	// NoiseScale stretches the unit-sphere sampling coordinates. Larger
	// planets get broader continents and ocean basins.
	NoiseScale float64
	// GravityModifier is surface gravity relative to Earth, assuming
	// constant density (gravity scales linearly with radius).
	GravityModifier float64
	// MountainBlend weights ridged relief into the elevation field.
	// Baseline 0.35 at 1 g; stronger gravity flattens mountains.
	MountainBlend float64
}

// Derive computes DerivedParams from the circumference. It fails with
// InvalidParameterError when the circumference is not positive.
func Derive(circumferenceKm float64) (DerivedParams, error) {
	if math.IsNaN(circumferenceKm) || circumferenceKm <= 0 {
		return DerivedParams{}, &InvalidParameterError{
			Field:  "circumference_km",
			Value:  circumferenceKm,
			Reason: "must be positive",
		}
	}
	gravity := circumferenceKm / EarthCircumferenceKm
	if gravity < minGravity {
		gravity = minGravity
	}
	if gravity > maxGravity {
		gravity = maxGravity
	}
	return DerivedParams{
		NoiseScale:      EarthCircumferenceKm / circumferenceKm,
		GravityModifier: gravity,
		MountainBlend:   0.35 / math.Sqrt(gravity),
	}, nil
}
