package planet

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. The CLI uses it to pick the randomized defaults it echoes back, so
// a logged seed always reproduces the same spec.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Archetype draws a uniformly random planet archetype.
func (r *RNG) Archetype() Archetype {
	all := Archetypes()
	return all[r.r.IntN(len(all))]
}

// SeaLevel draws a default sea level in [-0.3, 0.3], the band between a
// mostly-land and a mostly-ocean planet.
func (r *RNG) SeaLevel() float64 {
	return r.r.Float64()*0.6 - 0.3
}

// VolcanicIntensity draws a default intensity in [0, 1].
func (r *RNG) VolcanicIntensity() float64 {
	return r.r.Float64()
}

// CircumferenceKm draws a default circumference between half and twice
// Earth's.
func (r *RNG) CircumferenceKm() float64 {
	return EarthCircumferenceKm * (0.5 + 1.5*r.r.Float64())
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
