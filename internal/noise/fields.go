// Package noise synthesizes the per-tile climate fields on a spherical
// domain. Every field is a pure function of (seed, row, col, derived params),
// so tiles can be computed in any order by any number of workers.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"planetforge/internal/planet"
)

// Seed offsets keep the fields statistically independent: each field samples
// its own generator, correlated with the others only through the shared
// geographic position.
const (
	seedOffsetElevation = 0
	seedOffsetMoisture  = 1
	seedOffsetContinent = 100
	seedOffsetWarpA     = 200
	seedOffsetWarpB     = 201
	seedOffsetVolcano   = 300
)

// Sample carries the synthesized fields for one tile. Elevation, Moisture and
// Temperature are the stored tile values; RelElevation is elevation shifted
// by sea level, which is what the classifier and the temperature lapse see.
// The remaining members are intermediates kept for the diagnostic field maps.
type Sample struct {
	Elevation    float64 // [-1, 1]
	RelElevation float64 // elevation - sea_level, clamped to [-1, 1]
	Moisture     float64 // [-1, 1]
	Temperature  float64 // [-1, 1]; 1 = equatorial lowland
	VolcanicZone float64 // [0, 1]; 0 = inert

	Continent      float64
	Mountain       float64
	MountainWeight float64
	WarpX          float64
	WarpY          float64
	VolcanicRaw    float64
}

// Synthesizer produces Samples for a fixed grid and spec. It is safe for
// concurrent use: all state is immutable after construction.
type Synthesizer struct {
	width, height int
	seaLevel      float64
	noiseScale    float64
	mountainBlend float64

	// 1 - 1.5*intensity: at full intensity most ridge noise clears the
	// threshold, at zero intensity nothing does.
	volcanicThreshold float64
	volcanicEnabled   bool

	elevation opensimplex.Noise
	moisture  opensimplex.Noise
	continent opensimplex.Noise
	warpA     opensimplex.Noise
	warpB     opensimplex.Noise
	volcano   opensimplex.Noise
}

// NewSynthesizer builds a Synthesizer for the given grid and spec.
func NewSynthesizer(width, height int, spec planet.Spec, derived planet.DerivedParams) *Synthesizer {
	return &Synthesizer{
		width:             width,
		height:            height,
		seaLevel:          spec.SeaLevel,
		noiseScale:        derived.NoiseScale,
		mountainBlend:     derived.MountainBlend,
		volcanicThreshold: 1 - 1.5*spec.VolcanicIntensity,
		volcanicEnabled:   spec.VolcanicIntensity > 0,
		elevation:         opensimplex.New(spec.Seed + seedOffsetElevation),
		moisture:          opensimplex.New(spec.Seed + seedOffsetMoisture),
		continent:         opensimplex.New(spec.Seed + seedOffsetContinent),
		warpA:             opensimplex.New(spec.Seed + seedOffsetWarpA),
		warpB:             opensimplex.New(spec.Seed + seedOffsetWarpB),
		volcano:           opensimplex.New(spec.Seed + seedOffsetVolcano),
	}
}

// At synthesizes the full Sample for grid position (row, col).
func (s *Synthesizer) At(row, col int) Sample {
	// Inverse equirectangular projection, then onto the unit sphere so the
	// map wraps seamlessly with no mirror symmetry along any axis.
	lat := (90 - float64(row)/float64(s.height)*180) * math.Pi / 180
	lon := (float64(col)/float64(s.width)*360 - 180) * math.Pi / 180
	nx := math.Cos(lat) * math.Cos(lon)
	ny := math.Cos(lat) * math.Sin(lon)
	nz := math.Sin(lat)

	// Domain warping twists the mountain coordinates for organic coastlines.
	warpX := s.warpA.Eval3(nx*2*s.noiseScale, ny*2*s.noiseScale, nz*2*s.noiseScale)
	warpY := s.warpB.Eval3(nx*2*s.noiseScale+5.2, ny*2*s.noiseScale+1.3, nz*2*s.noiseScale+3.7)
	wnx := nx + warpX*0.25
	wny := ny + warpY*0.25

	// Continent shape: low-frequency FBM over all three sphere axes.
	continent := fbm(s.continent, nx*0.8*s.noiseScale, ny*0.8*s.noiseScale, nz*0.8*s.noiseScale, 5)

	// Ridged mountains blended only onto elevated terrain, attenuated by the
	// gravity-driven mountain blend.
	mountain := ridged(s.elevation, wnx*5*s.noiseScale, wny*5*s.noiseScale, nz*5*s.noiseScale)
	mountainWeight := clamp((continent-0.2)*2.5, 0, 1)
	elevation := clamp(continent+mountain*mountainWeight*s.mountainBlend, -1, 1)

	// Shift by sea level before classification: positive sea level raises
	// the waterline, negative exposes more land.
	relElevation := clamp(elevation-s.seaLevel, -1, 1)

	moisture := fbm(s.moisture, nx*1.5*s.noiseScale, ny*1.5*s.noiseScale, nz*1.5*s.noiseScale, 4)

	// Temperature: warm equator, cold poles, altitude cooling.
	gradient := 1 - math.Abs(lat)/(math.Pi/2)
	temperature := clamp(gradient-relElevation*0.3, -1, 1)

	// Low-frequency noise selects which mountain chains turn volcanic. The
	// threshold slides with intensity; zero intensity disables the field.
	volcanicRaw := fbm(s.volcano, nx*s.noiseScale, ny*s.noiseScale, nz*s.noiseScale, 3)
	volcanicZone := 0.0
	if s.volcanicEnabled {
		volcanicZone = clamp((volcanicRaw-s.volcanicThreshold)*4, 0, 1)
	}

	return Sample{
		Elevation:      elevation,
		RelElevation:   relElevation,
		Moisture:       moisture,
		Temperature:    temperature,
		VolcanicZone:   volcanicZone,
		Continent:      continent,
		Mountain:       mountain,
		MountainWeight: mountainWeight,
		WarpX:          warpX,
		WarpY:          warpY,
		VolcanicRaw:    volcanicRaw,
	}
}

// fbm is fractional Brownian motion: octaves of simplex noise halving in
// amplitude and doubling in frequency, normalised to roughly [-1, 1].
func fbm(n opensimplex.Noise, x, y, z float64, octaves int) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		value += n.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return value / maxValue
}

// ridged inverts the absolute noise value to produce sharp peaks instead of
// smooth hills. Returns a value in [0, 1].
func ridged(n opensimplex.Noise, x, y, z float64) float64 {
	return 1 - math.Abs(n.Eval3(x, y, z))
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
