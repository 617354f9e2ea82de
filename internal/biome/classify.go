package biome

import "planetforge/internal/planet"

// Climate is the classifier input for one tile. RelElevation is elevation
// shifted by sea level, so water starts exactly at RelElevation < 0.
type Climate struct {
	RelElevation float64 // [-1, 1]
	Moisture     float64 // [-1, 1]; > 0 is wet
	Temperature  float64 // [-1, 1]; 1 = equatorial lowland
	VolcanicZone float64 // [0, 1]; 0 = inert
}

// Per-archetype climate deltas applied before the decision ladder. They shift
// the whole planet's climate; the remap table then swaps in exclusives.
type climateOffsets struct {
	temperature  float64
	moisture     float64
	volcanicZone float64
}

var offsets = map[planet.Archetype]climateOffsets{
	planet.Terran: {},
	// Scorching hot, bone-dry, heavily volcanic.
	planet.Volcanic: {temperature: 0.45, moisture: -0.55, volcanicZone: 0.50},
	// Perpetually cold, slightly more frozen precipitation.
	planet.Frozen: {temperature: -0.55, moisture: 0.15, volcanicZone: -0.30},
	// Mildly warm, saturated with caustic moisture.
	planet.Caustic: {temperature: 0.10, moisture: 0.55},
	// Arid lifeless rock, no volcanic activity.
	planet.Barren: {moisture: -0.65, volcanicZone: -0.40},
}

// Ladder thresholds on sea-level-relative elevation.
const (
	deepOceanBelow = -0.3
	shoreBelow     = 0.07
	highlandAbove  = 0.7
)

// Classify maps one tile's climate to its biome. The full pipeline is
// offsets → altitude band → volcanic override → archetype remap; the
// volcanicIntensity gate guarantees that zero intensity never emits a
// volcanic biome regardless of archetype offsets.
func Classify(c Climate, a planet.Archetype, volcanicIntensity float64) Biome {
	off := offsets[a]
	t := clamp(c.Temperature+off.temperature, -1, 1)
	m := clamp(c.Moisture+off.moisture, -1, 1)
	vz := 0.0
	if volcanicIntensity > 0 {
		vz = clamp(c.VolcanicZone+off.volcanicZone, 0, 1)
	}

	b := baseBiome(c.RelElevation, m, t)
	b = applyVolcanic(b, c.RelElevation, vz)
	return remap(b, a)
}

func baseBiome(e, m, t float64) Biome {
	switch {
	case e < 0:
		return oceanBiome(e)
	case e < shoreBelow:
		return shoreBiome(t, m)
	case e > highlandAbove:
		return highlandBiome(e, t)
	default:
		return landBiome(t, m)
	}
}

func oceanBiome(e float64) Biome {
	if e < deepOceanBelow {
		return DeepOcean
	}
	return Ocean
}

func shoreBiome(t, m float64) Biome {
	switch {
	case t < 0.15:
		return IceCap // frozen shore / pack ice
	case m > 0.3:
		return Wetland // mangroves, marshes
	default:
		return Beach
	}
}

func highlandBiome(e, t float64) Biome {
	if t < 0.35 || e > 0.88 {
		return Snow
	}
	return Mountain
}

func landBiome(t, m float64) Biome {
	switch {
	case t < 0.15:
		return IceCap // polar
	case t < 0.30:
		return borealBiome(m)
	case t < 0.55:
		return temperateBiome(m)
	default:
		return tropicalBiome(m)
	}
}

func borealBiome(m float64) Biome {
	if m > 0.2 {
		return Taiga
	}
	return Tundra
}

func temperateBiome(m float64) Biome {
	switch {
	case m < -0.1:
		return Shrubland
	case m > 0.35:
		return Forest
	default:
		return Plain
	}
}

func tropicalBiome(m float64) Biome {
	switch {
	case m < -0.05:
		return Desert
	case m < 0.30:
		return Savanna
	default:
		return Jungle
	}
}

// applyVolcanic overrides high-relief biomes sitting inside an active
// volcanic zone. Override ladder, strongest condition first:
//
//	Volcano   — summit/caldera: Mountain|Snow, e > 0.80, vz > 0.55
//	LavaField — flanks:         Mountain|Snow,           vz > 0.30
//	AshLand   — lower slopes:   high or mid terrain,     e > 0.30, vz > 0.15
func applyVolcanic(b Biome, e, vz float64) Biome {
	if vz <= 0 {
		return b
	}
	switch b {
	case Mountain, Snow:
		switch {
		case e > 0.80 && vz > 0.55:
			return Volcano
		case vz > 0.30:
			return LavaField
		}
	}
	switch b {
	case Mountain, Snow, Shrubland, Plain, Tundra:
		if e > 0.30 && vz > 0.15 {
			return AshLand
		}
	}
	return b
}

// remap converts standard biomes into archetype exclusives. It runs after
// the volcanic override so volcanic results are visible here, and it is the
// single table that enforces the exclusivity invariant.
func remap(b Biome, a planet.Archetype) Biome {
	switch a {
	case planet.Terran:
		return b

	case planet.Volcanic:
		// Ocean basins fill with magma; lowlands are scoured to bare rock.
		switch b {
		case DeepOcean, Ocean:
			return MagmaSea
		case Beach, Wetland, Forest, Jungle, Taiga:
			return AshLand
		case Plain, Shrubland, Savanna, Desert, IceCap, Tundra, Snow:
			return ScorchedWaste
		}
		return b // Mountain, Volcano, LavaField, AshLand keep as-is

	case planet.Frozen:
		// Oceans seal under ice; temperate zones become permafrost plains.
		switch b {
		case DeepOcean, Ocean:
			return FrozenOcean
		case Beach, Wetland:
			return IceCap
		case Plain, Shrubland, Savanna, Desert, LavaField, AshLand:
			return GlacialPlain
		case Forest, Jungle:
			return Taiga
		}
		return b // Tundra, IceCap, Taiga, Snow, Mountain, Volcano keep as-is

	case planet.Caustic:
		// Oceans become acid seas; vegetation drowns in toxic runoff.
		switch b {
		case DeepOcean, Ocean:
			return CausticLake
		case Beach, Wetland, Forest, Jungle, Taiga:
			return ToxicSwamp
		case Plain, Shrubland, Savanna, Desert, Tundra, IceCap, Snow:
			return AcidFlatland
		}
		return b // Mountain, Volcano, LavaField, AshLand keep as-is

	case planet.Barren:
		// No liquid, no life, no volcanism: only rock and dust remain.
		switch b {
		case DeepOcean, Ocean, Beach, Wetland, Snow, Volcano, LavaField, AshLand:
			return RockyWaste
		case Plain, Shrubland, Savanna, Desert, Tundra, IceCap, Forest, Jungle, Taiga:
			return DustPlain
		}
		return b // Mountain keeps as-is
	}
	return b
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
