// Package biome owns the biome enumeration and all classification logic:
// the climate offsets per planet archetype, the altitude/temperature/moisture
// decision ladder, the volcanic override, and the archetype remap table that
// is the single source of truth for biome exclusivity.
package biome

import (
	"fmt"
	"image/color"
	"strings"

	"planetforge/internal/planet"
)

// Biome is the classification label carried by every tile.
type Biome uint8

const (
	// Water
	DeepOcean Biome = iota
	Ocean
	// Shore
	Beach
	Wetland
	// Cold
	IceCap
	Tundra
	Taiga
	// Temperate
	Shrubland
	Plain
	Forest
	// Tropical
	Savanna
	Desert
	Jungle
	// High elevation
	Mountain
	Snow
	// Volcanic chains (terran and several archetypes)
	Volcano
	LavaField
	AshLand
	// Volcanic world exclusives
	MagmaSea
	ScorchedWaste
	// Frozen world exclusives
	FrozenOcean
	GlacialPlain
	// Caustic world exclusives
	CausticLake
	ToxicSwamp
	AcidFlatland
	// Barren world exclusives
	RockyWaste
	DustPlain

	biomeCount
)

var biomeNames = [...]string{
	DeepOcean:     "Deep Ocean",
	Ocean:         "Ocean",
	Beach:         "Beach",
	Wetland:       "Wetland",
	IceCap:        "Ice Cap",
	Tundra:        "Tundra",
	Taiga:         "Taiga",
	Shrubland:     "Shrubland",
	Plain:         "Plain",
	Forest:        "Forest",
	Savanna:       "Savanna",
	Desert:        "Desert",
	Jungle:        "Jungle",
	Mountain:      "Mountain",
	Snow:          "Snow",
	Volcano:       "Volcano",
	LavaField:     "Lava Field",
	AshLand:       "Ash Land",
	MagmaSea:      "Magma Sea",
	ScorchedWaste: "Scorched Waste",
	FrozenOcean:   "Frozen Ocean",
	GlacialPlain:  "Glacial Plain",
	CausticLake:   "Caustic Lake",
	ToxicSwamp:    "Toxic Swamp",
	AcidFlatland:  "Acid Flatland",
	RockyWaste:    "Rocky Waste",
	DustPlain:     "Dust Plain",
}

// Canonical biome colours, shared by every export backend so the raster,
// vector and viewer output stay pixel-consistent.
var biomeColors = [...]color.RGBA{
	DeepOcean:     {10, 20, 140, 255},
	Ocean:         {30, 70, 200, 255},
	Beach:         {220, 210, 120, 255},
	Wetland:       {90, 140, 80, 255},
	IceCap:        {210, 235, 255, 255},
	Tundra:        {160, 185, 155, 255},
	Taiga:         {30, 90, 60, 255},
	Shrubland:     {170, 180, 80, 255},
	Plain:         {100, 200, 80, 255},
	Forest:        {20, 110, 20, 255},
	Savanna:       {210, 190, 60, 255},
	Desert:        {240, 200, 100, 255},
	Jungle:        {0, 90, 20, 255},
	Mountain:      {130, 120, 110, 255},
	Snow:          {245, 245, 250, 255},
	Volcano:       {255, 50, 0, 255},
	LavaField:     {200, 80, 10, 255},
	AshLand:       {95, 80, 70, 255},
	MagmaSea:      {180, 20, 0, 255},
	ScorchedWaste: {70, 35, 15, 255},
	FrozenOcean:   {140, 195, 235, 255},
	GlacialPlain:  {200, 220, 240, 255},
	CausticLake:   {60, 170, 40, 255},
	ToxicSwamp:    {45, 100, 20, 255},
	AcidFlatland:  {165, 185, 60, 255},
	RockyWaste:    {110, 103, 90, 255},
	DustPlain:     {195, 168, 110, 255},
}

// Name returns the human-readable biome name used in exports.
func (b Biome) Name() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

func (b Biome) String() string { return b.Name() }

// Color returns the canonical fill colour for the biome.
func (b Biome) Color() color.RGBA {
	if int(b) < len(biomeColors) {
		return biomeColors[b]
	}
	return color.RGBA{A: 255}
}

// MarshalText lets a Biome round-trip through JSON and YAML as its display
// name.
func (b Biome) MarshalText() ([]byte, error) { return []byte(b.Name()), nil }

// UnmarshalText resolves a display name back to the enum.
func (b *Biome) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, n := range biomeNames {
		if n == name {
			*b = Biome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown biome %q", name)
}

// All returns every biome in canonical (legend) order.
func All() []Biome {
	out := make([]Biome, biomeCount)
	for i := range out {
		out[i] = Biome(i)
	}
	return out
}

// Water-biome family per archetype. Barren has no liquid at all, so its
// family is empty and low terrain routes to land biomes instead.
var waterFamilies = map[planet.Archetype][]Biome{
	planet.Terran:   {DeepOcean, Ocean},
	planet.Volcanic: {MagmaSea},
	planet.Frozen:   {FrozenOcean},
	planet.Caustic:  {CausticLake},
	planet.Barren:   {},
}

// WaterFamily returns the archetype's water biomes.
func WaterFamily(a planet.Archetype) []Biome {
	return waterFamilies[a]
}

// IsWater reports whether b belongs to the archetype's water family.
func IsWater(b Biome, a planet.Archetype) bool {
	for _, w := range waterFamilies[a] {
		if b == w {
			return true
		}
	}
	return false
}

// Permitted biome sets per archetype, derived from the remap table. The
// assembler verifies every classified tile against this set; a miss is a
// contract breach, not a recoverable condition.
var permitted = map[planet.Archetype]map[Biome]bool{
	planet.Terran: setOf(
		DeepOcean, Ocean, Beach, Wetland, IceCap, Tundra, Taiga, Shrubland,
		Plain, Forest, Savanna, Desert, Jungle, Mountain, Snow,
		Volcano, LavaField, AshLand,
	),
	planet.Volcanic: setOf(MagmaSea, ScorchedWaste, AshLand, LavaField, Volcano, Mountain),
	planet.Frozen:   setOf(FrozenOcean, GlacialPlain, IceCap, Tundra, Taiga, Snow, Mountain, Volcano),
	planet.Caustic:  setOf(CausticLake, ToxicSwamp, AcidFlatland, AshLand, LavaField, Volcano, Mountain),
	planet.Barren:   setOf(RockyWaste, DustPlain, Mountain),
}

func setOf(biomes ...Biome) map[Biome]bool {
	m := make(map[Biome]bool, len(biomes))
	for _, b := range biomes {
		m[b] = true
	}
	return m
}

// Permitted reports whether the archetype may emit biome b at all.
func Permitted(b Biome, a planet.Archetype) bool {
	return permitted[a][b]
}

// PermittedSet returns the archetype's full permitted biome set in canonical
// order, for tests and the legend.
func PermittedSet(a planet.Archetype) []Biome {
	var out []Biome
	for _, b := range All() {
		if permitted[a][b] {
			out = append(out, b)
		}
	}
	return out
}
