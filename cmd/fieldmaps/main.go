// Command fieldmaps dumps every intermediate noise field of a generation run
// as a false-colour PNG, for tuning and debugging the synthesizer.
package main

import (
	"flag"
	"fmt"
	"log"

	"planetforge/internal/export"
	"planetforge/internal/planet"
)

func main() {
	planetFlag := flag.String("planet", "terran", "planet archetype")
	seaLevel := flag.Float64("sea-level", 0.2, "elevation bias in [-1,1]")
	volcanic := flag.Float64("volcanic", 0.8, "volcanic intensity in [0,1]")
	circumference := flag.Float64("circumference", planet.EarthCircumferenceKm, "equatorial circumference in km")
	seed := flag.Int64("seed", 1337, "generation seed")
	width := flag.Int("width", 960, "map width for diagnostic runs")
	height := flag.Int("height", 540, "map height for diagnostic runs")
	dir := flag.String("out", "fieldmaps", "output directory")
	flag.Parse()

	archetype, err := planet.ParseArchetype(*planetFlag)
	if err != nil {
		log.Fatal(err)
	}
	spec := planet.Spec{
		Archetype:         archetype,
		SeaLevel:          *seaLevel,
		VolcanicIntensity: *volcanic,
		CircumferenceKm:   *circumference,
		Seed:              *seed,
	}

	if err := export.WriteFieldMaps(*dir, *width, *height, spec); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Field maps written → %s/\n", *dir)
}
