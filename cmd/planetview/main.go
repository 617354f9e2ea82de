//go:build ebiten

// Command planetview opens an interactive window showing the composed map.
// R regenerates with the same seed, S rolls a fresh one, Q/Escape quits.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"planetforge/internal/app"
	"planetforge/internal/planet"
	"planetforge/internal/world"
)

func main() {
	planetFlag := flag.String("planet", "terran", "planet archetype")
	seaLevel := flag.Float64("sea-level", 0.2, "elevation bias in [-1,1]")
	volcanic := flag.Float64("volcanic", 0.8, "volcanic intensity in [0,1]")
	circumference := flag.Float64("circumference", planet.EarthCircumferenceKm, "equatorial circumference in km")
	seed := flag.Int64("seed", 0, "generation seed; 0 picks one from the clock")
	scale := flag.Float64("scale", 0.5, "window scale relative to the 1920x1080 map")
	flag.Parse()

	archetype, err := planet.ParseArchetype(*planetFlag)
	if err != nil {
		log.Fatal(err)
	}
	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	cfg := world.DefaultConfig(planet.Spec{
		Archetype:         archetype,
		SeaLevel:          *seaLevel,
		VolcanicIntensity: *volcanic,
		CircumferenceKm:   *circumference,
		Seed:              runSeed,
	})

	game, err := app.New(cfg, *scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("planetforge - " + archetype.String())
	ebiten.SetWindowSize(int(float64(cfg.Width)**scale), int(float64(cfg.Height)**scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
