//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"life-ca/internal/app"
	"life-ca/pkg/core"
	"life-ca/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(map[string]string{
		"w":       strconv.Itoa(cfg.Width),
		"h":       strconv.Itoa(cfg.Height),
		"density": strconv.FormatFloat(cfg.Density, 'f', -1, 64),
	})

	if cfg.Pattern != "" {
		u, ok := sim.(*life.Universe)
		if !ok {
			log.Fatalf("sim %q does not support named patterns", cfg.Sim)
		}
		if err := life.ApplyPattern(u, cfg.Pattern); err != nil {
			log.Fatal(err)
		}
	} else {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("life-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
