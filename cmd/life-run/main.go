package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"life-ca/pkg/core"
	"life-ca/pkg/life"
)

func main() {
	width := flag.Int("w", 24, "grid width in cells")
	height := flag.Int("h", 24, "grid height in cells")
	pattern := flag.String("pattern", "glider", "named pattern to seed, or \"random\" for a soup")
	density := flag.Float64("density", 0.2, "alive probability for random seeding")
	seed := flag.Int64("seed", 42, "seed for random seeding")
	steps := flag.Int("steps", 20, "generations to simulate")
	every := flag.Int("every", 1, "print a snapshot every N generations (0 disables)")
	tps := flag.Int("tps", 0, "pace generations at this rate instead of running flat out")
	timings := flag.Bool("timings", false, "report per-tick timing")
	flag.Parse()

	var u *life.Universe
	if *pattern == "random" {
		u = life.NewRandom(*width, *height, *density, *seed)
	} else {
		u = life.New(*width, *height, nil)
		if err := life.ApplyPattern(u, *pattern); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("life-ca: %dx%d, %s, %d generations\n\n", u.Width(), u.Height(), *pattern, *steps)
	if *every > 0 {
		fmt.Printf("generation 0\n%s\n", u.Render())
	}

	var total time.Duration
	observe := func(name string, elapsed time.Duration) {
		total += elapsed
		if *timings {
			fmt.Printf("%s took %v\n", name, elapsed)
		}
	}

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	for gen := 1; gen <= *steps; gen++ {
		if pacer != nil {
			for !pacer.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		core.Measure("tick", observe, u.Tick)
		if *every > 0 && gen%*every == 0 {
			fmt.Printf("generation %d\n%s\n", gen, u.Render())
		}
	}

	if *steps > 0 {
		fmt.Printf("simulated %d generations in %v (avg %v per tick)\n", *steps, total, total/time.Duration(*steps))
	}
}
