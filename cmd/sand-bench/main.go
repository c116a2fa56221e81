package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"time"

	"falling-sand/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 600, "number of settling passes to run")
	width := flag.Int("width", 800, "surface width in pixels")
	height := flag.Int("height", 600, "surface height in pixels")
	cell := flag.Int("cell", 8, "cell edge length in pixels")
	fill := flag.Float64("fill", 0.3, "initial grain density in [0, 1]")
	seed := flag.Int64("seed", 1337, "seed used for the initial scatter")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.CellSize = *cell
	cfg.FillDensity = *fill
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		log.Printf("warning: %v", err)
	}

	world := sand.NewWithConfig(cfg)
	world.Reset(0)
	size := world.Size()
	start := world.Grains()
	fmt.Printf("Grid %dx%d (%d cells), %d grains\n", size.W, size.H, size.W*size.H, start)

	settledAt := -1
	prev := slices.Clone(world.Cells())
	began := time.Now()
	for i := 1; i <= *steps; i++ {
		world.Step()
		cur := world.Cells()
		if slices.Equal(prev, cur) {
			settledAt = i
			break
		}
		copy(prev, cur)
	}
	elapsed := time.Since(began)

	ran := int(world.Ticks())
	fmt.Printf("Ran %d ticks in %v (%v/tick)\n", ran, elapsed, elapsed/time.Duration(max(ran, 1)))
	fmt.Printf("Grains: %d -> %d\n", start, world.Grains())
	if settledAt > 0 {
		fmt.Printf("Fixed point reached at tick %d\n", settledAt)
	} else {
		fmt.Println("Grid still moving")
	}
	if world.Grains() != start {
		log.Fatalf("grain count changed: %d -> %d", start, world.Grains())
	}
}
