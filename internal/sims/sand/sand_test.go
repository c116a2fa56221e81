package sand

import (
	"image/color"
	"slices"
	"testing"

	"falling-sand/internal/core"
)

func TestSingleGrainScenario(t *testing.T) {
	world := New(3, 3)
	red := color.RGBA{R: 255, A: 255}
	if err := world.Set(1, 0, true, red); err != nil {
		t.Fatalf("set: %v", err)
	}

	path := [][2]int{{1, 1}, {1, 2}, {1, 2}, {1, 2}}
	for tick, want := range path {
		world.Step()
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				cell, err := world.Get(x, y)
				if err != nil {
					t.Fatalf("get (%d,%d): %v", x, y, err)
				}
				expected := x == want[0] && y == want[1]
				if cell.Occupied != expected {
					t.Fatalf("tick %d: cell (%d,%d) occupied=%v, expected %v", tick+1, x, y, cell.Occupied, expected)
				}
				if expected && cell.Color != red {
					t.Fatalf("tick %d: grain color %v, expected %v", tick+1, cell.Color, red)
				}
			}
		}
	}
	if world.Ticks() != uint64(len(path)) {
		t.Fatalf("ticks = %d, expected %d", world.Ticks(), len(path))
	}
}

func TestPaintConvertsPixelsToCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 40, 24, 8
	world := NewWithConfig(cfg)

	if !world.Paint(9, 17) {
		t.Fatal("paint inside the surface should succeed")
	}
	cell, _ := world.Get(1, 2)
	if !cell.Occupied || cell.Color != HueColor(0) {
		t.Fatalf("cell (1,2) = %+v, expected grain with hue 0 color", cell)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -3}, {40, 0}, {0, 24}, {400, 400}} {
		if world.Paint(p[0], p[1]) {
			t.Fatalf("paint at pixel %v outside the surface should be ignored", p)
		}
	}
	if world.Grains() != 1 {
		t.Fatalf("grains = %d, expected 1", world.Grains())
	}
}

func TestEndStrokeRotatesBrushColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 16, 16, 8
	cfg.HueStep = 120
	world := NewWithConfig(cfg)

	world.Paint(0, 0)
	world.EndStroke()
	world.Paint(8, 0)

	first, _ := world.Get(0, 0)
	second, _ := world.Get(1, 0)
	if first.Color != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("first stroke color %v", first.Color)
	}
	if second.Color != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("second stroke color %v", second.Color)
	}
	if world.Hue().Degrees() != 120 {
		t.Fatalf("hue = %d, expected 120", world.Hue().Degrees())
	}
}

func TestSnapshotUnaffectedBySteps(t *testing.T) {
	world := New(2, 3)
	_ = world.Place(0, 0)
	snap := world.Snapshot()

	world.Step()
	_ = world.Place(1, 0)

	if got := snap.Count(); got != 1 {
		t.Fatalf("snapshot grains = %d, expected 1", got)
	}
	if cell, _ := snap.Get(0, 0); !cell.Occupied {
		t.Fatal("snapshot lost the grain it observed")
	}
}

func TestCellsReportsOccupancy(t *testing.T) {
	world := New(2, 2)
	_ = world.Place(1, 1)
	if !slices.Equal(world.Cells(), []uint8{0, 0, 0, 1}) {
		t.Fatalf("cells = %v", world.Cells())
	}
}

func TestResetClearsAndFillsDeterministically(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 32, 24, 1
	cfg.FillDensity = 0.3
	cfg.Seed = 99
	world := NewWithConfig(cfg)

	world.Reset(0)
	first := slices.Clone(world.Cells())
	if world.Grains() == 0 {
		t.Fatal("fill density should scatter grains")
	}

	world.Step()
	world.Reset(0)
	if !slices.Equal(first, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Ticks() != 0 {
		t.Fatal("Reset should clear the tick counter")
	}

	world.Reset(777)
	if slices.Equal(first, world.Cells()) {
		t.Fatal("different seeds should produce different fills")
	}

	empty := New(4, 4)
	_ = empty.Place(2, 2)
	empty.Reset(5)
	if empty.Grains() != 0 {
		t.Fatal("Reset without fill density should leave an empty grid")
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	world := New(4, 4)
	if !world.SetIntParameter("ticks_per_update", 0) {
		t.Fatal("ticks_per_update should be adjustable")
	}
	if world.TicksPerUpdate() != 1 {
		t.Fatalf("ticks per update = %d, expected clamp to 1", world.TicksPerUpdate())
	}
	if !world.SetIntParameter("hue_step", 1000) {
		t.Fatal("hue_step should be adjustable")
	}
	if world.Hue().Step() != maxHueStep {
		t.Fatalf("hue step = %d, expected clamp to %d", world.Hue().Step(), maxHueStep)
	}
	if world.SetIntParameter("gravity", 2) {
		t.Fatal("unknown keys must be rejected")
	}

	p, ok := world.Parameters().Lookup("ticks_per_update")
	if !ok || p.Value != "1" {
		t.Fatalf("parameter snapshot = %+v, %v", p, ok)
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	if !ok {
		t.Fatal("sand sim not registered")
	}
	sim := factory(map[string]string{"w": "64", "h": "32", "cell": "4"})
	if sim.Size() != (core.Size{W: 16, H: 8}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if _, ok := sim.(core.Brush); !ok {
		t.Fatal("sand world should accept brush input")
	}
	if _, ok := sim.(core.Snapshotter); !ok {
		t.Fatal("sand world should expose colored snapshots")
	}
}
