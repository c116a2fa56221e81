package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newTestRunner(t *testing.T, w, h int) (*Runner, *sand.World, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	cfg := sand.DefaultConfig()
	cfg.CellSize = 1
	cfg.Width = w
	cfg.Height = h - 1
	cfg.TicksPerUpdate = 2
	world := sand.NewWithConfig(cfg)
	return New(screen, world, 60, 1), world, screen
}

func TestDragPlacesGrainsAndReleaseRotatesHue(t *testing.T) {
	r, world, _ := newTestRunner(t, 10, 6)

	r.HandleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	if world.Grains() != 2 {
		t.Fatalf("grains = %d after drag, expected 2", world.Grains())
	}
	cell, _ := world.Get(3, 1)
	if !cell.Occupied || cell.Color != sand.HueColor(0) {
		t.Fatalf("cell (3,1) = %+v", cell)
	}

	r.HandleEvent(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone))
	if world.Hue().Degrees() != 10 {
		t.Fatalf("hue = %d after release, expected 10", world.Hue().Degrees())
	}

	r.HandleEvent(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone))
	if world.Hue().Degrees() != 10 {
		t.Fatal("moving without a stroke must not rotate the hue")
	}
}

func TestDragOnStatusLineIsIgnored(t *testing.T) {
	r, world, _ := newTestRunner(t, 10, 6)
	r.HandleEvent(tcell.NewEventMouse(2, 5, tcell.Button1, tcell.ModNone))
	if world.Grains() != 0 {
		t.Fatal("status line must not receive grains")
	}
	r.HandleEvent(tcell.NewEventMouse(2, 5, tcell.ButtonNone, tcell.ModNone))
	if world.Hue().Degrees() != 0 {
		t.Fatal("a stroke that placed nothing must not rotate the hue")
	}
}

func TestFrameStepsEveryTicksPerUpdate(t *testing.T) {
	r, world, _ := newTestRunner(t, 10, 6)
	_ = world.Place(5, 0)

	r.Frame()
	if world.Ticks() != 0 {
		t.Fatal("first frame should not settle")
	}
	r.Frame()
	if world.Ticks() != 1 {
		t.Fatalf("ticks = %d after two frames, expected 1", world.Ticks())
	}
	if cell, _ := world.Get(5, 1); !cell.Occupied {
		t.Fatal("grain should have fallen one row")
	}

	world.SetIntParameter("ticks_per_update", 1)
	r.Frame()
	if world.Ticks() != 2 {
		t.Fatalf("ticks = %d, expected interval change to apply", world.Ticks())
	}
}

func TestDrawPaintsGrainGlyph(t *testing.T) {
	r, world, screen := newTestRunner(t, 10, 6)
	_ = world.Place(7, 4)
	r.Draw()

	mainc, _, style, _ := screen.GetContent(7, 4)
	if mainc != grainGlyph {
		t.Fatalf("cell (7,4) = %q, expected grain glyph", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("grain foreground = %v", fg)
	}
	if mainc, _, _, _ := screen.GetContent(6, 4); mainc == grainGlyph {
		t.Fatal("empty cell drawn as grain")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	r, _, _ := newTestRunner(t, 10, 6)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("run err=%v, expected deadline exceeded", err)
	}
}
