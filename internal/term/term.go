// Package term runs the sand world in a terminal, one terminal cell per grid
// cell, with a status line below the grid.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const grainGlyph = '█'

// Runner owns the control loop. Only the goroutine running Run touches the
// world; terminal events are handed over through a channel.
type Runner struct {
	screen tcell.Screen
	world  *sand.World
	ticker *core.FrameCounter
	frame  time.Duration
	seed   int64

	paused   bool
	stroking bool
}

// New builds a runner drawing world on screen at fps frames per second.
func New(screen tcell.Screen, world *sand.World, fps int, seed int64) *Runner {
	if fps <= 0 {
		fps = 60
	}
	return &Runner{
		screen: screen,
		world:  world,
		ticker: core.NewFrameCounter(world.TicksPerUpdate()),
		frame:  time.Second / time.Duration(fps),
		seed:   seed,
	}
}

// Run drives input, settling and drawing until ctx is done or the user quits.
// The caller keeps ownership of the screen and must call Fini afterwards.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()
	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.Frame()
			r.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				r.paused = !r.paused
			case 'n':
				r.world.Step()
			case 'r', 'c':
				r.world.Reset(r.seed)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			if r.world.Paint(x, y) {
				r.stroking = true
			}
			return false
		}
		if r.stroking {
			r.world.EndStroke()
			r.stroking = false
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

// Frame counts one frame and runs a settling pass when one is due.
func (r *Runner) Frame() {
	if every := r.world.TicksPerUpdate(); every != r.ticker.Every() {
		r.ticker.SetEvery(every)
	}
	if r.paused {
		return
	}
	if r.ticker.Advance() {
		r.world.Step()
	}
}

// Draw renders a snapshot of the world and the status line.
func (r *Runner) Draw() {
	r.screen.Clear()
	snap := r.world.Snapshot()
	for _, rect := range render.GrainRects(snap, 1) {
		r.screen.SetContent(rect.X, rect.Y, grainGlyph, nil, grainStyle(rect.Color))
	}
	r.drawStatus(snap.H)
	r.screen.Show()
}

func (r *Runner) drawStatus(row int) {
	state := "running"
	if r.paused {
		state = "paused"
	}
	hue := r.world.Hue()
	line := fmt.Sprintf(" grains %d  ticks %d  hue %d°  %s  [drag] pour  [space] pause  [n] step  [r] clear  [q] quit",
		r.world.Grains(), r.world.Ticks(), hue.Degrees(), state)
	swatch := grainStyle(hue.Color())
	r.screen.SetContent(0, row, grainGlyph, nil, swatch)
	col := 1
	for _, ch := range line {
		r.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		col++
	}
}

func grainStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
