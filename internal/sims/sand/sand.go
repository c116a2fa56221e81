package sand

import (
	"fmt"
	"image/color"
	"log"

	"falling-sand/internal/core"
)

// World is a falling-sand simulation: a colored grain grid, the engine that
// settles it and the brush hue used for new grains.
//
// World is not safe for concurrent use. Input, snapshots and steps must be
// sequenced by a single control loop.
type World struct {
	cfg Config

	grid   *core.Grid
	engine *Engine
	hue    Hue
	ticks  uint64
	cells  []uint8
}

// New returns a sand world with the provided grid dimensions using defaults.
func New(cols, rows int) *World {
	cfg := DefaultConfig()
	cfg.Width = cols * cfg.CellSize
	cfg.Height = rows * cfg.CellSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	if cfg.TicksPerUpdate <= 0 {
		cfg.TicksPerUpdate = 1
	}
	grid := core.NewGrid(cfg.Cols(), cfg.Rows(), Placeholder)
	return &World{
		cfg:    cfg,
		grid:   grid,
		engine: NewEngine(grid.W, grid.H, Placeholder),
		hue:    NewHue(cfg.HueStep),
		cells:  make([]uint8, grid.W*grid.H),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions in cells.
func (w *World) Size() core.Size { return w.grid.Size() }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// CellSize returns the pixel edge length of one cell.
func (w *World) CellSize() int { return w.cfg.CellSize }

// TicksPerUpdate returns how many frames elapse between settling passes.
func (w *World) TicksPerUpdate() int { return w.cfg.TicksPerUpdate }

// Ticks returns the number of settling passes run since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Grains returns the number of occupied cells.
func (w *World) Grains() int { return w.grid.Count() }

// Hue returns the current brush hue.
func (w *World) Hue() Hue { return w.hue }

// BrushColor returns the color the next placed grain will carry.
func (w *World) BrushColor() color.RGBA { return w.hue.Color() }

// Cells exposes a 0/1 occupancy view of the grid, rebuilt on each call.
func (w *World) Cells() []uint8 {
	w.grid.FillOccupancy(w.cells)
	return w.cells
}

// Get returns the cell at (x, y).
func (w *World) Get(x, y int) (core.Cell, error) { return w.grid.Get(x, y) }

// Set overwrites the cell at (x, y).
func (w *World) Set(x, y int, occupied bool, c color.RGBA) error {
	return w.grid.Set(x, y, occupied, c)
}

// Snapshot returns an independent copy of the grid for rendering.
func (w *World) Snapshot() *core.Grid { return w.grid.Snapshot() }

// SnapshotInto copies the grid into dst without allocating.
func (w *World) SnapshotInto(dst *core.Grid) error { return w.grid.CopyInto(dst) }

// Place drops a grain with the current brush color at cell (x, y).
func (w *World) Place(x, y int) error {
	return w.grid.Set(x, y, true, w.hue.Color())
}

// Paint places a grain under the surface pixel (px, py). Pointer positions
// outside the surface are ignored.
func (w *World) Paint(px, py int) bool {
	if px < 0 || py < 0 {
		return false
	}
	x, y := px/w.cfg.CellSize, py/w.cfg.CellSize
	if !w.grid.InBounds(x, y) {
		return false
	}
	return w.Place(x, y) == nil
}

// EndStroke finishes a drag gesture and rotates the brush hue.
func (w *World) EndStroke() { w.hue.Advance() }

// Step runs one settling pass.
func (w *World) Step() {
	if err := w.engine.Settle(w.grid); err != nil {
		panic(fmt.Errorf("sand: publish settling pass: %w", err))
	}
	w.ticks++
}

// Reset clears the grid. With a positive fill density the grid is then
// scattered with grains drawn from seed, or from the configured seed when
// seed is zero.
func (w *World) Reset(seed int64) {
	w.grid.Clear()
	w.ticks = 0
	if w.cfg.FillDensity <= 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := core.NewRNG(effective)
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			if !rng.Chance(w.cfg.FillDensity) {
				continue
			}
			_ = w.grid.Set(x, y, true, HueColor(rng.IntN(360)))
		}
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if err := c.Validate(); err != nil {
			log.Printf("sand: %v", err)
		}
		return NewWithConfig(c)
	})
}
