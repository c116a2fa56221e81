package sand

import (
	"fmt"
	"image/color"

	"falling-sand/internal/core"
)

// Engine computes settling passes into a reusable scratch grid.
//
// Every decision reads the source grid only; results are written to scratch.
// A grain resolves to exactly one of, in order:
//
//	floor  bottom row, stays put
//	fall   cell below is empty
//	left   below is blocked, down-left is empty and not claimed by a faller
//	right  down-right is empty and not claimed by a faller or a left slider
//	settle otherwise, stays put
//
// Movers only target cells that are empty in the source and each such cell
// has a single winning claimant, so grains are never merged or lost.
type Engine struct {
	scratch *core.Grid
}

// NewEngine allocates an engine for a w*h grid. Cleared scratch cells carry
// the fill color.
func NewEngine(w, h int, fill color.RGBA) *Engine {
	return &Engine{scratch: core.NewGrid(w, h, fill)}
}

// Next computes the generation following src. The returned grid is owned by
// the engine and is overwritten by the next call.
func (e *Engine) Next(src *core.Grid) (*core.Grid, error) {
	if src == nil || src.W != e.scratch.W || src.H != e.scratch.H {
		return nil, fmt.Errorf("settle snapshot against %dx%d scratch: %w", e.scratch.W, e.scratch.H, core.ErrDimensionMismatch)
	}
	e.scratch.Clear()

	w, h := src.W, src.H
	occ := src.Occupancy()
	colors := src.Colors()
	nextOcc := e.scratch.Occupancy()
	nextColors := e.scratch.Colors()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			i := y*w + x
			if !occ[i] {
				continue
			}
			dx, dy := destination(occ, w, h, x, y)
			j := dy*w + dx
			nextOcc[j] = true
			nextColors[j] = colors[i]
		}
	}
	return e.scratch, nil
}

// Settle runs one pass over live and publishes the result into it. live is
// not written until the pass is complete, so it serves as the frozen source.
func (e *Engine) Settle(live *core.Grid) error {
	next, err := e.Next(live)
	if err != nil {
		return err
	}
	return live.ReplaceAll(next)
}

func destination(occ []bool, w, h, x, y int) (int, int) {
	if y+1 >= h {
		return x, y
	}
	if !occ[(y+1)*w+x] {
		return x, y + 1
	}
	if slidesLeft(occ, w, x, y) {
		return x - 1, y + 1
	}
	if slidesRight(occ, w, x, y) {
		return x + 1, y + 1
	}
	return x, y
}

// slidesLeft assumes (x, y) holds a grain whose cell below is occupied.
func slidesLeft(occ []bool, w, x, y int) bool {
	if x-1 < 0 {
		return false
	}
	below := (y + 1) * w
	// A grain directly above the target falls into it first.
	return !occ[below+x-1] && !occ[y*w+x-1]
}

// slidesRight assumes (x, y) holds a grain whose cell below is occupied.
func slidesRight(occ []bool, w, x, y int) bool {
	if x+1 >= w {
		return false
	}
	row, below := y*w, (y+1)*w
	if occ[below+x+1] || occ[row+x+1] {
		return false
	}
	// A blocked grain two columns over would slide left into the target.
	if x+2 < w && occ[row+x+2] && occ[below+x+2] {
		return false
	}
	return true
}
