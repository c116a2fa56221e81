package core

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrOutOfRange reports a cell access outside the grid bounds.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrDimensionMismatch reports an attempt to combine grids of different sizes.
	ErrDimensionMismatch = errors.New("grid dimension mismatch")
)

// Cell is the state of a single grid location. Color is only meaningful while
// Occupied is true; vacated cells keep whatever color they last held.
type Cell struct {
	Occupied bool
	Color    color.RGBA
}

// Grid stores occupancy and color for a fixed-size 2D grid in row-major order.
//
// Grid is not synchronized. Callers must sequence Set, Snapshot and
// ReplaceAll from a single goroutine.
type Grid struct {
	W, H int

	occupied []bool
	colors   []color.RGBA
	fill     color.RGBA
}

// NewGrid allocates an empty grid whose cells all carry the fill color.
func NewGrid(w, h int, fill color.RGBA) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{
		W:        w,
		H:        h,
		occupied: make([]bool, w*h),
		colors:   make([]color.RGBA, w*h),
		fill:     fill,
	}
	g.Clear()
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Fill returns the placeholder color assigned to cleared cells.
func (g *Grid) Fill() color.RGBA { return g.fill }

// Occupancy exposes the backing occupancy slice for direct indexed access.
func (g *Grid) Occupancy() []bool { return g.occupied }

// Colors exposes the backing color slice for direct indexed access.
func (g *Grid) Colors() []color.RGBA { return g.colors }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("get (%d,%d) in %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfRange)
	}
	i := g.Index(x, y)
	return Cell{Occupied: g.occupied[i], Color: g.colors[i]}, nil
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, occupied bool, c color.RGBA) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) in %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfRange)
	}
	i := g.Index(x, y)
	g.occupied[i] = occupied
	g.colors[i] = c
	return nil
}

// Snapshot returns a deep copy that later mutation of g cannot affect.
func (g *Grid) Snapshot() *Grid {
	s := &Grid{
		W:        g.W,
		H:        g.H,
		occupied: make([]bool, len(g.occupied)),
		colors:   make([]color.RGBA, len(g.colors)),
		fill:     g.fill,
	}
	copy(s.occupied, g.occupied)
	copy(s.colors, g.colors)
	return s
}

// CopyInto overwrites dst with the contents of g without allocating.
func (g *Grid) CopyInto(dst *Grid) error {
	if err := g.sameSize(dst); err != nil {
		return err
	}
	copy(dst.occupied, g.occupied)
	copy(dst.colors, g.colors)
	return nil
}

// ReplaceAll publishes next as the grid contents in one step. The backing
// buffers are exchanged, so next holds the previous contents afterwards and
// can be reused as scratch space.
func (g *Grid) ReplaceAll(next *Grid) error {
	if err := g.sameSize(next); err != nil {
		return err
	}
	g.occupied, next.occupied = next.occupied, g.occupied
	g.colors, next.colors = next.colors, g.colors
	return nil
}

// Clear marks every cell unoccupied and resets its color to the fill color.
func (g *Grid) Clear() {
	for i := range g.occupied {
		g.occupied[i] = false
		g.colors[i] = g.fill
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, o := range g.occupied {
		if o {
			n++
		}
	}
	return n
}

// FillOccupancy writes 1 for occupied and 0 for empty cells into dst, which
// must hold at least W*H bytes.
func (g *Grid) FillOccupancy(dst []uint8) {
	for i, o := range g.occupied {
		if o {
			dst[i] = 1
			continue
		}
		dst[i] = 0
	}
}

func (g *Grid) sameSize(other *Grid) error {
	if other == nil {
		return fmt.Errorf("nil grid for %dx%d: %w", g.W, g.H, ErrDimensionMismatch)
	}
	if other.W != g.W || other.H != g.H {
		return fmt.Errorf("%dx%d vs %dx%d: %w", other.W, other.H, g.W, g.H, ErrDimensionMismatch)
	}
	return nil
}
