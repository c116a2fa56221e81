package render

import (
	"image/color"

	"falling-sand/internal/core"
)

// fillGrainRGBA converts a grid snapshot into RGBA pixels in buf, one pixel
// per cell. Empty cells take the background color whatever color they last
// held.
func fillGrainRGBA(buf []byte, g *core.Grid, background color.RGBA) {
	occ := g.Occupancy()
	colors := g.Colors()
	for i, o := range occ {
		base := i * 4
		col := background
		if o {
			col = colors[i]
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Rect is a filled square in surface pixels.
type Rect struct {
	X, Y, Size int
	Color      color.RGBA
}

// GrainRects lists one cellSize square per occupied cell of g, in row-major
// order.
func GrainRects(g *core.Grid, cellSize int) []Rect {
	occ := g.Occupancy()
	colors := g.Colors()
	rects := make([]Rect, 0, g.Count())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			if !occ[i] {
				continue
			}
			rects = append(rects, Rect{X: x * cellSize, Y: y * cellSize, Size: cellSize, Color: colors[i]})
		}
	}
	return rects
}
