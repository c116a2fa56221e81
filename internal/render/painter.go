//go:build ebiten

package render

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell data into a single image, one pixel per cell, and
// draws it scaled so each cell covers a scale*scale square.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// BlitGrid draws every occupied cell of the snapshot in its own color.
func (gp *GridPainter) BlitGrid(dst *ebiten.Image, g *core.Grid, background color.RGBA, scale int) {
	if g == nil || g.W != gp.w || g.H != gp.h {
		return
	}
	fillGrainRGBA(gp.buf, g, background)
	gp.draw(dst, scale)
}

// Blit draws binary cell data using the on and off colors.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
