//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type brushColorProvider interface {
	BrushColor() color.RGBA
}

// Overlay draws optional visuals on top of the base simulation: cell grid
// lines and an outline of the cell under the pointer in the brush color.
type Overlay struct {
	sim        core.Sim
	scale      int
	showGrid   bool
	showCursor bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, showCursor: true}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showGrid && scale >= 4 {
		o.drawGrid(screen, size, scale)
	}
	if o.showCursor {
		if provider, ok := o.sim.(brushColorProvider); ok {
			o.drawCursor(screen, size, scale, provider.BrushColor())
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size, scale int) {
	line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	w, h := float32(size.W*scale), float32(size.H*scale)
	for x := 1; x < size.W; x++ {
		fx := float32(x * scale)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, line, false)
	}
	for y := 1; y < size.H; y++ {
		fy := float32(y * scale)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, line, false)
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image, size core.Size, scale int, col color.RGBA) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/scale, my/scale
	if cx >= size.W || cy >= size.H {
		return
	}
	s := float32(scale)
	vector.StrokeRect(screen, float32(cx)*s, float32(cy)*s, s, s, 1, col, false)
}
