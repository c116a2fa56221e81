package render

import (
	"image/color"
	"slices"
	"testing"

	"falling-sand/internal/core"
)

func TestFillGrainRGBAUsesCellColors(t *testing.T) {
	stale := color.RGBA{R: 9, G: 9, B: 9, A: 255}
	g := core.NewGrid(2, 1, stale)
	_ = g.Set(1, 0, true, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	buf := make([]byte, 8)
	fillGrainRGBA(buf, g, color.RGBA{A: 255})
	want := []byte{0, 0, 0, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestGrainRectsCoverOccupiedCells(t *testing.T) {
	g := core.NewGrid(3, 2, color.RGBA{})
	blue := color.RGBA{B: 255, A: 255}
	_ = g.Set(2, 0, true, blue)
	_ = g.Set(0, 1, true, blue)
	_ = g.Set(1, 1, false, blue)

	rects := GrainRects(g, 8)
	want := []Rect{
		{X: 16, Y: 0, Size: 8, Color: blue},
		{X: 0, Y: 8, Size: 8, Color: blue},
	}
	if !slices.Equal(rects, want) {
		t.Fatalf("rects = %+v, expected %+v", rects, want)
	}
}
