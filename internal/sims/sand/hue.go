package sand

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// Placeholder is the color carried by cells that have never held a grain.
var Placeholder = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// HueColor converts a hue in degrees to an opaque color at full saturation
// and value. Hues outside [0, 360) wrap.
func HueColor(deg int) color.RGBA {
	deg = wrapDegrees(deg)
	r, g, b, err := colorconv.HSVToRGB(float64(deg), 1, 1)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hue is the rotating brush color applied to newly placed grains.
type Hue struct {
	deg  int
	step int
}

// NewHue starts at 0 degrees and advances by step degrees per stroke.
func NewHue(step int) Hue {
	return Hue{step: step}
}

// Degrees returns the current hue in [0, 360).
func (h Hue) Degrees() int { return h.deg }

// Step returns the per-stroke advance in degrees.
func (h Hue) Step() int { return h.step }

// Color returns the color for grains placed at the current hue.
func (h Hue) Color() color.RGBA { return HueColor(h.deg) }

// SetStep changes the per-stroke advance.
func (h *Hue) SetStep(step int) { h.step = step }

// Advance moves the hue forward by one step, wrapping past 360 back to 0.
func (h *Hue) Advance() {
	h.deg = wrapDegrees(h.deg + h.step)
}

func wrapDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
