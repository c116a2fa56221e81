package sand

import (
	"fmt"
	"strconv"
)

// Config controls the sand surface and its pacing. It is fixed once a World
// is built, apart from the HUD-adjustable parameters.
type Config struct {
	Width    int
	Height   int
	CellSize int

	TicksPerUpdate int
	HueStep        int

	FillDensity float64
	Seed        int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		CellSize:       8,
		TicksPerUpdate: 30,
		HueStep:        10,
		Seed:           1337,
	}
}

// Cols returns the number of grid columns covered by the surface.
func (c Config) Cols() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

// Rows returns the number of grid rows covered by the surface.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// Validate reports configurations whose cells do not tile the surface.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	}
	if c.Cols() == 0 || c.Rows() == 0 {
		return fmt.Errorf("surface %dx%d smaller than one %dpx cell", c.Width, c.Height, c.CellSize)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("cell size %d does not divide surface %dx%d; edges stay uncovered", c.CellSize, c.Width, c.Height)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TicksPerUpdate = parsed
		}
	}
	if v, ok := cfg["hue_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.HueStep = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FillDensity = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
