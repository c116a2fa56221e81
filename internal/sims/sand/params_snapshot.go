package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

const (
	maxTicksPerUpdate = 240
	maxHueStep        = 180
)

// Parameters reports the world's configuration and live counters.
func (w *World) Parameters() core.ParameterSnapshot {
	size := w.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Surface",
			Params: []core.Parameter{
				infoParam("w", "Width", w.cfg.Width),
				infoParam("h", "Height", w.cfg.Height),
				infoParam("cell", "Cell size", w.cfg.CellSize),
				infoParam("cols", "Columns", size.W),
				infoParam("rows", "Rows", size.H),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				intParam("ticks_per_update", "Frames per tick", w.cfg.TicksPerUpdate),
				infoParam("ticks", "Ticks", int(w.ticks)),
				infoParam("grains", "Grains", w.Grains()),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("hue_step", "Hue step", w.hue.Step()),
				infoParam("hue", "Hue", w.hue.Degrees()),
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "ticks_per_update", Label: "Frames per tick", Step: 1, Min: 1, Max: maxTicksPerUpdate, HasMin: true, HasMax: true},
		{Key: "hue_step", Label: "Hue step", Step: 5, Min: 0, Max: maxHueStep, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable parameter, clamping it to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "ticks_per_update":
			w.cfg.TicksPerUpdate = value
		case "hue_step":
			w.cfg.HueStep = value
			w.hue.SetStep(value)
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func infoParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInfo, Value: strconv.Itoa(value)}
}
