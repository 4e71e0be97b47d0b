package sand

import simcore "mad-sand/internal/core"

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() simcore.ParameterSnapshot {
	p := w.cfg.Params
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{
		{
			Name: "World",
			Params: []simcore.Parameter{
				simcore.IntParam("w", "Width", w.Width()),
				simcore.IntParam("h", "Height", w.Height()),
				simcore.IntParam("active_rooms", "Active rooms", w.ActiveRooms()),
				simcore.IntParam("sand_count", "Sand", w.Count(Sand)),
			},
		},
		{
			Name: "Motion",
			Params: []simcore.Parameter{
				simcore.FloatParam("gravity", "Gravity", p.Gravity),
				simcore.FloatParam("fall_probe_chance", "Fall chance", p.FallProbeChance),
				simcore.FloatParam("landing_damping", "Landing damping", p.LandingDamping),
				simcore.FloatParam("slide_speed", "Slide speed", p.SlideSpeed),
				simcore.IntParam("slide_reach_max", "Slide reach", p.SlideReachMax),
				simcore.BoolParam("shuffle_columns", "Shuffle columns", p.ShuffleColumns),
			},
		},
	}}
}

// ParameterControls lists the parameters the HUD may adjust.
func (w *World) ParameterControls() []simcore.ParameterControl {
	return []simcore.ParameterControl{
		{Key: "gravity", Label: "Gravity", Type: simcore.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "fall_probe_chance", Label: "Fall chance", Type: simcore.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "landing_damping", Label: "Landing damping", Type: simcore.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "slide_reach_max", Label: "Slide reach", Type: simcore.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
		{Key: "shuffle_columns", Label: "Shuffle columns", Type: simcore.ParamTypeBool},
	}
}

// SetFloatParameter updates a float tunable, clamping it to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := &w.cfg.Params
	switch key {
	case "gravity":
		p.Gravity = clampFloat(value, 0, 2)
	case "fall_probe_chance":
		p.FallProbeChance = clampFloat(value, 0, 1)
	case "landing_damping":
		p.LandingDamping = clampFloat(value, 0, 1)
	case "slide_speed":
		p.SlideSpeed = clampFloat(value, 0, 4)
	case "initial_speed":
		p.InitialSpeed = clampFloat(value, 0, 8)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.cfg.Params
	switch key {
	case "slide_reach_max":
		p.SlideReachMax = max(p.SlideReachMin, min(value, 8))
	case "slide_reach_min":
		p.SlideReachMin = max(1, min(value, p.SlideReachMax))
	default:
		return false
	}
	return true
}

// SetBoolParameter toggles a boolean tunable.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "shuffle_columns":
		w.cfg.Params.ShuffleColumns = value
	default:
		return false
	}
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
