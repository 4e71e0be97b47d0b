package sand

import (
	"image/color"
	"strconv"
)

// Params holds the movement constants of the automaton.
type Params struct {
	// Gravity is added to a particle's vertical speed every time it is visited.
	Gravity float64
	// FallProbeChance is the probability a particle looks below itself at all
	// in a given pass.
	FallProbeChance float64
	// LandingDamping scales vertical speed when a fall is cut short.
	LandingDamping float64
	// SlideSpeed replaces vertical speed after an aggressive slide.
	SlideSpeed float64
	// SlideReachMin and SlideReachMax bound the horizontal jump of an
	// aggressive slide.
	SlideReachMin int
	SlideReachMax int
	// InitialSpeed is the vertical speed of freshly painted sand.
	InitialSpeed float64
	// ShuffleColumns scans columns in shuffled order instead of ascending.
	ShuffleColumns bool
}

// Config controls the sand World.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Scene string

	Background color.RGBA

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      200,
		Height:     150,
		Seed:       1,
		Scene:      SceneEmpty,
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Params: Params{
			Gravity:         0.15,
			FallProbeChance: 0.95,
			LandingDamping:  0.1,
			SlideSpeed:      1.0,
			SlideReachMin:   2,
			SlideReachMax:   4,
			InitialSpeed:    2.0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && validScene(v) {
		c.Scene = v
	}
	applyParam(&c.Params, cfg)
	return c
}

func applyParam(p *Params, cfg map[string]string) {
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.Gravity = parsed
		}
	}
	if v, ok := cfg["fall_probe_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p.FallProbeChance = parsed
		}
	}
	if v, ok := cfg["landing_damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.LandingDamping = parsed
		}
	}
	if v, ok := cfg["slide_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.SlideSpeed = parsed
		}
	}
	if v, ok := cfg["slide_reach_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			p.SlideReachMin = parsed
		}
	}
	if v, ok := cfg["slide_reach_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			p.SlideReachMax = parsed
		}
	}
	if p.SlideReachMax < p.SlideReachMin {
		p.SlideReachMax = p.SlideReachMin
	}
	if v, ok := cfg["initial_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.InitialSpeed = parsed
		}
	}
	if v, ok := cfg["shuffle_columns"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			p.ShuffleColumns = parsed
		}
	}
}
