package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	Scene    string
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 4, TPS: 60, Seed: 42, Width: 200, Height: 150, Scene: "empty", HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial block layout (empty, funnel, hourglass)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 to hide")
}

// SimConfig returns the key/value map handed to a sim factory for a grid of
// the given size.
func (c *Config) SimConfig(w, h int) map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(w),
		"h":     strconv.Itoa(h),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"scene": c.Scene,
	}
}
