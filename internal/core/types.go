package core

import (
	"image/color"
	"sort"

	geom "mad-sand/pkg/core"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a driver needs from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances one tick and returns the cells that changed, possibly
	// with duplicates, so the caller can repaint only those.
	Step() []geom.Point
	ColorAt(x, y int) color.RGBA
}

// Tool selects what a paint gesture does.
type Tool uint8

const (
	ToolSand Tool = iota
	ToolBlock
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolSand:
		return "sand"
	case ToolBlock:
		return "block"
	case ToolErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Brush is implemented by sims that accept pointer painting.
type Brush interface {
	Paint(tool Tool, x, y int, c color.RGBA, radius int)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
