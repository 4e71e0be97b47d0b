package sand

import (
	"image/color"

	simcore "mad-sand/internal/core"
	"mad-sand/pkg/core"
)

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() simcore.Size { return simcore.Size{W: w.Width(), H: w.Height()} }

// Step advances one frame.
func (w *World) Step() []core.Point { return w.ProcessFrame() }

// Paint applies a brush stroke centered on (x, y).
func (w *World) Paint(tool simcore.Tool, x, y int, c color.RGBA, radius int) {
	switch tool {
	case simcore.ToolSand:
		w.AddSand(x, y, c, radius)
	case simcore.ToolBlock:
		w.AddBlock(x, y, c, radius)
	case simcore.ToolErase:
		w.Erase(x, y, radius)
	}
}

func init() {
	simcore.Register("sand", func(cfg map[string]string) simcore.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
