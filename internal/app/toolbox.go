package app

import (
	"image/color"

	"mad-sand/internal/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultRadius is the brush radius used for pointer painting.
	DefaultRadius = 8
	minRadius     = 1
	maxRadius     = 32
	// cycleHueStep is the hue advance per painted frame while cycling.
	cycleHueStep = 2.0
)

// DefaultPalette lists the selectable paint colors.
var DefaultPalette = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
}

// Toolbox tracks the current paint tool, color and brush size.
type Toolbox struct {
	palette []color.RGBA
	index   int
	tool    core.Tool
	radius  int

	cycling bool
	hue     float64
}

// NewToolbox returns a toolbox painting red sand with the default radius.
func NewToolbox() *Toolbox {
	return &Toolbox{palette: DefaultPalette, index: 2, tool: core.ToolSand, radius: DefaultRadius}
}

// Tool returns the active tool.
func (t *Toolbox) Tool() core.Tool { return t.tool }

// SetTool switches the active tool.
func (t *Toolbox) SetTool(tool core.Tool) { t.tool = tool }

// Radius returns the brush radius.
func (t *Toolbox) Radius() int { return t.radius }

// Grow enlarges the brush, up to a fixed maximum.
func (t *Toolbox) Grow() { t.radius = min(maxRadius, t.radius+1) }

// Shrink reduces the brush, down to a radius of 1.
func (t *Toolbox) Shrink() { t.radius = max(minRadius, t.radius-1) }

// SelectColor picks palette entry i and stops color cycling. It reports
// whether i was valid.
func (t *Toolbox) SelectColor(i int) bool {
	if i < 0 || i >= len(t.palette) {
		return false
	}
	t.index = i
	t.cycling = false
	return true
}

// ToggleCycling switches between the fixed palette color and a color that
// walks around the hue wheel while painting.
func (t *Toolbox) ToggleCycling() { t.cycling = !t.cycling }

// Cycling reports whether color cycling is on.
func (t *Toolbox) Cycling() bool { return t.cycling }

// Color returns the current paint color.
func (t *Toolbox) Color() color.RGBA {
	if !t.cycling {
		return t.palette[t.index]
	}
	r, g, b := colorful.Hsv(t.hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Advance moves the cycling hue forward; call once per painted frame.
func (t *Toolbox) Advance() {
	t.hue += cycleHueStep
	if t.hue >= 360 {
		t.hue -= 360
	}
}

// Apply paints with the current tool at grid coordinate (x, y).
func (t *Toolbox) Apply(b core.Brush, x, y int) {
	b.Paint(t.tool, x, y, t.Color(), t.radius)
	if t.cycling {
		t.Advance()
	}
}

// GridCoord converts a pointer position in screen pixels to a grid cell,
// clamping to the grid.
func GridCoord(px, py, scale int, size core.Size) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	x := min(max(px/scale, 0), size.W-1)
	y := min(max(py/scale, 0), size.H-1)
	return x, y
}
