//go:build ebiten

package render

import (
	"mad-sand/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in sync with a simulation, uploading the
// canvas only when cells changed.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
	dirty  bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		canvas: NewCanvas(w, h),
		img:    ebiten.NewImage(w, h),
		dirty:  true,
	}
}

// Reset repaints every cell from src.
func (gp *GridPainter) Reset(src ColorSource) {
	gp.canvas.RepaintAll(src)
	gp.dirty = true
}

// Update repaints the changed cells from src.
func (gp *GridPainter) Update(src ColorSource, changed []core.Point) {
	if gp.canvas.Repaint(src, changed) > 0 {
		gp.dirty = true
	}
}

// UpdateArea repaints the square around a brush stroke of the given radius.
func (gp *GridPainter) UpdateArea(src ColorSource, cx, cy, radius int) {
	gp.canvas.RepaintArea(src, cx, cy, radius)
	gp.dirty = true
}

// Draw uploads pending changes and draws the grid scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if gp.dirty {
		gp.img.WritePixels(gp.canvas.Pixels())
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
