package render

import (
	"image/color"

	"mad-sand/pkg/core"
)

// ColorSource reports the display color of a grid cell.
type ColorSource interface {
	ColorAt(x, y int) color.RGBA
}

// Canvas is an RGBA pixel buffer with one pixel per grid cell.
type Canvas struct {
	w, h int
	buf  []byte
}

// NewCanvas allocates a canvas for a w*h grid.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Pixels exposes the RGBA buffer in row-major order.
func (c *Canvas) Pixels() []byte { return c.buf }

// Set writes one cell's color. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	base := (y*c.w + x) * 4
	c.buf[base+0] = col.R
	c.buf[base+1] = col.G
	c.buf[base+2] = col.B
	c.buf[base+3] = col.A
}

// At returns the color stored for a cell.
func (c *Canvas) At(x, y int) color.RGBA {
	base := (y*c.w + x) * 4
	return color.RGBA{R: c.buf[base], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

// RepaintAll copies every cell color from src.
func (c *Canvas) RepaintAll(src ColorSource) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			c.Set(x, y, src.ColorAt(x, y))
		}
	}
}

// Repaint refreshes only the listed cells and returns how many were written.
// Duplicates are written more than once, which is harmless.
func (c *Canvas) Repaint(src ColorSource, changed []core.Point) int {
	n := 0
	for _, p := range changed {
		if p.X < 0 || p.Y < 0 || p.X >= c.w || p.Y >= c.h {
			continue
		}
		c.Set(p.X, p.Y, src.ColorAt(p.X, p.Y))
		n++
	}
	return n
}

// RepaintArea refreshes the square that bounds a disk of the given radius
// around (cx, cy), with one extra cell of margin for rounding.
func (c *Canvas) RepaintArea(src ColorSource, cx, cy, radius int) {
	r := max(0, radius) + 1
	for y := max(0, cy-r); y <= min(c.h-1, cy+r); y++ {
		for x := max(0, cx-r); x <= min(c.w-1, cx+r); x++ {
			c.Set(x, y, src.ColorAt(x, y))
		}
	}
}
