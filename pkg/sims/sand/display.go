package sand

import "image/color"

// BlockColor is the color scenes use for walls.
var BlockColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// CellColor maps a cell to its display color.
func CellColor(c Cell, background color.RGBA) color.RGBA {
	switch c.Kind {
	case Sand, Block:
		col := c.Particle.Color
		col.A = 255
		return col
	case Empty:
		return background
	default:
		return background
	}
}

// ColorAt returns the display color of cell (x, y).
func (w *World) ColorAt(x, y int) color.RGBA {
	return CellColor(w.grid.Get(x, y), w.cfg.Background)
}
