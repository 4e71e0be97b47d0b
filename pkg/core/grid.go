package core

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is the panic value (wrapped) raised by checked grid accessors.
var ErrOutOfRange = errors.New("coordinate out of range")

// Grid stores a fixed-size 2D grid of cells in row-major order.
type Grid[T any] struct {
	w, h int
	data []T
}

// NewGrid allocates a w*h grid with every cell set to def. Non-positive
// dimensions are clamped to 1.
func NewGrid[T any](w, h int, def T) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[T]{w: w, h: h, data: make([]T, w*h)}
	g.Fill(def)
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return x + y*g.w }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid[T]) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfRange, x, y, g.w, g.h))
	}
}

// Get returns the cell at (x, y). It panics if the coordinate is outside the grid.
func (g *Grid[T]) Get(x, y int) T {
	g.check(x, y)
	return g.data[g.Index(x, y)]
}

// Set overwrites the cell at (x, y). It panics if the coordinate is outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.check(x, y)
	g.data[g.Index(x, y)] = v
}

// Swap exchanges the contents of two cells.
func (g *Grid[T]) Swap(x1, y1, x2, y2 int) {
	g.check(x1, y1)
	g.check(x2, y2)
	i, j := g.Index(x1, y1), g.Index(x2, y2)
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// SetNeighbor writes v into the 3x3 block centered on (cx, cy), clamped to the
// grid edges. The center itself may lie outside the grid.
func (g *Grid[T]) SetNeighbor(cx, cy int, v T) {
	x0, x1 := max(0, cx-1), min(cx+1, g.w-1)
	y0, y1 := max(0, cy-1), min(cy+1, g.h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.data[g.Index(x, y)] = v
		}
	}
}

// All yields a pointer to every cell in row-major order for bulk transforms.
func (g *Grid[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// Cells exposes the backing slice. Callers must not change its length.
func (g *Grid[T]) Cells() []T { return g.data }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
