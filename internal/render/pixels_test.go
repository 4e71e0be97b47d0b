package render

import (
	"image/color"
	"testing"

	"mad-sand/pkg/core"
)

type stubSource struct {
	calls int
	col   color.RGBA
}

func (s *stubSource) ColorAt(x, y int) color.RGBA {
	s.calls++
	return s.col
}

func TestRepaintTouchesOnlyChangedCells(t *testing.T) {
	c := NewCanvas(4, 3)
	src := &stubSource{col: color.RGBA{R: 10, G: 20, B: 30, A: 255}}

	n := c.Repaint(src, []core.Point{core.Pt(1, 1), core.Pt(3, 2), core.Pt(1, 1), core.Pt(9, 9)})

	if n != 3 || src.calls != 3 {
		t.Fatalf("expected 3 writes, got n=%d calls=%d", n, src.calls)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := c.At(x, y)
			painted := (x == 1 && y == 1) || (x == 3 && y == 2)
			if painted && got != src.col {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, src.col)
			}
			if !painted && got != (color.RGBA{}) {
				t.Fatalf("cell (%d,%d) should be untouched, got %v", x, y, got)
			}
		}
	}
}

func TestRepaintAll(t *testing.T) {
	c := NewCanvas(2, 2)
	src := &stubSource{col: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	c.RepaintAll(src)
	if src.calls != 4 {
		t.Fatalf("expected 4 lookups, got %d", src.calls)
	}
	for i, b := range c.Pixels() {
		if b != 255 {
			t.Fatalf("byte %d = %d, want 255", i, b)
		}
	}
	c.Set(-1, 0, color.RGBA{})
	c.Set(2, 0, color.RGBA{})
	if w, h := c.Size(); w != 2 || h != 2 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestRepaintAreaClamps(t *testing.T) {
	c := NewCanvas(10, 10)
	src := &stubSource{col: color.RGBA{G: 1, A: 255}}
	c.RepaintArea(src, 0, 0, 2)
	// Radius 2 plus margin covers x,y in [0,3].
	if src.calls != 16 {
		t.Fatalf("expected 16 lookups, got %d", src.calls)
	}
	if c.At(3, 3) != src.col || c.At(4, 0) != (color.RGBA{}) {
		t.Fatal("area repaint covered the wrong cells")
	}
}
