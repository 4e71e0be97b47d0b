package app

import (
	"flag"
	"image/color"
	"testing"

	"mad-sand/internal/core"
)

type paintCall struct {
	tool   core.Tool
	x, y   int
	col    color.RGBA
	radius int
}

type recordingBrush struct{ calls []paintCall }

func (b *recordingBrush) Paint(tool core.Tool, x, y int, c color.RGBA, radius int) {
	b.calls = append(b.calls, paintCall{tool, x, y, c, radius})
}

func TestToolboxDefaults(t *testing.T) {
	tb := NewToolbox()
	if tb.Tool() != core.ToolSand {
		t.Fatalf("default tool = %v", tb.Tool())
	}
	if tb.Radius() != DefaultRadius {
		t.Fatalf("default radius = %d", tb.Radius())
	}
	if got := tb.Color(); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("default color = %v", got)
	}
}

func TestToolboxRadiusBounds(t *testing.T) {
	tb := NewToolbox()
	for i := 0; i < 100; i++ {
		tb.Shrink()
	}
	if tb.Radius() != minRadius {
		t.Fatalf("radius after shrinking = %d", tb.Radius())
	}
	for i := 0; i < 100; i++ {
		tb.Grow()
	}
	if tb.Radius() != maxRadius {
		t.Fatalf("radius after growing = %d", tb.Radius())
	}
}

func TestToolboxPaletteAndCycling(t *testing.T) {
	tb := NewToolbox()
	if !tb.SelectColor(4) || tb.Color() != DefaultPalette[4] {
		t.Fatalf("expected blue, got %v", tb.Color())
	}
	if tb.SelectColor(5) || tb.SelectColor(-1) {
		t.Fatal("out-of-range palette index accepted")
	}

	tb.ToggleCycling()
	first := tb.Color()
	if first.A != 255 {
		t.Fatalf("cycled color should be opaque, got %v", first)
	}
	for i := 0; i < 30; i++ {
		tb.Advance()
	}
	if tb.Color() == first {
		t.Fatal("cycling color did not change after advancing")
	}
	tb.SelectColor(0)
	if tb.Cycling() {
		t.Fatal("selecting a palette color should stop cycling")
	}
}

func TestToolboxApply(t *testing.T) {
	tb := NewToolbox()
	tb.SetTool(core.ToolBlock)
	b := &recordingBrush{}
	tb.Apply(b, 3, 4)
	if len(b.calls) != 1 {
		t.Fatalf("expected one paint call, got %d", len(b.calls))
	}
	want := paintCall{core.ToolBlock, 3, 4, DefaultPalette[2], DefaultRadius}
	if b.calls[0] != want {
		t.Fatalf("paint call = %+v, want %+v", b.calls[0], want)
	}

	tb.ToggleCycling()
	tb.Apply(b, 0, 0)
	tb.Apply(b, 0, 0)
	if b.calls[1].col == b.calls[2].col {
		t.Fatal("cycling should advance the color between strokes")
	}
}

func TestGridCoordClamps(t *testing.T) {
	size := core.Size{W: 10, H: 5}
	cases := []struct {
		px, py, scale int
		x, y          int
	}{
		{0, 0, 4, 0, 0},
		{13, 7, 4, 3, 1},
		{-20, 500, 4, 0, 4},
		{999, 3, 0, 9, 3},
	}
	for _, tc := range cases {
		x, y := GridCoord(tc.px, tc.py, tc.scale, size)
		if x != tc.x || y != tc.y {
			t.Fatalf("GridCoord(%d,%d,%d) = (%d,%d), want (%d,%d)", tc.px, tc.py, tc.scale, x, y, tc.x, tc.y)
		}
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "64", "-scene", "funnel", "-seed", "5"}); err != nil {
		t.Fatal(err)
	}
	m := cfg.SimConfig(cfg.Width, 32)
	if m["w"] != "64" || m["h"] != "32" || m["scene"] != "funnel" || m["seed"] != "5" {
		t.Fatalf("unexpected sim config %v", m)
	}
}
