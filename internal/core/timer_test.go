package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, should step")
	}
}

func TestFixedStepBacklogCapped(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 2 {
		t.Fatalf("expected backlog to be capped, got %d catch-up steps", steps)
	}
}

func TestFixedStepDefaultTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got interval %v", got)
	}
}

func TestToolString(t *testing.T) {
	for tool, want := range map[Tool]string{ToolSand: "sand", ToolBlock: "block", ToolErase: "erase", Tool(9): "unknown"} {
		if got := tool.String(); got != want {
			t.Fatalf("Tool(%d).String() = %q, want %q", tool, got, want)
		}
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("n", "N", 3)}},
		{Name: "B", Params: []Parameter{FloatParam("g", "G", 0.15), BoolParam("b", "B", true)}},
	}}
	p, ok := snap.Lookup("g")
	if !ok || p.Value != "0.15" || p.Type != ParamTypeFloat {
		t.Fatalf("unexpected lookup result %+v ok=%v", p, ok)
	}
	if p, _ := snap.Lookup("b"); p.Value != "true" {
		t.Fatalf("bool param value = %q", p.Value)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}
