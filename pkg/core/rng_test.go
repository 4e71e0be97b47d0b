package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.IntRange(2, 4) != b.IntRange(2, 4) {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
	a.Reseed(7)
	b.Reseed(7)
	if a.Float64() != b.Float64() {
		t.Fatal("reseeded streams should match")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(2, 4); v < 2 || v > 4 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if v := r.FloatRange(0, 8.99); v < 0 || v >= 8.99 {
			t.Fatalf("FloatRange out of bounds: %f", v)
		}
	}
	if r.IntRange(5, 5) != 5 {
		t.Fatal("degenerate range should return lo")
	}
	if r.Chance(0) || !r.Chance(1) {
		t.Fatal("Chance must honor 0 and 1 exactly")
	}
}

func TestRNGShufflePermutes(t *testing.T) {
	r := NewRNG(3)
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	seen := make([]bool, len(vals))
	for _, v := range vals {
		seen[v] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("value %d lost during shuffle", i)
		}
	}
}
