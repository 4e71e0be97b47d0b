package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorScaleInPlace(t *testing.T) {
	v := Vector2[float32]{X: 1.5, Y: -2}
	v.Scale(2).Scale(0.5)
	assert.Equal(t, Vector2[float32]{X: 1.5, Y: -2}, v)

	p := Pt(3, 4)
	p.Scale(3)
	assert.Equal(t, Pt(9, 12), p)
}

func TestConvertVector(t *testing.T) {
	f := Vector2[float32]{X: 2.9, Y: 7.2}
	assert.Equal(t, Pt(2, 7), ConvertVector[int](f))

	u := Vector2[uint8]{X: 200, Y: 1}
	assert.Equal(t, Vector2[float64]{X: 200, Y: 1}, ConvertVector[float64](u))
}

func TestPointAsMapKey(t *testing.T) {
	seen := map[Point]struct{}{}
	seen[Pt(1, 2)] = struct{}{}
	seen[Pt(1, 2).Add(Pt(0, 0))] = struct{}{}
	seen[Pt(2, 1)] = struct{}{}
	assert.Len(t, seen, 2)
	assert.Equal(t, "(1, 2)", Pt(1, 2).String())
}
