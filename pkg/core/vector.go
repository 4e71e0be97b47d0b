package core

import "fmt"

// Number is the set of numeric types a Vector2 can carry.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector2 is a 2D pair used both as a grid coordinate and as a velocity.
type Vector2[T Number] struct {
	X, Y T
}

// Point is an integer grid coordinate. It is comparable and usable as a map key.
type Point = Vector2[int]

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Scale multiplies both components by s in place and returns the receiver.
func (v *Vector2[T]) Scale(s T) *Vector2[T] {
	v.X *= s
	v.Y *= s
	return v
}

// Add returns the component-wise sum of v and o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// ConvertVector changes the numeric representation of v. Conversions follow Go's
// rules, so float to int truncates toward zero.
func ConvertVector[U, T Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{X: U(v.X), Y: U(v.Y)}
}
