package potential

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in the physical plane, such as the domain
// over which a flow field is sampled.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of z0 and z1, ensuring
// that width and height are non-negative.
func NewRectFromPoints(z0, z1 complex128) Rect {
	return Rect{real(z0), imag(z0), real(z1), imag(z1)}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() complex128 {
	return complex(0.5*(r.X0+r.X1), 0.5*(r.Y0+r.Y1))
}

// Contains reports whether z lies in the rectangle, including its edges.
func (r Rect) Contains(z complex128) bool {
	x, y := real(z), imag(z)
	return x >= r.X0 &&
		x <= r.X1 &&
		y >= r.Y0 &&
		y <= r.Y1
}

func (r Rect) AspectRatio() float64 {
	return r.Height() / r.Width()
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}
