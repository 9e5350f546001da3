package potential

import (
	"fmt"
	"math"
	"math/cmplx"
)

// CircleMap maps the circle with the given center and radius onto the unit
// circle by translation and uniform scaling. It has no branch cuts.
type CircleMap struct {
	Center complex128
	Radius float64
}

// NewCircleMap returns the mapping for the circle around center. It returns an
// error wrapping [ErrInvalidParameter] if radius isn't strictly positive and
// finite, and one wrapping [ErrDegenerateGeometry] if center isn't finite.
func NewCircleMap(center complex128, radius float64) (CircleMap, error) {
	if isBad(center) {
		return CircleMap{}, fmt.Errorf("circle center %v isn't finite: %w", center, ErrDegenerateGeometry)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return CircleMap{}, fmt.Errorf("circle radius %g must be positive and finite: %w", radius, ErrInvalidParameter)
	}
	return CircleMap{Center: center, Radius: radius}, nil
}

// Normalization returns the affine map (z − Center) / Radius.
func (c CircleMap) Normalization() Affine {
	return Translate(-c.Center).Then(Scale(complex(1/c.Radius, 0)))
}

// Forward implements Mapping.
func (c CircleMap) Forward(z complex128) complex128 {
	return (z - c.Center) / complex(c.Radius, 0)
}

// Inverse implements Mapping.
func (c CircleMap) Inverse(chi complex128) complex128 {
	return chi*complex(c.Radius, 0) + c.Center
}

// Contains reports whether z lies strictly inside the circle.
func (c CircleMap) Contains(z complex128) bool {
	return cmplx.Abs(z-c.Center) < c.Radius
}

func (c CircleMap) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c CircleMap) IsInf() bool {
	return cmplx.IsInf(c.Center) || math.IsInf(c.Radius, 0)
}

func (c CircleMap) IsNaN() bool {
	return cmplx.IsNaN(c.Center) || math.IsNaN(c.Radius)
}

func (c CircleMap) String() string {
	return fmt.Sprintf("circle(%v, %g)", c.Center, c.Radius)
}
