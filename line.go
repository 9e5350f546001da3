package potential

import (
	"fmt"
	"math/cmplx"
)

// LineMap maps the exterior of the line segment from Z1 to Z2 onto the
// exterior of the unit circle. Z1 maps to χ = −1 and Z2 maps to χ = +1.
//
// Use [NewLineMap] to construct a LineMap with validated endpoints. A LineMap
// with coincident endpoints produces NaN or infinite values.
type LineMap struct {
	// The segment's start point.
	Z1 complex128
	// The segment's end point.
	Z2 complex128
}

// NewLineMap returns the mapping for the segment [z1, z2]. It returns an error
// wrapping [ErrDegenerateGeometry] if the endpoints coincide or aren't finite.
func NewLineMap(z1, z2 complex128) (LineMap, error) {
	if isBad(z1) || isBad(z2) {
		return LineMap{}, fmt.Errorf("line endpoints %v, %v aren't finite: %w", z1, z2, ErrDegenerateGeometry)
	}
	if z1 == z2 {
		return LineMap{}, fmt.Errorf("line endpoints coincide at %v: %w", z1, ErrDegenerateGeometry)
	}
	return LineMap{Z1: z1, Z2: z2}, nil
}

// Normalization returns the affine map that sends Z1 to −1 and Z2 to +1.
func (l LineMap) Normalization() Affine {
	return NewAffineFromSegment(l.Z1, l.Z2)
}

// Forward implements Mapping.
//
// See [InverseJoukowski] for the branch convention.
func (l LineMap) Forward(z complex128) complex128 {
	return InverseJoukowski(l.Normalization().Apply(z))
}

// Inverse implements Mapping.
func (l LineMap) Inverse(chi complex128) complex128 {
	// z = ((z2−z1)·Z + (z1+z2)) / 2
	return ((l.Z2-l.Z1)*Joukowski(chi) + (l.Z1 + l.Z2)) / 2
}

// Length returns the length of the segment.
func (l LineMap) Length() float64 {
	return cmplx.Abs(l.Z2 - l.Z1)
}

// Midpoint returns the midpoint of the segment, the image of χ = ±i.
func (l LineMap) Midpoint() complex128 {
	return (l.Z1 + l.Z2) / 2
}

func (l LineMap) IsInf() bool {
	return cmplx.IsInf(l.Z1) || cmplx.IsInf(l.Z2)
}

func (l LineMap) IsNaN() bool {
	return cmplx.IsNaN(l.Z1) || cmplx.IsNaN(l.Z2)
}

func (l LineMap) String() string {
	return fmt.Sprintf("line(%v, %v)", l.Z1, l.Z2)
}
