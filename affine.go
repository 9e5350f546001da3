package potential

import "math/cmplx"

// Affine describes a complex affine map z ↦ A·z + B.
//
// In terms of the real plane this is a similarity transform: a rotation by
// arg(A), a uniform scale by |A| and a translation by B. Composition follows
// the same convention as function application, (a.Mul(b)).Apply(z) ==
// a.Apply(b.Apply(z)).
type Affine struct {
	A, B complex128
}

// Identity is the identity map.
var Identity = Affine{1, 0}

// Scale creates an affine map that multiplies by s. A complex s rotates as
// well as scales.
func Scale(s complex128) Affine {
	return Affine{s, 0}
}

// Translate creates an affine map representing translation by v.
func Translate(v complex128) Affine {
	return Affine{1, v}
}

// NewAffineFromSegment returns the normalization that sends z1 to −1 and z2 to
// +1, that is Z = (2z − (z1+z2)) / (z2 − z1).
//
// Produces NaN or infinite coefficients when z1 == z2; use [NewLineMap] for a
// checked construction.
func NewAffineFromSegment(z1, z2 complex128) Affine {
	d := z2 - z1
	return Affine{
		A: 2 / d,
		B: -(z1 + z2) / d,
	}
}

// Apply maps z.
func (aff Affine) Apply(z complex128) complex128 {
	return aff.A*z + aff.B
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		A: aff.A * o.A,
		B: aff.A*o.B + aff.B,
	}
}

// Then creates aff followed by o.
//
// Equivalent to "o * aff"
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// Determinant computes the determinant of the equivalent real 2×2 linear map,
// which is |A|².
func (aff Affine) Determinant() float64 {
	r := cmplx.Abs(aff.A)
	return r * r
}

// Invert computes the inverse map.
//
// Produces NaN or infinite values when A is zero.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.A
	return Affine{
		A: inv,
		B: -aff.B * inv,
	}
}

// Translation returns the translation component of this map.
func (aff Affine) Translation() complex128 {
	return aff.B
}

// Angle returns the rotation of the map in radians.
func (aff Affine) Angle() float64 {
	return cmplx.Phase(aff.A)
}

func (aff Affine) IsInf() bool {
	return cmplx.IsInf(aff.A) || cmplx.IsInf(aff.B)
}

func (aff Affine) IsNaN() bool {
	return cmplx.IsNaN(aff.A) || cmplx.IsNaN(aff.B)
}
