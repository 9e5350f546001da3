package potential

import "math/cmplx"

// Mapping describes a conformal map between the physical plane, with
// coordinate z, and the canonical plane, with coordinate χ, in which the
// obstacle becomes the unit circle.
//
// Mappings are immutable values; both directions are pure functions.
type Mapping interface {
	// Forward maps a physical coordinate z to the canonical coordinate χ.
	Forward(z complex128) complex128
	// Inverse maps a canonical coordinate χ back to the physical plane.
	//
	// For all z not on the mapped geometry or its branch cut,
	// Inverse(Forward(z)) == z up to rounding.
	Inverse(chi complex128) complex128
}

var _ Mapping = LineMap{}
var _ Mapping = CircleMap{}

// Joukowski evaluates the Joukowski map Z = (χ + 1/χ) / 2, which sends the
// exterior of the unit circle onto the plane cut along [−1, 1].
func Joukowski(chi complex128) complex128 {
	return (chi + 1/chi) / 2
}

// InverseJoukowski returns χ = Z + sqrt(Z−1)·sqrt(Z+1), the branch of the
// inverse Joukowski map with |χ| ≥ 1.
//
// Both square roots are Go's principal square root ([cmplx.Sqrt]), whose cut
// lies on the negative real axis. Their product is analytic everywhere except
// on the segment [−1, 1] itself, so the only cut of the map is the segment.
// On the segment, the sign of the imaginary part of Z decides the side: a
// point with Im Z = +0 maps to the upper half of the unit circle and a point
// with Im Z = −0 maps to the lower half.
func InverseJoukowski(Z complex128) complex128 {
	return Z + cmplx.Sqrt(Z-1)*cmplx.Sqrt(Z+1)
}

// LineToChi maps z to the canonical plane of the segment [z1, z2].
func LineToChi(z, z1, z2 complex128) (complex128, error) {
	m, err := NewLineMap(z1, z2)
	if err != nil {
		return 0, err
	}
	return m.Forward(z), nil
}

// ChiToLine maps χ from the canonical plane of the segment [z1, z2] back to
// the physical plane.
func ChiToLine(chi, z1, z2 complex128) (complex128, error) {
	m, err := NewLineMap(z1, z2)
	if err != nil {
		return 0, err
	}
	return m.Inverse(chi), nil
}

// CircleToChi maps z to the canonical plane of the circle with the given
// center and radius.
func CircleToChi(z, center complex128, radius float64) (complex128, error) {
	m, err := NewCircleMap(center, radius)
	if err != nil {
		return 0, err
	}
	return m.Forward(z), nil
}

// ChiToCircle maps χ from the canonical plane of the circle with the given
// center and radius back to the physical plane.
func ChiToCircle(chi, center complex128, radius float64) (complex128, error) {
	m, err := NewCircleMap(center, radius)
	if err != nil {
		return 0, err
	}
	return m.Inverse(chi), nil
}
