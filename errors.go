package potential

import (
	"errors"
	"math/cmplx"
)

var (
	// ErrDegenerateGeometry is returned when geometry data cannot define a
	// mapping, such as a line segment whose endpoints coincide.
	ErrDegenerateGeometry = errors.New("potential: degenerate geometry")

	// ErrInvalidParameter is returned for parameters outside their documented
	// range, such as a non-positive radius or a zero number of integration
	// points. It is always reported before any computation starts.
	ErrInvalidParameter = errors.New("potential: invalid parameter")

	// ErrDomain is returned when a function is evaluated outside its domain of
	// analyticity, for example when the branch cut of a well's logarithm
	// crosses the sampling circle of a Cauchy integral.
	ErrDomain = errors.New("potential: value outside domain")
)

// isBad reports whether z has a NaN or infinite component.
func isBad(z complex128) bool {
	return cmplx.IsNaN(z) || cmplx.IsInf(z)
}
