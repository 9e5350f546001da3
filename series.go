package potential

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// TaylorSeries evaluates Σ coef[i]·χ^i.
//
// Terms are accumulated in index order. At χ = 0 the result is coef[0], using
// the polynomial convention 0⁰ = 1.
func TaylorSeries(chi complex128, coef []complex128) complex128 {
	var sum complex128
	p := complex128(1)
	for i, c := range coef {
		if i > 0 {
			p *= chi
		}
		sum += c * p
	}
	return sum
}

// AsymptoticSeries evaluates Σ coef[i]·χ^(−i).
//
// Terms are accumulated in index order. The series is undefined at χ = 0 for
// any series with more than one coefficient; in that case the result is
// complex infinity. Callers must not evaluate the asymptotic series at the
// origin.
func AsymptoticSeries(chi complex128, coef []complex128) complex128 {
	if chi == 0 && len(coef) > 1 {
		return cmplx.Inf()
	}
	var sum complex128
	p := complex128(1)
	for i, c := range coef {
		if i > 0 {
			p /= chi
		}
		sum += c * p
	}
	return sum
}

// SeriesKind distinguishes power series in χ from series in 1/χ.
type SeriesKind int

const (
	// Taylor series, in powers of χ.
	Taylor SeriesKind = iota
	// Asymptotic series, in powers of 1/χ.
	Asymptotic
)

func (k SeriesKind) String() string {
	switch k {
	case Taylor:
		return "Taylor"
	case Asymptotic:
		return "Asymptotic"
	default:
		return fmt.Sprintf("SeriesKind(%d)", int(k))
	}
}

// Series is a truncated series in the canonical coordinate. Coefficients[i] is
// the coefficient of χ^i for Taylor series and of χ^(−i) for asymptotic
// series.
type Series struct {
	Kind         SeriesKind
	Coefficients []complex128
}

// Eval evaluates the series at χ.
func (s Series) Eval(chi complex128) complex128 {
	switch s.Kind {
	case Taylor:
		return TaylorSeries(chi, s.Coefficients)
	case Asymptotic:
		return AsymptoticSeries(chi, s.Coefficients)
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

// Degree returns the highest power present in the series, or -1 for an empty
// series.
func (s Series) Degree() int {
	return len(s.Coefficients) - 1
}

// Potential returns the series as a potential in the canonical plane.
//
// The coefficients are copied, so later changes to s don't affect the
// returned function.
func (s Series) Potential() Potential {
	s.Coefficients = append([]complex128(nil), s.Coefficients...)
	return s.Eval
}

func (s Series) String() string {
	sb := &strings.Builder{}
	sep := ""
	for i, c := range s.Coefficients {
		if c == 0 {
			continue
		}
		sb.WriteString(sep)
		sep = " + "
		switch {
		case i == 0:
			fmt.Fprintf(sb, "%g", c)
		case s.Kind == Taylor:
			fmt.Fprintf(sb, "%g·χ^%d", c, i)
		default:
			fmt.Fprintf(sb, "%g·χ^-%d", c, i)
		}
	}
	if sep == "" {
		return "0"
	}
	return sb.String()
}
