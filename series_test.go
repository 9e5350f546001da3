package potential

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestTaylorSeries(t *testing.T) {
	coef := []complex128{1, 2, 3}
	diff(t, complex128(1+2*2+3*4), TaylorSeries(2, coef))
	// 1 + 2i + 3i² = -2+2i
	diff(t, complex128(-2+2i), TaylorSeries(1i, coef))
	diff(t, complex128(1), TaylorSeries(0, coef))
	diff(t, complex128(0), TaylorSeries(5, nil))
}

func TestAsymptoticSeries(t *testing.T) {
	coef := []complex128{1, 2, 4}
	diff(t, complex128(1+1+1), AsymptoticSeries(2, coef))
	// 1 + 2/i + 4/i² = -3-2i
	diff(t, complex128(-3-2i), AsymptoticSeries(1i, coef), complexComparer(1e-15))
	diff(t, complex128(7), AsymptoticSeries(0, []complex128{7}))

	if v := AsymptoticSeries(0, coef); !cmplx.IsInf(v) {
		t.Errorf("got %v at the origin, want complex infinity", v)
	}
}

func TestSeriesDuality(t *testing.T) {
	coef := []complex128{0.5 - 1i, 2, -1i, 0.25 + 0.75i, 3}
	for k := 0; k < 16; k++ {
		chi := cmplx.Rect(1, 2*math.Pi*float64(k)/16)
		diff(t, TaylorSeries(1/chi, coef), AsymptoticSeries(chi, coef), complexComparer(1e-12))
		diff(t, AsymptoticSeries(1/chi, coef), TaylorSeries(chi, coef), complexComparer(1e-12))
	}
}

func TestSeriesEval(t *testing.T) {
	s := Series{Kind: Taylor, Coefficients: []complex128{1, 0, -1}}
	diff(t, complex128(-3), s.Eval(2))
	if d := s.Degree(); d != 2 {
		t.Errorf("got degree %d, want 2", d)
	}

	f := s.Potential()
	s.Coefficients[0] = 100
	diff(t, complex128(-3), f(2))

	a := Series{Kind: Asymptotic, Coefficients: []complex128{0, 4}}
	diff(t, complex128(2), a.Eval(2))

	if d := (Series{}).Degree(); d != -1 {
		t.Errorf("got degree %d, want -1", d)
	}
}

func TestSeriesString(t *testing.T) {
	diff(t, "0", Series{}.String())
	diff(t, "(1+0i) + (-2+1i)·χ^2", Series{Kind: Taylor, Coefficients: []complex128{1, 0, -2 + 1i}}.String())
	diff(t, "(3+0i)·χ^-1", Series{Kind: Asymptotic, Coefficients: []complex128{0, 3}}.String())
	diff(t, "Asymptotic", Asymptotic.String())
}
