package potential

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

var polyCoef = []complex128{1 + 2i, -0.5, 0.25i, 3, -1 - 1i}

func TestCauchyIntegralRecoversTaylor(t *testing.T) {
	p := Series{Kind: Taylor, Coefficients: polyCoef}.Potential()
	got, err := CauchyIntegral(p, nil, len(polyCoef), DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, polyCoef, got, complexComparer(1e-6))
	// The trapezoidal rule is exact for trigonometric polynomials of low
	// degree, so the match is much closer than required.
	diff(t, polyCoef, got, complexComparer(1e-12))
}

func TestCauchyIntegralRecoversAsymptotic(t *testing.T) {
	p := Series{Kind: Asymptotic, Coefficients: polyCoef}.Potential()
	got, err := AsymptoticCauchyIntegral(p, nil, len(polyCoef), DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, polyCoef, got, complexComparer(1e-12))

	// A series in 1/χ has no Taylor part beyond the constant.
	taylor, err := CauchyIntegral(p, nil, len(polyCoef), DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []complex128{polyCoef[0], 0, 0, 0, 0}, taylor, complexComparer(1e-12))
}

func TestCauchyIntegralPerDegree(t *testing.T) {
	// One coefficient per degree, not a single value accumulated across all
	// degrees.
	p := Series{Kind: Taylor, Coefficients: []complex128{0, 0, 1}}.Potential()
	got, err := CauchyIntegral(p, nil, 4, 64)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []complex128{0, 0, 1, 0}, got, complexComparer(1e-12))

	var sum complex128
	for _, c := range got {
		sum += c
	}
	if len(got) != 4 {
		t.Fatalf("got %d coefficients, want 4", len(got))
	}
	diff(t, complex128(1), sum, complexComparer(1e-12))
}

func TestCauchyIntegralChiOfZ(t *testing.T) {
	// Sampling on a circle of radius 2 around 1 recovers the coefficients of
	// the expansion around that circle's center: ω(χ) = χ² expanded in
	// w = (χ−1)/2 is 1 + 4w + 4w².
	m, err := NewCircleMap(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	square := func(chi complex128) complex128 { return chi * chi }
	got, err := CauchyIntegral(square, m.Inverse, 4, 128)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []complex128{1, 4, 4, 0}, got, complexComparer(1e-12))
}

func TestCauchyIntegralFFT(t *testing.T) {
	f := func(chi complex128) complex128 {
		// Analytic in |χ| < 2.
		return 1 / (2 - chi)
	}
	for _, n := range []int{DefaultPoints, 256, 97} {
		direct, err := CauchyIntegral(f, nil, 8, n)
		if err != nil {
			t.Fatal(err)
		}
		fast, err := CauchyIntegralFFT(f, nil, 8, n)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, direct, fast, complexComparer(1e-12))
	}

	// 1/(2−χ) = Σ χ^j / 2^(j+1)
	got, err := CauchyIntegralFFT(f, nil, 8, DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	for j, c := range got {
		want := complex(math.Pow(0.5, float64(j+1)), 0)
		if d := cmplx.Abs(c - want); d > 1e-12 {
			t.Errorf("coefficient %d: got %v, want %v", j, c, want)
		}
	}

	if _, err := CauchyIntegralFFT(f, nil, 9, 8); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
}

func TestCauchyIntegralWell(t *testing.T) {
	const q = 10.0
	m, err := NewLineMap(-1+0i, 1+1i)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3.063954117975058+0.3831822881453959i, WellPotential(3+3i, q, m), complexComparer(1e-9))

	w := ChiWell(q)
	coef, err := CauchyIntegral(w, nil, 5, DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	if len(coef) != 5 {
		t.Fatalf("got %d coefficients, want 5", len(coef))
	}

	samples, err := SampleCircle(w, nil, DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	var mean complex128
	for _, s := range samples {
		mean += s
	}
	mean /= complex(float64(len(samples)), 0)
	diff(t, mean, coef[0], complexComparer(1e-12))

	// On the unit circle, log χ = iθ with θ ∈ (−π, π]; its mean is π/N, the
	// contribution of the single sample on the branch cut.
	diff(t, complex(0, q/(2*math.Pi)*math.Pi/DefaultPoints), coef[0], complexComparer(1e-9))
}

func TestExpandSeries(t *testing.T) {
	p := Series{Kind: Taylor, Coefficients: polyCoef}.Potential()
	s, err := ExpandTaylor(p, nil, len(polyCoef), DefaultPoints)
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != Taylor {
		t.Errorf("got kind %v, want %v", s.Kind, Taylor)
	}
	for _, chi := range []complex128{0, 0.5, 0.3 - 0.4i, 1i} {
		diff(t, p(chi), s.Eval(chi), complexComparer(1e-9))
	}

	a, err := ExpandAsymptotic(Series{Kind: Asymptotic, Coefficients: polyCoef}.Potential(), nil, 3, 64)
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != Asymptotic {
		t.Errorf("got kind %v, want %v", a.Kind, Asymptotic)
	}
	diff(t, polyCoef[:3], a.Coefficients, complexComparer(1e-12))
}

func TestCauchyIntegralInvalid(t *testing.T) {
	f := func(chi complex128) complex128 { return chi }
	tests := []struct {
		omega   Potential
		degrees int
		points  int
	}{
		{f, 5, 0},
		{f, 5, -1},
		{f, -1, 10},
		{nil, 5, 10},
	}
	for _, tt := range tests {
		if _, err := CauchyIntegral(tt.omega, nil, tt.degrees, tt.points); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("CauchyIntegral(%d, %d): got error %v, want %v", tt.degrees, tt.points, err, ErrInvalidParameter)
		}
		if _, err := AsymptoticCauchyIntegral(tt.omega, nil, tt.degrees, tt.points); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("AsymptoticCauchyIntegral(%d, %d): got error %v, want %v", tt.degrees, tt.points, err, ErrInvalidParameter)
		}
		if _, err := CauchyIntegralFFT(tt.omega, nil, tt.degrees, tt.points); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("CauchyIntegralFFT(%d, %d): got error %v, want %v", tt.degrees, tt.points, err, ErrInvalidParameter)
		}
	}
	if _, err := SampleCircle(f, nil, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}

	got, err := CauchyIntegral(f, nil, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d coefficients for zero degrees", len(got))
	}
}

func TestCauchyIntegralDomain(t *testing.T) {
	// log(χ−1) is singular at χ = 1, which is the first sample.
	f := func(chi complex128) complex128 { return cmplx.Log(chi - 1) }
	if _, err := CauchyIntegral(f, nil, 3, 100); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}
	if _, err := CauchyIntegralFFT(f, nil, 3, 100); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}

	// The asymptotic series has a pole at the origin.
	a := Series{Kind: Asymptotic, Coefficients: polyCoef}.Potential()
	shrink := func(z complex128) complex128 { return 0 }
	if _, err := SampleCircle(a, shrink, 10); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}
}
