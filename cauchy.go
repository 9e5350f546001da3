package potential

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/npillmayer/schuko/tracing"
)

// DefaultPoints is a default number of sample points for Cauchy integrals. It
// recovers coefficients of low-degree series to well below 1e-9 for
// potentials that are analytic in a neighborhood of the unit circle.
const DefaultPoints = 1000

// tracer writes to trace with key 'potential'
func tracer() tracing.Trace {
	return tracing.Select("potential")
}

// SampleCircle samples a potential given in the canonical plane on the unit
// circle.
//
// The angles θ_k = 2πk/points, k ∈ [0, points), cover [0, 2π) exactly once;
// θ = 2π is not sampled again as it coincides with θ = 0. For each angle,
// z_k = e^{iθ_k}, χ_k = chiOfZ(z_k) and the sample is omega(χ_k). A nil chiOfZ
// is the identity.
//
// If any sample is NaN or infinite, for example because a branch cut of omega
// crosses the circle, SampleCircle returns an error wrapping [ErrDomain]. An
// invalid number of points or a nil omega result in an error wrapping
// [ErrInvalidParameter].
func SampleCircle(omega Potential, chiOfZ func(complex128) complex128, points int) ([]complex128, error) {
	if omega == nil {
		return nil, fmt.Errorf("nil potential: %w", ErrInvalidParameter)
	}
	if points <= 0 {
		return nil, fmt.Errorf("number of points %d must be positive: %w", points, ErrInvalidParameter)
	}
	return sampleCircle(omega, chiOfZ, unitRoots(points))
}

func sampleCircle(omega Potential, chiOfZ func(complex128) complex128, roots []complex128) ([]complex128, error) {
	samples := make([]complex128, len(roots))
	for k, z := range roots {
		chi := z
		if chiOfZ != nil {
			chi = chiOfZ(z)
		}
		w := omega(chi)
		if isBad(w) {
			th := 2 * math.Pi * float64(k) / float64(len(roots))
			tracer().Errorf("non-finite potential %v at sample %d (θ = %g, χ = %v)", w, k, th, chi)
			return nil, fmt.Errorf("sample %d at θ = %g (χ = %v) is %v: %w", k, th, chi, w, ErrDomain)
		}
		samples[k] = w
	}
	return samples, nil
}

// unitRoots returns the n-th roots of unity, e^{2πik/n} for k ∈ [0, n).
func unitRoots(n int) []complex128 {
	roots := make([]complex128, n)
	for k := range roots {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		roots[k] = complex(cos, sin)
	}
	return roots
}

func checkCauchyArgs(omega Potential, degrees, points int) error {
	if omega == nil {
		return fmt.Errorf("nil potential: %w", ErrInvalidParameter)
	}
	if points <= 0 {
		return fmt.Errorf("number of points %d must be positive: %w", points, ErrInvalidParameter)
	}
	if degrees < 0 {
		return fmt.Errorf("number of degrees %d must not be negative: %w", degrees, ErrInvalidParameter)
	}
	return nil
}

// CauchyIntegral computes the Taylor coefficients c_0 … c_{degrees−1} of
// omega, a potential in the canonical plane, from its values on the unit
// circle.
//
// Each coefficient is the contour integral
//
//	c_j = 1/(2πi) ∮ ω(χ) χ^(−j−1) dχ = 1/(2π) ∫₀^{2π} ω(e^{iθ}) e^{−ijθ} dθ,
//
// discretized with the trapezoidal rule over points uniformly spaced angles
// (see [SampleCircle] for the sampling and the role of chiOfZ). For a
// potential that is analytic in an annulus around the unit circle the error
// decreases exponentially with points; there is no adaptive refinement.
// Coefficients of degree points or more alias onto lower degrees.
//
// The result holds one coefficient per degree, indexed by power.
func CauchyIntegral(omega Potential, chiOfZ func(complex128) complex128, degrees, points int) ([]complex128, error) {
	return cauchyIntegral(omega, chiOfZ, degrees, points, -1)
}

// AsymptoticCauchyIntegral is like [CauchyIntegral], but computes the
// coefficients a_j of the series Σ a_j χ^(−j), using the kernel e^{+ijθ}.
func AsymptoticCauchyIntegral(omega Potential, chiOfZ func(complex128) complex128, degrees, points int) ([]complex128, error) {
	return cauchyIntegral(omega, chiOfZ, degrees, points, +1)
}

func cauchyIntegral(omega Potential, chiOfZ func(complex128) complex128, degrees, points int, sign int) ([]complex128, error) {
	if err := checkCauchyArgs(omega, degrees, points); err != nil {
		return nil, err
	}
	tracer().Debugf("cauchy integral: %d degrees over %d points", degrees, points)

	roots := unitRoots(points)
	samples, err := sampleCircle(omega, chiOfZ, roots)
	if err != nil {
		return nil, err
	}

	n := len(samples)
	coef := make([]complex128, degrees)
	for j := range coef {
		var sum complex128
		for k, w := range samples {
			// e^{ijθ_k} is a root of unity; reducing j·k modulo n keeps the
			// phase exact for every degree.
			e := roots[(j*k)%n]
			if sign < 0 {
				e = cmplx.Conj(e)
			}
			sum += w * e
		}
		coef[j] = sum / complex(float64(n), 0)
	}
	return coef, nil
}

// CauchyIntegralFFT computes the same coefficients as [CauchyIntegral] using a
// single fast Fourier transform of the samples. degrees must not exceed
// points.
func CauchyIntegralFFT(omega Potential, chiOfZ func(complex128) complex128, degrees, points int) ([]complex128, error) {
	if err := checkCauchyArgs(omega, degrees, points); err != nil {
		return nil, err
	}
	if degrees > points {
		return nil, fmt.Errorf("%d degrees exceed %d points: %w", degrees, points, ErrInvalidParameter)
	}
	tracer().Debugf("cauchy integral (fft): %d degrees over %d points", degrees, points)

	samples, err := sampleCircle(omega, chiOfZ, unitRoots(points))
	if err != nil {
		return nil, err
	}
	// X_j = Σ_k ω_k e^{−2πijk/n}
	spectrum := fft.FFT(samples)
	coef := make([]complex128, degrees)
	for j := range coef {
		coef[j] = spectrum[j] / complex(float64(points), 0)
	}
	return coef, nil
}

// ExpandTaylor returns the Taylor series of omega on the unit circle, as
// computed by [CauchyIntegral].
func ExpandTaylor(omega Potential, chiOfZ func(complex128) complex128, degrees, points int) (Series, error) {
	coef, err := CauchyIntegral(omega, chiOfZ, degrees, points)
	if err != nil {
		return Series{}, err
	}
	return Series{Kind: Taylor, Coefficients: coef}, nil
}

// ExpandAsymptotic returns the asymptotic series of omega on the unit circle,
// as computed by [AsymptoticCauchyIntegral].
func ExpandAsymptotic(omega Potential, chiOfZ func(complex128) complex128, degrees, points int) (Series, error) {
	coef, err := AsymptoticCauchyIntegral(omega, chiOfZ, degrees, points)
	if err != nil {
		return Series{}, err
	}
	return Series{Kind: Asymptotic, Coefficients: coef}, nil
}
