// Package potential models two-dimensional potential flow around simple
// obstacles by composing complex potentials with conformal mappings, and
// extracts series representations of those potentials with numerical Cauchy
// integrals.
//
// # Complex potentials
//
// A steady, irrotational, incompressible flow in the plane is described by a
// complex potential ω(z) = φ + iψ, an analytic function whose real part φ is
// the velocity potential and whose imaginary part ψ is the stream function.
// Lines of constant φ and ψ form the flow net. [Potential] represents such a
// function. Potentials are pure, so they can be evaluated concurrently and
// combined freely, for example with [Superpose].
//
// # Conformal mappings
//
// Flow around an obstacle is easiest to describe in a canonical plane, with
// coordinate χ, in which the obstacle becomes the unit circle. A [Mapping]
// converts between the physical plane and the canonical plane. This package
// provides the following mappings:
//   - [LineMap], which maps the exterior of a line segment onto the exterior
//     of the unit circle using the inverse of the [Joukowski] map
//   - [CircleMap], which maps a circle onto the unit circle by translation
//     and scaling
//
// Both are built on [Affine], complex affine maps z ↦ Az + B.
//
// # Branch cuts
//
// Square roots and logarithms are evaluated on Go's principal branches
// ([cmplx.Sqrt] and [cmplx.Log]). For [LineMap] this places the only cut of
// the mapping on the segment itself, with points just above and just below
// the segment mapping to opposite halves of the unit circle. For [Well] it
// places a jump of the stream function along the image of the negative real χ
// axis. Both are physically meaningful and visible in rendered flow nets.
//
// # Series and Cauchy integrals
//
// Near the obstacle, potentials can be represented by truncated Taylor series
// in χ, and far from it by asymptotic series in 1/χ; see [TaylorSeries],
// [AsymptoticSeries] and [Series]. [CauchyIntegral] recovers Taylor
// coefficients of a potential from its values on the unit circle, using the
// trapezoidal rule on uniformly spaced samples; [AsymptoticCauchyIntegral]
// does the same for asymptotic coefficients and [CauchyIntegralFFT] computes
// the Taylor coefficients with a single FFT. For potentials that are analytic
// in a neighborhood of the unit circle the trapezoidal rule converges
// exponentially, which is why no adaptive refinement is needed.
//
// # Errors
//
// Constructors and integrals validate their parameters and return errors
// wrapping [ErrDegenerateGeometry] or [ErrInvalidParameter]. Evaluating a
// potential outside its domain produces NaN or infinite values, which are
// never clamped; the Cauchy integrals report such samples as [ErrDomain].
//
// # Rendering
//
// Package render samples potentials over a grid and draws their flow nets
// with gonum/plot. Command flownet wires a well, a mapping and a plot range
// together.
//
// # Literature
//
//   - [Conformal map]
//   - [Joukowsky transform]
//   - [Cauchy's integral formula]
//   - [The Exponentially Convergent Trapezoidal Rule] by Trefethen and Weideman
//
// [Conformal map]: https://en.wikipedia.org/wiki/Conformal_map
// [Joukowsky transform]: https://en.wikipedia.org/wiki/Joukowsky_transform
// [Cauchy's integral formula]: https://en.wikipedia.org/wiki/Cauchy%27s_integral_formula
// [The Exponentially Convergent Trapezoidal Rule]: https://doi.org/10.1137/130932132
package potential
