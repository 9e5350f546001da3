package potential

import (
	"math"
	"math/cmplx"
)

// Potential is a complex potential ω = φ + iψ as a function of a complex
// coordinate. φ is the velocity potential and ψ the stream function.
//
// Potentials are pure functions. They may be evaluated concurrently, in any
// order, any number of times.
type Potential func(z complex128) complex128

// Well returns the complex potential of a well of strength q at the center of
// the canonical plane of m, ω(z) = (q/2π)·log(m.Forward(z)).
//
// A positive strength models a source and a negative strength a sink. A zero
// strength yields the zero potential.
//
// The logarithm is the principal branch ([cmplx.Log]), so the stream function
// jumps by q across the image of the negative real χ axis. This is the
// expected multi-valuedness of a source.
func Well(q float64, m Mapping) Potential {
	k := complex(q/(2*math.Pi), 0)
	return func(z complex128) complex128 {
		return k * cmplx.Log(m.Forward(z))
	}
}

// WellPotential evaluates the potential of a well of strength q over the
// mapping m at z.
func WellPotential(z complex128, q float64, m Mapping) complex128 {
	return Well(q, m)(z)
}

// ChiWell returns the potential of a well of strength q in the canonical
// plane itself, ω(χ) = (q/2π)·log(χ).
func ChiWell(q float64) Potential {
	k := complex(q/(2*math.Pi), 0)
	return func(chi complex128) complex128 {
		return k * cmplx.Log(chi)
	}
}

// Superpose returns the sum of the given potentials. The sum of no potentials
// is the zero potential.
func Superpose(ps ...Potential) Potential {
	ps = append([]Potential(nil), ps...)
	return func(z complex128) complex128 {
		var sum complex128
		for _, p := range ps {
			sum += p(z)
		}
		return sum
	}
}

// Scale returns the potential multiplied by k.
func (p Potential) Scale(k complex128) Potential {
	return func(z complex128) complex128 {
		return k * p(z)
	}
}

// InChi expresses a physical-plane potential in the canonical plane of m, by
// composing it with m's inverse.
func (p Potential) InChi(m Mapping) Potential {
	return func(chi complex128) complex128 {
		return p(m.Inverse(chi))
	}
}

// Over expresses a canonical-plane potential in the physical plane of m, by
// composing it with m's forward map.
func (p Potential) Over(m Mapping) Potential {
	return func(z complex128) complex128 {
		return p(m.Forward(z))
	}
}
