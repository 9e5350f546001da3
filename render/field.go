// Package render draws flow nets of complex potentials: equipotential lines
// (contours of the real part) and streamlines (contours of the imaginary
// part) over a rectangular region of the physical plane.
//
// The package consumes potentials as black boxes. It never modifies them and
// relies only on them being pure, which allows sampling a field in parallel.
package render

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"

	"honnef.co/go/potential"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Field holds the values of a complex potential on a regular grid.
//
// Columns run along the x axis and rows along the y axis, matching the
// conventions of gonum's [plotter.GridXYZ].
type Field struct {
	xs, ys []float64
	// values in row-major order, values[r*len(xs)+c]
	values []complex128
}

// Sample evaluates f at every point of an nx × ny grid spanning domain,
// including its edges. It returns an error wrapping
// [potential.ErrInvalidParameter] if either resolution is below 2 or the
// domain isn't finite and non-empty.
//
// Rows are evaluated concurrently, so f must be safe for concurrent use, as
// all potentials built by package potential are.
func Sample(f potential.Potential, domain potential.Rect, nx, ny int) (*Field, error) {
	if f == nil {
		return nil, fmt.Errorf("nil potential: %w", potential.ErrInvalidParameter)
	}
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("grid resolution %dx%d must be at least 2x2: %w", nx, ny, potential.ErrInvalidParameter)
	}
	if domain.IsNaN() || domain.IsInf() || domain.Width() == 0 || domain.Height() == 0 {
		return nil, fmt.Errorf("domain %v must be finite and non-empty: %w", domain, potential.ErrInvalidParameter)
	}
	tracer().Debugf("sampling %v on a %dx%d grid", domain, nx, ny)

	fd := &Field{
		xs:     floats.Span(make([]float64, nx), domain.X0, domain.X1),
		ys:     floats.Span(make([]float64, ny), domain.Y0, domain.Y1),
		values: make([]complex128, nx*ny),
	}

	workers := min(runtime.NumCPU(), ny)
	rowsPerWorker := (ny + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < ny; start += rowsPerWorker {
		end := min(start+rowsPerWorker, ny)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for r := start; r < end; r++ {
				row := fd.values[r*nx : (r+1)*nx]
				for c, x := range fd.xs {
					row[c] = f(complex(x, fd.ys[r]))
				}
			}
		}(start, end)
	}
	wg.Wait()
	return fd, nil
}

// Dims returns the number of columns and rows of the grid.
func (fd *Field) Dims() (c, r int) {
	return len(fd.xs), len(fd.ys)
}

// X returns the x coordinate of column c.
func (fd *Field) X(c int) float64 { return fd.xs[c] }

// Y returns the y coordinate of row r.
func (fd *Field) Y(r int) float64 { return fd.ys[r] }

// At returns the potential at column c and row r.
func (fd *Field) At(c, r int) complex128 {
	return fd.values[r*len(fd.xs)+c]
}

// Phi returns the velocity potential, the real part of the field.
func (fd *Field) Phi() plotter.GridXYZ {
	return component{fd, realPart}
}

// Psi returns the stream function, the imaginary part of the field.
func (fd *Field) Psi() plotter.GridXYZ {
	return component{fd, imagPart}
}

// Range returns the smallest and largest finite values of the velocity
// potential and the stream function. It returns an error wrapping
// [potential.ErrDomain] if the field has no finite values.
func (fd *Field) Range() (phiMin, phiMax, psiMin, psiMax float64, err error) {
	phis := make([]float64, 0, len(fd.values))
	psis := make([]float64, 0, len(fd.values))
	for _, v := range fd.values {
		if x := real(v); !math.IsNaN(x) && !math.IsInf(x, 0) {
			phis = append(phis, x)
		}
		if y := imag(v); !math.IsNaN(y) && !math.IsInf(y, 0) {
			psis = append(psis, y)
		}
	}
	if len(phis) == 0 || len(psis) == 0 {
		return 0, 0, 0, 0, fmt.Errorf("field has no finite values: %w", potential.ErrDomain)
	}
	return floats.Min(phis), floats.Max(phis), floats.Min(psis), floats.Max(psis), nil
}

type component struct {
	fd   *Field
	part func(complex128) float64
}

var _ plotter.GridXYZ = component{}

func (g component) Dims() (c, r int)   { return g.fd.Dims() }
func (g component) Z(c, r int) float64 { return g.part(g.fd.At(c, r)) }
func (g component) X(c int) float64    { return g.fd.X(c) }
func (g component) Y(r int) float64    { return g.fd.Y(r) }

func realPart(z complex128) float64 { return real(z) }
func imagPart(z complex128) float64 { return imag(z) }
