package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/potential"
)

const (
	// DefaultLevels is the default number of contour bands.
	DefaultLevels = 50
	// DefaultResolution is the default number of grid points along each axis.
	DefaultResolution = 400
)

var (
	// EquipotentialColor is the color of contours of the velocity potential.
	EquipotentialColor color.Color = color.RGBA{R: 255, A: 255}
	// StreamlineColor is the color of contours of the stream function.
	StreamlineColor color.Color = color.RGBA{B: 255, A: 255}
	// OutlineColor is the color of the obstacle's outline.
	OutlineColor color.Color = color.Black
)

// Options specifies optional settings for [FlowNet]. The zero value is valid
// and selects the defaults.
type Options struct {
	// Levels is the number of equally sized contour bands that the larger of
	// the two value ranges is divided into. Zero selects DefaultLevels.
	Levels int
	// XPoints and YPoints are the grid resolution. Zero selects
	// DefaultResolution.
	XPoints, YPoints int
	// Title is the plot's title.
	Title string
	// Geometry, if not nil, is drawn as the obstacle's outline: the image of
	// the unit circle under Geometry.Inverse.
	Geometry potential.Mapping
	// LineWidth is the width of contour lines. Zero selects half a point.
	LineWidth vg.Length
}

func (opts Options) withDefaults() (Options, error) {
	if opts.Levels < 0 || opts.XPoints < 0 || opts.YPoints < 0 {
		return opts, fmt.Errorf("levels %d and resolution %dx%d must not be negative: %w",
			opts.Levels, opts.XPoints, opts.YPoints, potential.ErrInvalidParameter)
	}
	if opts.Levels == 0 {
		opts.Levels = DefaultLevels
	}
	if opts.XPoints == 0 {
		opts.XPoints = DefaultResolution
	}
	if opts.YPoints == 0 {
		opts.YPoints = DefaultResolution
	}
	if opts.LineWidth == 0 {
		opts.LineWidth = vg.Points(0.5)
	}
	return opts, nil
}

// Levels returns contour levels for the velocity potential and the stream
// function of fd.
//
// Both families share one spacing, the larger of the two value ranges divided
// by n, so that equipotentials and streamlines form a net of squares. Each
// family starts at its minimum and stops before its maximum. A constant field
// has no levels.
func Levels(fd *Field, n int) (phi, psi []float64, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("number of levels %d must be positive: %w", n, potential.ErrInvalidParameter)
	}
	phiMin, phiMax, psiMin, psiMax, err := fd.Range()
	if err != nil {
		return nil, nil, err
	}
	step := max(phiMax-phiMin, psiMax-psiMin) / float64(n)
	if step == 0 || math.IsInf(step, 0) {
		return nil, nil, nil
	}
	return arange(phiMin, phiMax, step), arange(psiMin, psiMax, step), nil
}

// arange returns start, start+step, … up to but excluding stop.
func arange(start, stop, step float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			return out
		}
		out = append(out, v)
	}
}

// FlowNet samples f over domain and returns a plot of its flow net:
// equipotential lines in [EquipotentialColor] and streamlines in
// [StreamlineColor].
func FlowNet(f potential.Potential, domain potential.Rect, opts Options) (*plot.Plot, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	domain = domain.Abs()
	fd, err := Sample(f, domain, opts.XPoints, opts.YPoints)
	if err != nil {
		return nil, err
	}
	phiLevels, psiLevels, err := Levels(fd, opts.Levels)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("flow net: %d equipotentials, %d streamlines", len(phiLevels), len(psiLevels))

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = domain.X0, domain.X1
	p.Y.Min, p.Y.Max = domain.Y0, domain.Y1

	if len(psiLevels) > 0 {
		p.Add(contour(fd.Psi(), psiLevels, StreamlineColor, opts.LineWidth))
	}
	if len(phiLevels) > 0 {
		p.Add(contour(fd.Phi(), phiLevels, EquipotentialColor, opts.LineWidth))
	}
	if opts.Geometry != nil {
		l, err := Outline(opts.Geometry, 256)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = 2 * opts.LineWidth
		p.Add(l)
	}
	return p, nil
}

func contour(g plotter.GridXYZ, levels []float64, col color.Color, width vg.Length) *plotter.Contour {
	c := plotter.NewContour(g, levels, solid{col})
	c.LineStyles = []draw.LineStyle{{Color: col, Width: width}}
	return c
}

// solid is a palette consisting of a single color.
type solid struct {
	c color.Color
}

func (s solid) Colors() []color.Color { return []color.Color{s.c} }

// Outline returns a line tracing the image of the unit circle under
// m.Inverse, which is the boundary of the obstacle described by m. points is
// the number of samples along the circle.
func Outline(m potential.Mapping, points int) (*plotter.Line, error) {
	if points < 2 {
		return nil, fmt.Errorf("outline needs at least 2 points, got %d: %w", points, potential.ErrInvalidParameter)
	}
	xys := make(plotter.XYs, points+1)
	for k := range xys {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(points))
		z := m.Inverse(complex(cos, sin))
		xys[k].X, xys[k].Y = real(z), imag(z)
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("outline of %v: %v: %w", m, err, potential.ErrDomain)
	}
	l.LineStyle.Color = OutlineColor
	return l, nil
}

// WriteTo renders p to w in the given format ("png", "svg", "pdf", …), sized
// so that one unit along x has the same length as one unit along y.
func WriteTo(w io.Writer, p *plot.Plot, width vg.Length, format string) error {
	wt, err := p.WriterTo(width, height(p, width), format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders p to the named file, choosing the format from the file's
// extension. Like [WriteTo], it keeps the axes' aspect ratio equal.
func Save(p *plot.Plot, width vg.Length, path string) error {
	return p.Save(width, height(p, width), path)
}

func height(p *plot.Plot, width vg.Length) vg.Length {
	dx := p.X.Max - p.X.Min
	dy := p.Y.Max - p.Y.Min
	if dx <= 0 || dy <= 0 || math.IsNaN(dx) || math.IsNaN(dy) {
		return width
	}
	return vg.Length(float64(width) * dy / dx)
}
