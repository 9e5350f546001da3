// Command flownet plots the flow net of a well placed in the canonical plane
// of a line segment or a circle, and optionally prints the coefficients of the
// well's series on the unit circle.
//
// Usage:
//
//	flownet -geometry line -z1 -1 -z2 1+1i -q 10 -o well.png
//	flownet -geometry circle -center 0 -radius 1 -degrees 5
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"honnef.co/go/potential"
	"honnef.co/go/potential/render"
)

type config struct {
	geometry string
	z1, z2   complex128
	center   complex128
	radius   float64
	q        float64
	domain   potential.Rect
	opts     render.Options
	out      string
	width    vg.Length
	degrees  int
	points   int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("flownet: ")
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("flownet", flag.ContinueOnError)
	geometry := fs.String("geometry", "line", "obstacle geometry: line or circle")
	z1 := fs.String("z1", "-1+0i", "first endpoint of the line segment")
	z2 := fs.String("z2", "1+1i", "second endpoint of the line segment")
	center := fs.String("center", "0", "center of the circle")
	radius := fs.Float64("radius", 1, "radius of the circle")
	q := fs.Float64("q", 10, "strength of the well (negative for a sink)")
	xr := fs.String("x", "-3,3", "x range of the plot, as min,max")
	yr := fs.String("y", "-3,3", "y range of the plot, as min,max")
	levels := fs.Int("levels", render.DefaultLevels, "number of contour bands")
	nx := fs.Int("nx", render.DefaultResolution, "grid points along x")
	ny := fs.Int("ny", render.DefaultResolution, "grid points along y")
	title := fs.String("title", "Well Flow", "plot title")
	out := fs.String("o", "", "output image (.png, .svg, .pdf); empty to skip plotting")
	width := fs.Float64("width", 6, "image width in inches")
	degrees := fs.Int("degrees", 0, "number of series coefficients to print")
	points := fs.Int("points", potential.DefaultPoints, "sample points for the Cauchy integral")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		geometry: *geometry,
		radius:   *radius,
		q:        *q,
		out:      *out,
		width:    vg.Length(*width) * vg.Inch,
		degrees:  *degrees,
		points:   *points,
		opts: render.Options{
			Levels:  *levels,
			XPoints: *nx,
			YPoints: *ny,
			Title:   *title,
		},
	}
	var err error
	if cfg.z1, err = strconv.ParseComplex(*z1, 128); err != nil {
		return config{}, fmt.Errorf("invalid -z1: %w", err)
	}
	if cfg.z2, err = strconv.ParseComplex(*z2, 128); err != nil {
		return config{}, fmt.Errorf("invalid -z2: %w", err)
	}
	if cfg.center, err = strconv.ParseComplex(*center, 128); err != nil {
		return config{}, fmt.Errorf("invalid -center: %w", err)
	}
	x0, x1, err := parseRange(*xr)
	if err != nil {
		return config{}, fmt.Errorf("invalid -x: %w", err)
	}
	y0, y1, err := parseRange(*yr)
	if err != nil {
		return config{}, fmt.Errorf("invalid -y: %w", err)
	}
	cfg.domain = potential.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
	return cfg, nil
}

func parseRange(s string) (lo, hi float64, err error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q isn't of the form min,max", s)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
		return 0, 0, err
	}
	if !(lo < hi) {
		return 0, 0, fmt.Errorf("min %g must be less than max %g", lo, hi)
	}
	return lo, hi, nil
}

func mapping(cfg config) (potential.Mapping, error) {
	switch cfg.geometry {
	case "line":
		m, err := potential.NewLineMap(cfg.z1, cfg.z2)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "circle":
		m, err := potential.NewCircleMap(cfg.center, cfg.radius)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown geometry %q: %w", cfg.geometry, potential.ErrInvalidParameter)
	}
}

func run(cfg config) error {
	m, err := mapping(cfg)
	if err != nil {
		return err
	}
	well := potential.Well(cfg.q, m)

	if cfg.degrees > 0 {
		s, err := potential.ExpandTaylor(potential.ChiWell(cfg.q), nil, cfg.degrees, cfg.points)
		if err != nil {
			return err
		}
		for j, c := range s.Coefficients {
			fmt.Printf("c[%d] = %g\n", j, c)
		}
	}

	if cfg.out == "" {
		return nil
	}
	opts := cfg.opts
	opts.Geometry = m
	log.Printf("sampling %v over %v at %dx%d", m, cfg.domain, opts.XPoints, opts.YPoints)
	p, err := render.FlowNet(well, cfg.domain, opts)
	if err != nil {
		return err
	}
	if err := render.Save(p, cfg.width, cfg.out); err != nil {
		return err
	}
	log.Printf("wrote %s", cfg.out)
	return nil
}
