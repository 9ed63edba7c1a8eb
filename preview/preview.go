// SPDX-License-Identifier: MIT
// Package: lattix/preview
//
// preview.go - gonum/plot scatter of simulation cell atoms.
//
// Contract:
//   • Atoms are taken from Cell.Atoms, so a wrapped cell shows the
//     deduplicated atoms and an unwrapped one every grain point.
//   • Atom types are drawn in ascending order; type k gets palette colour
//     of its rank.

package preview

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/lattix/simcell"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrEmpty indicates a cell without atoms.
var ErrEmpty = errors.New("preview: no atoms to plot")

// Projection selects the coordinate plane of the plot.
type Projection int

// Planes a cell can be projected onto.
const (
	XY Projection = iota
	XZ
	YZ
)

func (p Projection) String() string {
	switch p {
	case XZ:
		return "xz"
	case YZ:
		return "yz"
	default:
		return "xy"
	}
}

func (p Projection) project(v r3.Vec) plotter.XY {
	switch p {
	case XZ:
		return plotter.XY{X: v.X, Y: v.Z}
	case YZ:
		return plotter.XY{X: v.Y, Y: v.Z}
	default:
		return plotter.XY{X: v.X, Y: v.Y}
	}
}

func (p Projection) labels() (string, string) {
	s := p.String()
	return s[:1], s[1:]
}

// Option customises a plot.
type Option func(*config)

type config struct {
	title         string
	projection    Projection
	width, height vg.Length
	radius        vg.Length
}

// WithTitle sets the plot title.
func WithTitle(t string) Option { return func(c *config) { c.title = t } }

// WithProjection selects the plane (default XY).
func WithProjection(p Projection) Option {
	if p < XY || p > YZ {
		panic("preview: WithProjection(unknown projection)")
	}
	return func(c *config) { c.projection = p }
}

// WithSize sets the image size (default 6×6 inches). Panics on a
// non-positive size.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic("preview: WithSize(non-positive size)")
	}
	return func(c *config) { c.width, c.height = w, h }
}

// WithGlyphRadius sets the marker radius (default 1.5pt).
func WithGlyphRadius(r vg.Length) Option {
	if r <= 0 {
		panic("preview: WithGlyphRadius(r<=0)")
	}
	return func(c *config) { c.radius = r }
}

func newConfig(opts ...Option) config {
	cfg := config{width: 6 * vg.Inch, height: 6 * vg.Inch, radius: vg.Points(1.5)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Plot builds the scatter plot of c.
func Plot(c *simcell.Cell, opts ...Option) (*plot.Plot, error) {
	cfg := newConfig(opts...)
	byType := make(map[int]plotter.XYs)
	for _, a := range c.Atoms() {
		byType[a.Type] = append(byType[a.Type], cfg.projection.project(a.Position))
	}
	if len(byType) == 0 {
		return nil, ErrEmpty
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text, p.Y.Label.Text = cfg.projection.labels()
	p.Add(plotter.NewGrid())

	types := make([]int, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	slices.Sort(types)
	for i, t := range types {
		s, err := plotter.NewScatter(byType[t])
		if err != nil {
			return nil, fmt.Errorf("preview: type %d: %w", t, err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = cfg.radius
		s.GlyphStyle.Color = plotutil.Color(i)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("type %d", t), s)
	}
	return p, nil
}

// WritePNG renders c as a PNG image to w.
func WritePNG(w io.Writer, c *simcell.Cell, opts ...Option) error {
	p, err := Plot(c, opts...)
	if err != nil {
		return err
	}
	cfg := newConfig(opts...)
	wt, err := p.WriterTo(cfg.width, cfg.height, "png")
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// SavePNG renders c to a PNG file at path.
func SavePNG(path string, c *simcell.Cell, opts ...Option) error {
	p, err := Plot(c, opts...)
	if err != nil {
		return err
	}
	cfg := newConfig(opts...)
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("preview: %s: %w", path, err)
	}
	return nil
}
