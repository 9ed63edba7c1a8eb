// SPDX-License-Identifier: MIT
// Package: lattix/simcell
//
// cell.go - the Cell type, grain bookkeeping and counts.
//
// Contract:
//   • Box row i, origin o: hi_i = box[i][i] − o_i, lo_i = o_i. The wrap
//     basis is [[hx,0,0],[xy,hy,0],[xz,yz,hz]] with xy = box[1][0],
//     xz = box[2][0], yz = box[2][1].
//   • Grains keep addition order; that order numbers atoms and breaks type
//     ties during deduplication.
//   • The cell never mutates a grain.

package simcell

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// Boundary is the boundary condition of one box axis.
type Boundary int

const (
	// Periodic axes fold fractional coordinates into [0,1).
	Periodic Boundary = iota
	// Fixed axes leave coordinates unchanged.
	Fixed
)

// String returns the LAMMPS boundary letter.
func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "p"
	case Fixed:
		return "f"
	default:
		return "Boundary(" + strconv.Itoa(int(b)) + ")"
	}
}

// Atom is one output atom. ID is 1-based.
type Atom struct {
	ID       int
	Type     int
	Position r3.Vec
}

// Bounds are the LAMMPS box bounds and tilt factors.
type Bounds struct {
	Lo, Hi     r3.Vec
	XY, XZ, YZ float64
}

type grain struct {
	name    string
	lattice *lattice.Lattice
}

// Cell is a periodic simulation box holding named grains.
type Cell struct {
	box     geom.Basis
	basis   geom.Basis // wrap basis, rows are the cell edges
	inverse geom.Basis
	bounds  Bounds
	cfg     cellConfig

	grains []grain
	byName map[string]int

	wrapped bool
	atoms   []Atom // deduplicated, valid while wrapped
}

// New builds a Cell from box rows.
func New(box geom.Basis, opts ...Option) (*Cell, error) {
	cfg := newCellConfig(opts...)
	o := cfg.origin
	b := Bounds{
		Lo: o,
		Hi: r3.Vec{X: box[0].X - o.X, Y: box[1].Y - o.Y, Z: box[2].Z - o.Z},
		XY: box[1].X,
		XZ: box[2].X,
		YZ: box[2].Y,
	}
	basis := geom.Basis{
		{X: b.Hi.X},
		{X: b.XY, Y: b.Hi.Y},
		{X: b.XZ, Y: b.YZ, Z: b.Hi.Z},
	}
	inv, err := basis.Inverse(geom.SingularTolerance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNew, ErrSingularBox, err)
	}
	return &Cell{
		box:     box,
		basis:   basis,
		inverse: inv,
		bounds:  b,
		cfg:     cfg,
		byName:  make(map[string]int),
	}, nil
}

// Box returns the box rows as supplied to New.
func (c *Cell) Box() geom.Basis { return c.box }

// Basis returns the wrap basis derived from the box and origin.
func (c *Cell) Basis() geom.Basis { return c.basis }

// Origin returns the lower corner of the box.
func (c *Cell) Origin() r3.Vec { return c.cfg.origin }

// Boundaries returns the per-axis boundary kinds.
func (c *Cell) Boundaries() [3]Boundary { return c.cfg.boundaries }

// Bounds returns the box bounds and tilt factors as written to the data file.
func (c *Cell) Bounds() Bounds { return c.bounds }

// AddGrain adds l under name. An empty name becomes the 1-based position of
// the grain ("1", "2", …). Adding a grain discards any wrapped atoms.
func (c *Cell) AddGrain(name string, l *lattice.Lattice) error {
	if l == nil {
		return fmt.Errorf("%s: %q: %w", methodAddGrain, name, ErrNilGrain)
	}
	if name == "" {
		name = strconv.Itoa(len(c.grains) + 1)
	}
	if _, dup := c.byName[name]; dup {
		return fmt.Errorf("%s: %q: %w", methodAddGrain, name, ErrDuplicateGrain)
	}
	c.byName[name] = len(c.grains)
	c.grains = append(c.grains, grain{name: name, lattice: l})
	c.wrapped, c.atoms = false, nil
	c.cfg.logger.Debug("grain added",
		slog.String("grain", name),
		slog.Int("points", l.Len()),
		slog.Int("atom_type", l.AtomType()),
	)
	return nil
}

// Grain returns the grain added under name.
func (c *Cell) Grain(name string) (*lattice.Lattice, error) {
	i, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", methodGrain, name, ErrUnknownGrain)
	}
	return c.grains[i].lattice, nil
}

// Grains returns the grain names in addition order.
func (c *Cell) Grains() []string {
	out := make([]string, len(c.grains))
	for i, g := range c.grains {
		out[i] = g.name
	}
	return out
}

// Len returns the number of grains.
func (c *Cell) Len() int { return len(c.grains) }

// Wrapped reports whether the atoms are wrapped and deduplicated.
func (c *Cell) Wrapped() bool { return c.wrapped }

// UnwrappedCount returns the sum of the grain point counts.
func (c *Cell) UnwrappedCount() int {
	n := 0
	for _, g := range c.grains {
		n += g.lattice.Len()
	}
	return n
}

// UniqueCount returns the number of atoms left after Wrap.
func (c *Cell) UniqueCount() (int, error) {
	if !c.wrapped {
		return 0, fmt.Errorf("%s: %w", methodUniqueCount, ErrNotWrapped)
	}
	return len(c.atoms), nil
}

// AtomCount returns UniqueCount when wrapped and UnwrappedCount otherwise.
func (c *Cell) AtomCount() int {
	if c.wrapped {
		return len(c.atoms)
	}
	return c.UnwrappedCount()
}

// AtomTypeCount returns the number of distinct grain atom types.
func (c *Cell) AtomTypeCount() int {
	seen := make(map[int]struct{}, len(c.grains))
	for _, g := range c.grains {
		seen[g.lattice.AtomType()] = struct{}{}
	}
	return len(seen)
}

// Atoms returns the atoms as they would be written: the deduplicated atoms
// when wrapped, otherwise every grain point in grain then point order.
func (c *Cell) Atoms() []Atom {
	if c.wrapped {
		return append([]Atom(nil), c.atoms...)
	}
	out := make([]Atom, 0, c.UnwrappedCount())
	for _, g := range c.grains {
		t := g.lattice.AtomType()
		for _, p := range g.lattice.RealPoints() {
			out = append(out, Atom{ID: len(out) + 1, Type: t, Position: p})
		}
	}
	return out
}
