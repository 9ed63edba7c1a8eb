// SPDX-License-Identifier: MIT
// Package: lattix/region
//
// api.go - public entry points of the region package.
//
// Design contract:
//   - One orchestrator: Generate(l, opts, cons...). Resolves options, runs the
//     constructors in order, intersects their faces and fills the lattice.
//   - Shape constructors are declared in impl_*.go; each validates its own
//     parameters and returns sentinel errors.
//   - Determinism: the same constructors in the same order produce the same
//     face list and therefore the same point order.

package region

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lattix/cell"
	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// Region is the output of a Constructor: half-space faces and optional
// predicates applied after generation.
type Region struct {
	Faces []lattice.Constraint
	Keep  []lattice.Predicate
}

// Constructor produces a Region from the resolved configuration.
// Constructors validate their parameters and never panic.
type Constructor func(cfg regionConfig) (Region, error)

// Compose runs every constructor and concatenates the results, marking the
// configured faces open. It does not touch any lattice.
func Compose(opts []Option, cons ...Constructor) (Region, error) {
	return compose(newRegionConfig(opts...), cons)
}

func compose(cfg regionConfig, cons []Constructor) (Region, error) {
	var out Region
	for i, fn := range cons {
		if fn == nil {
			return Region{}, fmt.Errorf("%s: nil constructor at index %d: %w", methodGenerate, i, ErrConstructFailed)
		}
		r, err := fn(cfg)
		if err != nil {
			return Region{}, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		out.Faces = append(out.Faces, r.Faces...)
		out.Keep = append(out.Keep, r.Keep...)
	}
	for _, idx := range cfg.openFaces {
		if idx >= len(out.Faces) {
			return Region{}, fmt.Errorf("%s: open face %d of %d: %w", methodGenerate, idx, len(out.Faces), ErrFaceIndex)
		}
		out.Faces[idx] = out.Faces[idx].Opened()
	}
	return out, nil
}

// Generate fills l with the points inside the composition of cons.
// Faces from every constructor are intersected; predicates are ANDed and
// applied to the generated points.
func Generate(l *lattice.Lattice, opts []Option, cons ...Constructor) error {
	if l == nil {
		return fmt.Errorf("%s: nil lattice: %w", methodGenerate, ErrConstructFailed)
	}
	cfg := newRegionConfig(opts...)
	r, err := compose(cfg, cons)
	if err != nil {
		return err
	}
	if len(r.Faces) == 0 {
		return fmt.Errorf("%s: %w", methodGenerate, ErrUnbounded)
	}
	if err := l.Generate(r.Faces); err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}
	removed := 0
	for _, keep := range r.Keep {
		removed += l.Keep(keep)
	}
	cfg.logger.Debug("region generated",
		slog.Int("faces", len(r.Faces)),
		slog.Int("predicates", len(r.Keep)),
		slog.Int("removed_by_predicates", removed),
		slog.Int("points", l.Len()),
	)
	return nil
}

// ExtrudedRectangle builds a lattice filled with Box(length, width, height).
func ExtrudedRectangle(rc *cell.RealCell, orientation geom.Basis, origin r3.Vec,
	length, width, height float64, lopts ...lattice.Option) (*lattice.Lattice, error) {
	return extruded(rc, orientation, origin, Box(length, width, height), lopts)
}

// ExtrudedParallelogram builds a lattice filled with Parallelogram(length, width, height).
func ExtrudedParallelogram(rc *cell.RealCell, orientation geom.Basis, origin r3.Vec,
	length, width r3.Vec, height float64, lopts ...lattice.Option) (*lattice.Lattice, error) {
	return extruded(rc, orientation, origin, Parallelogram(length, width, height), lopts)
}

// ExtrudedRegularPolygon builds a lattice filled with RegularPolygon(side, height, sides).
func ExtrudedRegularPolygon(rc *cell.RealCell, orientation geom.Basis, origin r3.Vec,
	side, height float64, sides int, lopts ...lattice.Option) (*lattice.Lattice, error) {
	return extruded(rc, orientation, origin, RegularPolygon(side, height, sides), lopts)
}

func extruded(rc *cell.RealCell, orientation geom.Basis, origin r3.Vec, c Constructor, lopts []lattice.Option) (*lattice.Lattice, error) {
	l, err := lattice.New(rc, orientation, origin, lopts...)
	if err != nil {
		return nil, err
	}
	if err := Generate(l, nil, c); err != nil {
		return nil, err
	}
	return l, nil
}
