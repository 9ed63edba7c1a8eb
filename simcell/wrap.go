// SPDX-License-Identifier: MIT
// Package: lattix/simcell
//
// wrap.go - periodic wrapping, deduplication and post-wrap edits.
//
// Contract:
//   • f = p·basis⁻¹. On a periodic axis f_i is rounded to 10 decimals and
//     its floor removed, so f_i ∈ [0,1). Fixed axes keep f_i. The Cartesian
//     result f·basis is rounded to the configured precision.
//   • Rounding can carry a point lying just below an upper face onto that
//     face. The fold is therefore repeated on its own output until the
//     position no longer moves, so the face maps onto its periodic image at
//     the lower face.
//   • Wrapping is idempotent: WrapPoints(WrapPoints(P)) == WrapPoints(P).
//   • Deduplication keeps one atom per rounded position. The first grain
//     (in addition order) holding a position sets its type. Atoms are then
//     ordered by x, y, z and numbered from 1.
//
// Complexity: O(N log N) for N grain points.

package simcell

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/lattice"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Wrap folds every grain point into the box and deduplicates the result.
// It may be called again at any time; grains are never modified.
func (c *Cell) Wrap() {
	start := time.Now()
	before := c.UnwrappedCount()
	index := make(map[[3]float64]int, before)
	atoms := make([]Atom, 0, before)
	for _, g := range c.grains {
		t := g.lattice.AtomType()
		for _, p := range g.lattice.RealPoints() {
			w := c.wrap(p)
			k := [3]float64{w.X, w.Y, w.Z}
			if _, seen := index[k]; seen {
				continue
			}
			index[k] = len(atoms)
			atoms = append(atoms, Atom{Type: t, Position: w})
		}
	}
	slices.SortStableFunc(atoms, func(a, b Atom) int {
		return cmp.Or(
			cmp.Compare(a.Position.X, b.Position.X),
			cmp.Compare(a.Position.Y, b.Position.Y),
			cmp.Compare(a.Position.Z, b.Position.Z),
		)
	})
	for i := range atoms {
		atoms[i].ID = i + 1
	}
	c.atoms, c.wrapped = atoms, true

	elapsed := time.Since(start)
	c.cfg.observer.ObserveWrap(before, len(atoms), elapsed)
	c.cfg.logger.Debug("simulation cell wrapped",
		slog.Int("grains", len(c.grains)),
		slog.Int("points", before),
		slog.Int("atoms", len(atoms)),
		slog.Int("duplicates", before-len(atoms)),
		slog.Duration("elapsed", elapsed),
	)
}

// WrapPoints returns pts folded into the box and rounded, without
// deduplication. pts is not modified.
func (c *Cell) WrapPoints(pts []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[i] = c.wrap(p)
	}
	return out
}

func (c *Cell) wrap(p r3.Vec) r3.Vec {
	w := c.fold(p)
	for range maxRefolds {
		next := c.fold(w)
		if next == w {
			break
		}
		w = next
	}
	return w
}

// fold is a single pass of the periodic fold followed by rounding.
func (c *Cell) fold(p r3.Vec) r3.Vec {
	f := c.inverse.Apply(p)
	frac := [3]float64{f.X, f.Y, f.Z}
	for i, b := range c.cfg.boundaries {
		if b != Periodic {
			continue
		}
		v := geom.Round(frac[i], fractionDigits)
		frac[i] = v - math.Floor(v)
	}
	f = r3.Vec{X: frac[0], Y: frac[1], Z: frac[2]}
	return geom.RoundVec(c.basis.Apply(f), c.cfg.precision)
}

// RemovePlaneOfAtoms drops wrapped atoms lying within tol of the plane
// n·x = d of con, then renumbers the rest. It returns the number removed.
func (c *Cell) RemovePlaneOfAtoms(con lattice.Constraint, tol float64) (int, error) {
	if !c.wrapped {
		return 0, fmt.Errorf("%s: %w", methodRemovePlaneOfAtoms, ErrNotWrapped)
	}
	if n := r3.Norm(con.Normal); n == 0 || math.IsNaN(n) || math.IsInf(n, 0) || !(tol > 0) {
		return 0, fmt.Errorf("%s: normal %v tol %g: %w", methodRemovePlaneOfAtoms, con.Normal, tol, ErrBadPlane)
	}
	kept := c.atoms[:0]
	for _, a := range c.atoms {
		if geom.OnPlane(geom.RoundVec(a.Position, planeDigits), con.Normal, con.Offset, tol) {
			continue
		}
		a.ID = len(kept) + 1
		kept = append(kept, a)
	}
	removed := len(c.atoms) - len(kept)
	c.atoms = kept
	c.cfg.logger.Debug("atoms removed on plane",
		slog.Any("normal", con.Normal),
		slog.Float64("offset", con.Offset),
		slog.Int("removed", removed),
	)
	return removed, nil
}

// MinimumBox returns the per-axis extent of every grain point, unwrapped.
func (c *Cell) MinimumBox() (lo, hi r3.Vec, err error) {
	n := c.UnwrappedCount()
	if n == 0 {
		return r3.Vec{}, r3.Vec{}, fmt.Errorf("%s: %w", methodMinimumBox, ErrEmpty)
	}
	xs, ys, zs := make([]float64, 0, n), make([]float64, 0, n), make([]float64, 0, n)
	for _, g := range c.grains {
		for _, p := range g.lattice.RealPoints() {
			xs, ys, zs = append(xs, p.X), append(ys, p.Y), append(zs, p.Z)
		}
	}
	lo = r3.Vec{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	hi = r3.Vec{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	return lo, hi, nil
}
