// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// impl_generate.go - Generate: constraints → lattice and real points.
//
// Contract:
//   • Constraints are in the local Cartesian frame (before the origin shift).
//   • Fails fast with ErrInvalidConstraint / ErrInvalidRegion; on failure the
//     previous points, constraints and stats are left untouched.
//   • Closed faces accept round(v) ≤ 0, open faces accept round(v) < 0, with
//     v the signed distance in cell coordinates and the configured rounding.
//
// Complexity:
//   • O(k³) for the bounding box (k constraints).
//   • O(B·m·k) for the filter, B = cells in the box, m = motif size.
//   • The box spans the feasible vertices only, so B tracks the region's
//     volume; rejected points are not retained.
//
// Determinism:
//   • Enumeration order is x, then y, then z, then motif order; duplicates
//     keep their first occurrence. Output order is therefore stable.

package lattice

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lattix/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Generate replaces the lattice contents with every motif point inside the
// intersection of constraints. Constraints are Cartesian, relative to the
// origin. A malformed face is ErrInvalidConstraint; an unbounded or
// degenerate set is ErrInvalidRegion. On error the previous contents stay.
//
// Complexity: O(k⁴ + B·m·k) for k faces, B box cells and m motif nodes.
func (l *Lattice) Generate(constraints []Constraint) error {
	start := time.Now()
	if err := l.generate(constraints, start); err != nil {
		l.cfg.observer.ObserveGenerationError(err)
		l.cfg.logger.Debug("lattice generation failed", slog.Any("error", err))
		return err
	}
	l.cfg.observer.ObserveGeneration(l.stats)
	l.cfg.logger.Debug("lattice generated",
		slog.Int("constraints", l.stats.Constraints),
		slog.Int("triples", l.stats.Triples),
		slog.Int("skipped_triples", l.stats.Skipped),
		slog.Int("infeasible_vertices", l.stats.Infeasible),
		slog.Int("vertices", l.stats.Vertices),
		slog.Int("candidates", l.stats.Candidates),
		slog.Int("points", l.stats.Accepted),
		slog.Duration("elapsed", l.stats.Elapsed),
	)
	return nil
}

func (l *Lattice) generate(constraints []Constraint, start time.Time) error {
	for i, c := range constraints {
		if err := c.validate(); err != nil {
			return fmt.Errorf("%s: constraint %d: %w", methodGenerate, i, err)
		}
	}

	// 1) Cartesian faces → cell coordinates.
	lcons := make([]Constraint, len(constraints))
	for i, c := range constraints {
		lcons[i] = l.toCell(c)
	}

	// 2) Integer box from vertex enumeration.
	box, bst, err := Bounds(lcons, l.cfg.detTol)
	if err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}

	// 3) Replicate the motif over every cell origin in the box and
	// 4) keep what passes the face test in cell coordinates.
	accepted, candidates := l.enumerate(box, lcons)

	// 5) Commit.
	l.constraints = append([]Constraint(nil), constraints...)
	l.latticeConstraints = lcons
	l.latticePoints = accepted
	l.realPoints = make([]r3.Vec, len(accepted))
	for i, p := range accepted {
		l.realPoints[i] = l.toReal(p)
	}
	l.stats = Stats{
		Constraints: len(constraints),
		Triples:     bst.Triples,
		Skipped:     bst.Skipped,
		Infeasible:  bst.Infeasible,
		Vertices:    bst.Vertices,
		Box:         box,
		Candidates:  candidates,
		Accepted:    len(accepted),
		Elapsed:     time.Since(start),
	}
	return nil
}

// toCell maps n·x ≤ d (x local Cartesian) to m·u ≤ d (u cell coordinates)
// using x = u·M, so m = M·n. The result is normalised so its value is a
// distance in cell units.
func (l *Lattice) toCell(c Constraint) Constraint {
	return Constraint{Normal: l.transform.MulVec(c.Normal), Offset: c.Offset, Face: c.Face}.Normalised()
}

// enumerate walks every motif point over the box and returns the unique
// points accepted by cons, in enumeration order, with the number of unique
// points visited.
func (l *Lattice) enumerate(box Box, cons []Constraint) ([]r3.Vec, int) {
	nodes := l.Nodes()
	var out []r3.Vec
	seen := make(map[[3]float64]struct{})
	visited := 0
	for x := box.Lo[0]; x <= box.Hi[0]; x++ {
		for y := box.Lo[1]; y <= box.Hi[1]; y++ {
			for z := box.Lo[2]; z <= box.Hi[2]; z++ {
				o := r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
				for _, n := range nodes {
					p := geom.RoundVec(r3.Add(o, n), pointRounding)
					k := [3]float64{p.X, p.Y, p.Z}
					if _, dup := seen[k]; dup {
						continue
					}
					seen[k] = struct{}{}
					visited++
					if !rejectedBy(cons, p, l.cfg.rounding) {
						out = append(out, p)
					}
				}
			}
		}
	}
	return out, visited
}

// toReal maps a cell-coordinate point to absolute Cartesian coordinates.
func (l *Lattice) toReal(u r3.Vec) r3.Vec {
	cellSpace := geom.RoundVec(l.RealCellVectors().Apply(u), pointRounding)
	local := geom.RoundVec(l.orientation.Apply(cellSpace), pointRounding)
	return r3.Add(local, l.origin)
}

func rejectedBy(cons []Constraint, p r3.Vec, digits int) bool {
	for _, c := range cons {
		if c.Rejects(c.Eval(p), digits) {
			return true
		}
	}
	return false
}
