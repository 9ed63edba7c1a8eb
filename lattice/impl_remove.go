// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// impl_remove.go - post-generation point removal.
//
// Contract:
//   • Every helper deletes the same rows from realPoints and latticePoints.
//   • Helpers that take Cartesian geometry work on ABSOLUTE coordinates (the
//     origin already applied), except OpenFaces which re-tests the lattice's
//     own faces in the local frame they were generated in.
//   • Each helper returns the number of points removed. Helpers taking a
//     Constraint reject a malformed one with ErrInvalidConstraint and leave
//     the lattice untouched.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Predicate reports whether a Cartesian point belongs to a region.
type Predicate func(p r3.Vec) bool

// RemovePoints drops every point exactly equal to one of pts.
// Complexity: O(N + P).
func (l *Lattice) RemovePoints(pts []r3.Vec) int {
	drop := make(map[r3.Vec]struct{}, len(pts))
	for _, p := range pts {
		drop[p] = struct{}{}
	}
	return l.removeWhere(func(p r3.Vec) bool {
		_, ok := drop[p]
		return ok
	})
}

// RemoveCoincident drops every point within tol of any of pts.
// Complexity: O(N·P).
func (l *Lattice) RemoveCoincident(pts []r3.Vec, tol float64) int {
	return l.removeWhere(func(p r3.Vec) bool {
		for _, q := range pts {
			if r3.Norm(r3.Sub(p, q)) < tol {
				return true
			}
		}
		return false
	})
}

// ConstrainRealPoints drops every point outside the extra half-space c,
// using the lattice's boundary rounding.
//
// Complexity: O(N).
func (l *Lattice) ConstrainRealPoints(c Constraint) (int, error) {
	if err := c.validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodConstrainRealPoints, err)
	}
	n := c.Normalised()
	return l.removeWhere(func(p r3.Vec) bool {
		return n.Rejects(n.Eval(p), l.cfg.rounding)
	}), nil
}

// RemovePlane drops every point within tol of the plane c.Normal·x = c.Offset.
// tol must be finite and positive.
//
// Complexity: O(N).
func (l *Lattice) RemovePlane(c Constraint, tol float64) (int, error) {
	if err := c.validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodRemovePlane, err)
	}
	if !finite(tol) || tol <= 0 {
		return 0, fmt.Errorf("%s: tol=%g: %w", methodRemovePlane, tol, ErrInvalidConstraint)
	}
	return l.removeWhere(func(p r3.Vec) bool {
		return math.Abs(c.Distance(p)) < tol
	}), nil
}

// Keep drops every point for which inside returns false. A nil predicate
// removes nothing.
// Complexity: O(N) predicate calls.
func (l *Lattice) Keep(inside Predicate) int {
	if inside == nil {
		return 0
	}
	return l.removeWhere(func(p r3.Vec) bool { return !inside(p) })
}

// OpenFaces marks the given constraints as open and drops the points lying
// on them (signed distance rounded to OpenFaceRounding equals zero).
// Indices refer to Constraints(); any bad index aborts before changes with
// ErrConstraintIndex.
//
// Complexity: O(N·F) for F opened faces.
func (l *Lattice) OpenFaces(idx ...int) (int, error) {
	for _, i := range idx {
		if i < 0 || i >= len(l.constraints) {
			return 0, fmt.Errorf("%s: index %d of %d: %w", methodOpenFaces, i, len(l.constraints), ErrConstraintIndex)
		}
	}
	faces := make([]Constraint, 0, len(idx))
	for _, i := range idx {
		l.constraints[i].Face = Open
		l.latticeConstraints[i].Face = Open
		faces = append(faces, l.constraints[i].Normalised())
	}
	removed := l.removeWhere(func(p r3.Vec) bool {
		local := r3.Sub(p, l.origin)
		for _, f := range faces {
			if v := f.Eval(local); geom.Round(v, OpenFaceRounding) == 0 {
				return true
			}
		}
		return false
	})
	l.cfg.logger.Debug("lattice faces opened", "faces", idx, "removed", removed)
	return removed, nil
}

// removeWhere deletes, in place and in lock-step, every row whose real point
// matches drop.
func (l *Lattice) removeWhere(drop func(r3.Vec) bool) int {
	kept := 0
	for i, p := range l.realPoints {
		if drop(p) {
			continue
		}
		l.realPoints[kept] = p
		l.latticePoints[kept] = l.latticePoints[i]
		kept++
	}
	removed := len(l.realPoints) - kept
	l.realPoints = l.realPoints[:kept]
	l.latticePoints = l.latticePoints[:kept]
	return removed
}
