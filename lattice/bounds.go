// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// bounds.go - integer bounding box of a half-space intersection by vertex
// enumeration.
//
// Contract:
//   • Input constraints are expressed in the coordinate system the box is
//     wanted in (Generate passes cell coordinates).
//   • Every triple whose normals have |det| > detTol is solved for its plane
//     intersection. Intersections violating some face by more than
//     vertexRounding decimals are discarded; the rest are exactly the
//     polytope's vertices, whose hull is the feasible region. The box is the
//     per-axis floor(min)..ceil(max) over them.
//   • A bounded but infeasible intersection yields an empty box (Cells()==0).
//   • Near-parallel triples are skipped and counted, never fatal.
//   • The intersection must be bounded: a direction v with n·v ≤ 0 for every
//     face is an escape ray and yields ErrInvalidRegion.
//
// Complexity:
//   • Time O(k⁴) for k constraints (k³ triples, each checked against every
//     face) plus O(k³) for the escape test.
//   • Space O(k³) for the vertex list in the worst case.

package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an inclusive integer range per axis.
type Box struct {
	Lo, Hi [3]int
}

// Cells returns the number of integer cell origins inside the box.
//
// Complexity: O(1).
func (b Box) Cells() int {
	n := 1
	for i := range b.Lo {
		n *= max(0, b.Hi[i]-b.Lo[i]+1)
	}
	return n
}

// Empty reports whether the box holds no cell origin.
func (b Box) Empty() bool { return b.Cells() == 0 }

// Contains reports whether p lies inside the real-valued extent of the box.
func (b Box) Contains(p r3.Vec) bool {
	c := [3]float64{p.X, p.Y, p.Z}
	for i := range c {
		if c[i] < float64(b.Lo[i]) || c[i] > float64(b.Hi[i]) {
			return false
		}
	}
	return true
}

// BoundStats counts the work done by Bounds.
type BoundStats struct {
	Triples    int // constraint triples examined
	Skipped    int // triples rejected as near-parallel
	Infeasible int // intersections outside some other face
	Vertices   int // feasible intersections collected
}

// Bounds returns the integer box containing every point that satisfies all
// constraints. detTol is the determinant floor for a usable triple.
//
// Complexity: O(k⁴) for k constraints (k³ triples, each checked against k faces).
func Bounds(cons []Constraint, detTol float64) (Box, BoundStats, error) {
	var st BoundStats
	if len(cons) < minConstraints {
		return Box{}, st, fmt.Errorf("%s: %d constraints (need ≥ %d): %w",
			methodBounds, len(cons), minConstraints, ErrInvalidRegion)
	}
	for i, c := range cons {
		if err := c.validate(); err != nil {
			return Box{}, st, fmt.Errorf("%s: constraint %d: %w", methodBounds, i, err)
		}
	}
	if v, ok := escapeDirection(cons); ok {
		return Box{}, st, fmt.Errorf("%s: unbounded along %v: %w", methodBounds, v, ErrInvalidRegion)
	}

	var axes [3][]float64
	var x mat.VecDense
	solved := 0
	for i := 0; i < len(cons); i++ {
		for j := i + 1; j < len(cons); j++ {
			for k := j + 1; k < len(cons); k++ {
				st.Triples++
				rows := geom.Basis{cons[i].Normal, cons[j].Normal, cons[k].Normal}
				if math.Abs(rows.Det()) <= detTol {
					st.Skipped++
					continue
				}
				rhs := mat.NewVecDense(3, []float64{cons[i].Offset, cons[j].Offset, cons[k].Offset})
				if err := x.SolveVec(rows.Dense(), rhs); err != nil {
					// A condition warning still carries a usable solution.
					var cond mat.Condition
					if !errors.As(err, &cond) {
						st.Skipped++
						continue
					}
				}
				solved++
				v := r3.Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}
				if !feasible(cons, v) {
					st.Infeasible++
					continue
				}
				st.Vertices++
				for a := range axes {
					axes[a] = append(axes[a], x.AtVec(a))
				}
			}
		}
	}
	if solved == 0 {
		return Box{}, st, fmt.Errorf("%s: no non-degenerate constraint triple: %w", methodBounds, ErrInvalidRegion)
	}
	if st.Vertices == 0 {
		return Box{Hi: [3]int{-1, -1, -1}}, st, nil
	}

	var box Box
	for a := range axes {
		box.Lo[a] = int(math.Floor(geom.Round(floats.Min(axes[a]), pointRounding)))
		box.Hi[a] = int(math.Ceil(geom.Round(floats.Max(axes[a]), pointRounding)))
	}
	return box, st, nil
}

// feasible reports whether v lies on the inner side of every face, closed
// faces and open faces alike.
func feasible(cons []Constraint, v r3.Vec) bool {
	for _, c := range cons {
		if geom.Round(c.Distance(v), vertexRounding) > 0 {
			return false
		}
	}
	return true
}

// escapeDirection looks for a ray v ≠ 0 with n·v ≤ 0 for every constraint.
// When the normals span space, the recession cone is pointed and each of its
// extreme rays is the intersection of two face planes, so testing ±(nᵢ×nⱼ)
// over all pairs is exhaustive. A rank-deficient set yields a null direction
// through the same cross products (or no vertex at all, caught by Bounds).
func escapeDirection(cons []Constraint) (r3.Vec, bool) {
	for i := 0; i < len(cons); i++ {
		for j := i + 1; j < len(cons); j++ {
			v := r3.Cross(r3.Unit(cons[i].Normal), r3.Unit(cons[j].Normal))
			if r3.Norm(v) <= recessionTolerance {
				continue
			}
			v = r3.Unit(v)
			for _, s := range [2]float64{1, -1} {
				ray := r3.Scale(s, v)
				if escapesAll(cons, ray) {
					return ray, true
				}
			}
		}
	}
	return r3.Vec{}, false
}

func escapesAll(cons []Constraint, ray r3.Vec) bool {
	for _, c := range cons {
		if r3.Dot(r3.Unit(c.Normal), ray) > recessionTolerance {
			return false
		}
	}
	return true
}
