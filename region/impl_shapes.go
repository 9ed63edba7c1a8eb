// SPDX-License-Identifier: MIT
// Package: lattix/region
//
// impl_shapes.go - shape constructors.
//
// Contract:
//   • Every prism spans z ∈ [0,H] in the lattice's local frame; bottom and
//     top faces are always the last two faces emitted.
//   • Side faces are closed; use WithOpenFaces to open any of them.
//   • Parameters are validated before any face is produced.
//
// Face order (stable, usable with WithOpenFaces):
//   • Box:            +x, −x, +y, −y, +z, −z.
//   • Parallelogram:  along l (through origin), opposite l, along w (through
//                     origin), opposite w, −z, +z.
//   • RegularPolygon: n sides counter-clockwise from the edge on the x axis,
//                     then −z, +z.

package region

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box returns the faces of [0,length]×[0,width]×[0,height].
func Box(length, width, height float64) Constructor {
	return func(regionConfig) (Region, error) {
		for _, p := range []struct {
			name string
			v    float64
		}{{"length", length}, {"width", width}, {"height", height}} {
			if err := validateExtent(methodBox, p.name, p.v, false); err != nil {
				return Region{}, err
			}
		}
		return Region{Faces: []lattice.Constraint{
			lattice.NewConstraint(r3.Vec{X: 1}, length),
			lattice.NewConstraint(r3.Vec{X: -1}, 0),
			lattice.NewConstraint(r3.Vec{Y: 1}, width),
			lattice.NewConstraint(r3.Vec{Y: -1}, 0),
			lattice.NewConstraint(r3.Vec{Z: 1}, height),
			lattice.NewConstraint(r3.Vec{Z: -1}, 0),
		}}, nil
	}
}

// Parallelogram returns the prism over the parallelogram with corners 0, l,
// w and l+w (z components of l and w are ignored), extruded to height.
// The edges may be given in either rotational order.
func Parallelogram(l, w r3.Vec, height float64) Constructor {
	return func(regionConfig) (Region, error) {
		if err := validateExtent(methodParallelogram, "height", height, false); err != nil {
			return Region{}, err
		}
		l, w := r3.Vec{X: l.X, Y: l.Y}, r3.Vec{X: w.X, Y: w.Y}
		area := r3.Cross(l, w)
		if math.Abs(area.Z) <= parallelTolerance {
			return Region{}, fmt.Errorf("%s: edges %v and %v are parallel or zero: %w",
				methodParallelogram, l, w, ErrBadDimension)
		}
		if area.Z < 0 {
			l, w = w, l
		}
		z := r3.Vec{Z: 1}
		a := math.Abs(area.Z)
		nl := r3.Unit(r3.Cross(l, z)) // outward across the edge along l
		nw := r3.Unit(r3.Cross(w, z)) // inward across the edge along w
		return Region{Faces: []lattice.Constraint{
			lattice.NewConstraint(nl, 0),
			lattice.NewConstraint(r3.Scale(-1, nl), a/r3.Norm(l)),
			lattice.NewConstraint(r3.Scale(-1, nw), 0),
			lattice.NewConstraint(nw, a/r3.Norm(w)),
			lattice.NewConstraint(r3.Scale(-1, z), 0),
			lattice.NewConstraint(z, height),
		}}, nil
	}
}

// RegularPolygon returns the prism over a regular polygon with the given
// number of sides of length side. The first edge runs from the origin along
// +x; the polygon lies on the +y side of it.
func RegularPolygon(side, height float64, sides int) Constructor {
	return func(regionConfig) (Region, error) {
		if sides < minPolygonSides {
			return Region{}, fmt.Errorf("%s: sides=%d: %w", methodRegularPolygon, sides, ErrTooFewSides)
		}
		if err := validateExtent(methodRegularPolygon, "side", side, true); err != nil {
			return Region{}, err
		}
		if err := validateExtent(methodRegularPolygon, "height", height, false); err != nil {
			return Region{}, err
		}
		z := r3.Vec{Z: 1}
		turn := 2 * math.Pi / float64(sides)
		normal, edge, vertex := r3.Vec{Y: -1}, r3.Vec{X: side}, r3.Vec{}

		faces := make([]lattice.Constraint, 0, sides+2)
		for k := 0; k < sides; k++ {
			// Side k passes through vertex k+1 (and vertex k).
			vertex = r3.Add(vertex, edge)
			faces = append(faces, lattice.NewConstraint(normal, r3.Dot(normal, vertex)))
			normal = r3.Rotate(normal, turn, z)
			edge = r3.Rotate(edge, turn, z)
		}
		faces = append(faces,
			lattice.NewConstraint(r3.Scale(-1, z), 0),
			lattice.NewConstraint(z, height),
		)
		return Region{Faces: faces}, nil
	}
}

// HalfSpaces passes arbitrary faces through unchanged.
func HalfSpaces(faces ...lattice.Constraint) Constructor {
	cp := append([]lattice.Constraint(nil), faces...)
	return func(regionConfig) (Region, error) {
		for i, f := range cp {
			if r3.Norm(f.Normal) == 0 {
				return Region{}, fmt.Errorf("%s: face %d has zero normal: %w", methodHalfSpaces, i, ErrBadDimension)
			}
		}
		return Region{Faces: append([]lattice.Constraint(nil), cp...)}, nil
	}
}

// Implicit keeps only the points for which inside returns true. It adds no
// faces: compose it with a bounding constructor.
func Implicit(inside lattice.Predicate) Constructor {
	return func(regionConfig) (Region, error) {
		if inside == nil {
			return Region{}, fmt.Errorf("%s: %w", methodImplicit, ErrNilPredicate)
		}
		return Region{Keep: []lattice.Predicate{inside}}, nil
	}
}
