// SPDX-License-Identifier: MIT
// Package: lattix/geom
//
// rotation.go - rotations about arbitrary axes and basis alignment.
//
// Contract:
//   • Rotations follow the right-hand rule (r3.Rotate semantics).
//   • RotationBetween handles parallel and antiparallel inputs explicitly so
//     callers never see a NaN axis.

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ZAxis is the extrusion direction used throughout lattix.
var ZAxis = r3.Vec{Z: 1}

// XAxis is the in-plane reference direction used by the CSL solver.
var XAxis = r3.Vec{X: 1}

// RotateVectors rotates every row of b by angle about axis.
func RotateVectors(angle float64, axis r3.Vec, b Basis) Basis {
	var out Basis
	for i, v := range b {
		out[i] = r3.Rotate(v, angle, axis)
	}
	return out
}

// RotationBetween returns the angle and unit axis of the smallest rotation
// carrying from onto to. Both inputs must be non-zero.
//
// Parallel vectors give (0, ZAxis). Antiparallel vectors give π about an
// axis perpendicular to from.
func RotationBetween(from, to r3.Vec) (float64, r3.Vec) {
	u, v := r3.Unit(from), r3.Unit(to)
	c := math.Max(-1, math.Min(1, r3.Dot(u, v)))
	axis := r3.Cross(u, v)
	if r3.Norm(axis) > parallelTolerance {
		return math.Acos(c), r3.Unit(axis)
	}
	if c > 0 {
		return 0, ZAxis
	}
	// Antiparallel: any perpendicular axis works; pick the one closest to a
	// coordinate axis for stable output.
	perp := r3.Cross(u, XAxis)
	if r3.Norm(perp) <= parallelTolerance {
		perp = r3.Cross(u, r3.Vec{Y: 1})
	}
	return math.Pi, r3.Unit(perp)
}

// AlignedBasis returns the identity rotated so that direction maps onto the
// z axis. The rows are the Cartesian axes of a crystal whose [direction]
// points along z.
func AlignedBasis(direction r3.Vec) (Basis, error) {
	if r3.Norm(direction) == 0 {
		return Basis{}, fmt.Errorf("%s: %w", methodAligned, ErrZeroAxis)
	}
	angle, axis := RotationBetween(direction, ZAxis)
	return RotateVectors(angle, axis, Identity()), nil
}

// ReduceAxis divides an integer direction by the GCD of its components.
func ReduceAxis(axis [3]int) ([3]int, error) {
	g := gcd(gcd(abs(axis[0]), abs(axis[1])), abs(axis[2]))
	if g == 0 {
		return axis, fmt.Errorf("%s: %v: %w", methodReduceAxis, axis, ErrZeroAxis)
	}
	return [3]int{axis[0] / g, axis[1] / g, axis[2] / g}, nil
}

// AxisVec converts an integer direction to a vector.
func AxisVec(axis [3]int) r3.Vec {
	return r3.Vec{X: float64(axis[0]), Y: float64(axis[1]), Z: float64(axis[2])}
}

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b int) int { return gcd(abs(a), abs(b)) }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
