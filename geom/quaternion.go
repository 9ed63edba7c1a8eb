// SPDX-License-Identifier: MIT
// Package: lattix/geom
//
// quaternion.go - orientation quaternions and cubic symmetry reduction.
//
// Contract:
//   • QuaternionFromBasis treats the basis rows as the crystal axes expressed
//     in Cartesian coordinates; the rotation matrix is therefore Bᵀ.
//   • Returned quaternions are unit length with Real ≥ 0.
//   • CubicEquivalent picks, among the 24 proper cubic symmetry variants, the
//     one with the largest Real part (smallest misorientation from identity).
//     Ties resolve to the first variant in a fixed enumeration order.

package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// quatTieTolerance separates genuinely different Real parts from round-off.
const quatTieTolerance = 1e-9

// cubicGroup holds the 24 proper rotations of the cube as unit quaternions.
var cubicGroup = buildCubicGroup()

// AxisAngleQuaternion returns the unit quaternion of a rotation by angle
// about axis.
func AxisAngleQuaternion(angle float64, axis r3.Vec) quat.Number {
	u := r3.Unit(axis)
	s := math.Sin(angle / 2)
	return quat.Number{Real: math.Cos(angle / 2), Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z}
}

// QuaternionFromBasis converts an orthonormal orientation basis to a unit
// quaternion using Shepperd's method.
func QuaternionFromBasis(b Basis) quat.Number {
	r := b.Transpose()
	m00, m01, m02 := r[0].X, r[0].Y, r[0].Z
	m10, m11, m12 := r[1].X, r[1].Y, r[1].Z
	m20, m21, m22 := r[2].X, r[2].Y, r[2].Z

	var q quat.Number
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		q = quat.Number{Real: s / 4, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: s / 4, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: s / 4, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: s / 4}
	}
	return canonical(q)
}

// CubicEquivalent returns the representative of q under cubic symmetry.
func CubicEquivalent(q quat.Number) quat.Number {
	best := canonical(q)
	for _, s := range cubicGroup[1:] {
		c := canonical(quat.Mul(q, s))
		if c.Real > best.Real+quatTieTolerance {
			best = c
		}
	}
	return best
}

// canonical normalises q and flips its sign so that Real ≥ 0.
func canonical(q quat.Number) quat.Number {
	if n := quat.Abs(q); n > 0 {
		q = quat.Scale(1/n, q)
	}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	return q
}

func buildCubicGroup() []quat.Number {
	g := []quat.Number{{Real: 1}}
	// 90°, 180°, 270° about the three cube axes.
	for _, axis := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		for k := 1; k <= 3; k++ {
			g = append(g, AxisAngleQuaternion(float64(k)*math.Pi/2, axis))
		}
	}
	// 120°, 240° about the four body diagonals.
	for _, axis := range []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: -1}} {
		for k := 1; k <= 2; k++ {
			g = append(g, AxisAngleQuaternion(float64(k)*2*math.Pi/3, axis))
		}
	}
	// 180° about the six face diagonals.
	for _, axis := range []r3.Vec{
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: 1, Z: 1}, {X: 1, Z: -1}, {Y: 1, Z: 1}, {Y: 1, Z: -1},
	} {
		g = append(g, AxisAngleQuaternion(math.Pi, axis))
	}
	return g
}
