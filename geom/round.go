// SPDX-License-Identifier: MIT
// Package: lattix/geom
//
// round.go - decimal rounding and plane tests.
//
// Rounding is half-away-from-zero at the requested decimal place. Negative
// zero is normalised to +0 so rounded values are safe as map keys.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Round rounds x to digits decimal places.
func Round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// RoundVec rounds every component of v.
func RoundVec(v r3.Vec, digits int) r3.Vec {
	return r3.Vec{X: Round(v.X, digits), Y: Round(v.Y, digits), Z: Round(v.Z, digits)}
}

// Key returns v as a comparable array, rounded to digits decimals.
func Key(v r3.Vec, digits int) [3]float64 {
	r := RoundVec(v, digits)
	return [3]float64{r.X, r.Y, r.Z}
}

// PlaneDistance returns the signed distance n·p − d divided by |n|.
func PlaneDistance(p, n r3.Vec, d float64) float64 {
	return (r3.Dot(n, p) - d) / r3.Norm(n)
}

// OnPlane reports whether p lies within tol of the plane n·x = d.
func OnPlane(p, n r3.Vec, d, tol float64) bool {
	return math.Abs(PlaneDistance(p, n, d)) < tol
}
