// SPDX-License-Identifier: MIT
// Package: lattix/geom
//
// basis.go - row-major 3×3 bases and the linear algebra lattix needs on them.
//
// Contract:
//   • Basis rows are vectors; Apply treats its argument as a row vector.
//   • Det/Inverse go through gonum/mat so numerical behaviour matches the
//     rest of the gonum stack (LU with partial pivoting).
//   • Inverse never panics: a near-singular basis yields ErrSingular.
//
// Complexity: every method is O(1) (fixed 3×3 size).

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Basis is an ordered triple of row vectors.
type Basis [3]r3.Vec

// Identity returns the standard Cartesian basis.
func Identity() Basis {
	return Basis{{X: 1}, {Y: 1}, {Z: 1}}
}

// BasisFromRows builds a Basis from three 3-element rows.
// Rows shorter than 3 are zero-padded; extra components are ignored.
func BasisFromRows(rows [3][3]float64) Basis {
	var b Basis
	for i, r := range rows {
		b[i] = r3.Vec{X: r[0], Y: r[1], Z: r[2]}
	}
	return b
}

// Rows returns the basis as plain arrays, row i being vector i.
func (b Basis) Rows() [3][3]float64 {
	var out [3][3]float64
	for i, v := range b {
		out[i] = [3]float64{v.X, v.Y, v.Z}
	}
	return out
}

// Dense copies the basis into a new 3×3 gonum matrix (row i = b[i]).
func (b Basis) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		b[0].X, b[0].Y, b[0].Z,
		b[1].X, b[1].Y, b[1].Z,
		b[2].X, b[2].Y, b[2].Z,
	})
}

// FromDense reads the first three rows and columns of m into a Basis.
func FromDense(m mat.Matrix) Basis {
	var b Basis
	for i := 0; i < 3; i++ {
		b[i] = r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
	}
	return b
}

// Det returns the determinant, i.e. the signed volume spanned by the rows.
func (b Basis) Det() float64 {
	return r3.Dot(b[0], r3.Cross(b[1], b[2]))
}

// Inverse returns B⁻¹ such that B.Mul(B⁻¹) is the identity.
// tol is the |det| floor; pass SingularTolerance when unsure.
func (b Basis) Inverse(tol float64) (Basis, error) {
	if det := b.Det(); math.Abs(det) <= tol {
		return Basis{}, fmt.Errorf("%s: det=%g: %w", methodInverse, det, ErrSingular)
	}
	var inv mat.Dense
	if err := inv.Inverse(b.Dense()); err != nil {
		// gonum reports ill-conditioning as a mat.Condition error.
		return Basis{}, fmt.Errorf("%s: %v: %w", methodInverse, err, ErrSingular)
	}
	return FromDense(&inv), nil
}

// Apply maps coordinates c (a row vector in this basis) to Cartesian space:
// c.X·b[0] + c.Y·b[1] + c.Z·b[2].
func (b Basis) Apply(c r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(c.X, b[0]), r3.Scale(c.Y, b[1])), r3.Scale(c.Z, b[2]))
}

// Mul returns the matrix product b·o.
func (b Basis) Mul(o Basis) Basis {
	var out Basis
	for i := range b {
		out[i] = o.Apply(b[i])
	}
	return out
}

// MulVec returns b·v treating v as a column vector (component i is b[i]·v).
func (b Basis) MulVec(v r3.Vec) r3.Vec {
	return r3.Vec{X: r3.Dot(b[0], v), Y: r3.Dot(b[1], v), Z: r3.Dot(b[2], v)}
}

// Transpose swaps rows and columns.
func (b Basis) Transpose() Basis {
	return Basis{
		{X: b[0].X, Y: b[1].X, Z: b[2].X},
		{X: b[0].Y, Y: b[1].Y, Z: b[2].Y},
		{X: b[0].Z, Y: b[1].Z, Z: b[2].Z},
	}
}

// Scaled multiplies row i by s[i].
func (b Basis) Scaled(s [3]float64) Basis {
	var out Basis
	for i := range b {
		out[i] = r3.Scale(s[i], b[i])
	}
	return out
}

// Normalised returns the basis with every row scaled to unit length.
// Zero rows are left untouched.
func (b Basis) Normalised() Basis {
	var out Basis
	for i, v := range b {
		if r3.Norm(v) == 0 {
			out[i] = v
			continue
		}
		out[i] = r3.Unit(v)
	}
	return out
}

// Round rounds every component to the given number of decimals.
func (b Basis) Round(digits int) Basis {
	var out Basis
	for i, v := range b {
		out[i] = RoundVec(v, digits)
	}
	return out
}
