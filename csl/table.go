// SPDX-License-Identifier: MIT
// Package: lattix/csl
//
// table.go - closed-form CSL table for cubic lattices.
//
// Contract:
//   • Rows have 1 < Σ ≤ maxSigma, Σ odd.
//   • Angles are in (0, π), radians, de-duplicated per Σ.
//   • Rows are sorted by Σ, then by angle.
//
// Complexity: O(maxSigma) candidate pairs (m ≤ √(8·maxSigma), n ≤ √(8·maxSigma/N)).

package csl

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lattix/geom"
)

// Row is one (Σ, rotation angle) entry of a CSL table.
type Row struct {
	Sigma int
	Angle float64 // radians
}

// Degrees returns the angle in degrees.
func (r Row) Degrees() float64 { return r.Angle * 180 / math.Pi }

// CubicTable lists every (Σ, angle) pair with Σ ≤ maxSigma for rotations
// about axis in a cubic lattice. The zero axis is ErrBadAxis.
// Complexity: O(S log S) for S = maxSigma.
func CubicTable(axis [3]int, maxSigma int) ([]Row, error) {
	ax, err := geom.ReduceAxis(axis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodCubicTable, ErrBadAxis, err)
	}
	n2 := ax[0]*ax[0] + ax[1]*ax[1] + ax[2]*ax[2]
	rootN := math.Sqrt(float64(n2))
	ceiling := sigmaCeilingFactor * maxSigma

	type key struct {
		sigma int
		angle float64
	}
	seen := make(map[key]struct{})
	var rows []Row
	for m := 1; m*m <= ceiling; m++ {
		for n := 1; m*m+n2*n*n <= ceiling; n++ {
			if geom.GCD(m, n) != 1 {
				continue
			}
			sigma := oddPart(m*m + n2*n*n)
			if sigma <= 1 || sigma > maxSigma {
				continue
			}
			angle := 2 * math.Atan(float64(n)*rootN/float64(m))
			k := key{sigma, geom.Round(angle, angleDigits)}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, Row{Sigma: sigma, Angle: angle})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sigma != rows[j].Sigma {
			return rows[i].Sigma < rows[j].Sigma
		}
		return rows[i].Angle < rows[j].Angle
	})
	return rows, nil
}

func oddPart(v int) int {
	for v > 0 && v%2 == 0 {
		v /= 2
	}
	return v
}
