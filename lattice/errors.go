// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// errors.go - sentinel errors for the lattice package.
//
// Error policy:
//   • Only sentinels are exposed; branch with errors.Is.
//   • Generation fails fast: on error the lattice keeps its previous points.
//   • Option constructors panic on meaningless values; methods never panic.

package lattice

import "errors"

// ErrInvalidRegion indicates a constraint set from which no finite bounding
// box can be derived: fewer than three constraints, normals that do not span
// space, an unbounded intersection, or no non-degenerate plane triple.
var ErrInvalidRegion = errors.New("lattice: invalid region")

// ErrInvalidConstraint indicates a constraint with a zero or non-finite
// normal, or a non-finite offset.
var ErrInvalidConstraint = errors.New("lattice: invalid constraint")

// ErrSingularBasis indicates an orientation that, combined with the cell
// vectors, does not span three dimensions.
var ErrSingularBasis = errors.New("lattice: singular basis")

// ErrConstraintIndex indicates a face index outside the active constraint list.
var ErrConstraintIndex = errors.New("lattice: constraint index out of range")

// ErrNilCell indicates New was called without a RealCell.
var ErrNilCell = errors.New("lattice: nil real cell")
