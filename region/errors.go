// SPDX-License-Identifier: MIT
// Package: lattix/region
//
// errors.go - sentinel errors for the region package.
//
// Error policy:
//   • Only sentinels are exposed; branch with errors.Is.
//   • Constructors validate parameters first and never panic.
//   • Generate wraps every failure once with "Generate: %w".

package region

import "errors"

// ErrBadDimension indicates a negative, zero or non-finite length where a
// positive extent was required, or degenerate edge vectors.
var ErrBadDimension = errors.New("region: invalid dimension")

// ErrTooFewSides indicates a regular polygon with fewer than three sides.
var ErrTooFewSides = errors.New("region: polygon needs at least three sides")

// ErrNilPredicate indicates Implicit(nil).
var ErrNilPredicate = errors.New("region: nil predicate")

// ErrUnbounded indicates a composition without any face, so nothing bounds
// the lattice.
var ErrUnbounded = errors.New("region: no bounding faces")

// ErrFaceIndex indicates a WithOpenFaces index beyond the composed faces.
var ErrFaceIndex = errors.New("region: face index out of range")

// ErrConstructFailed indicates a nil constructor or nil lattice.
var ErrConstructFailed = errors.New("region: construction failed")
