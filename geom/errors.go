// SPDX-License-Identifier: MIT
// Package: lattix/geom
//
// errors.go - sentinel errors for the geom package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site (method name first).

package geom

import "errors"

// ErrSingular indicates a basis whose determinant magnitude is below the
// requested tolerance, so it cannot be inverted.
var ErrSingular = errors.New("geom: singular basis")

// ErrZeroAxis indicates a direction vector of zero length where a rotation
// axis or a crystallographic direction was required.
var ErrZeroAxis = errors.New("geom: zero axis")
