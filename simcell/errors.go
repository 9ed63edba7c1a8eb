// SPDX-License-Identifier: MIT
// Package: lattix/simcell
//
// errors.go - sentinel errors for the simcell package.
//
// Error policy:
//   • Only sentinels are exposed; branch with errors.Is.
//   • Methods wrap sentinels once with their method name.

package simcell

import "errors"

// ErrSingularBox indicates box rows whose wrap basis cannot be inverted.
var ErrSingularBox = errors.New("simcell: singular simulation box")

// ErrDuplicateGrain indicates AddGrain with a name already in use.
var ErrDuplicateGrain = errors.New("simcell: duplicate grain name")

// ErrUnknownGrain indicates a lookup of a name that was never added.
var ErrUnknownGrain = errors.New("simcell: unknown grain")

// ErrNilGrain indicates AddGrain(name, nil).
var ErrNilGrain = errors.New("simcell: nil grain")

// ErrNotWrapped indicates a query that needs Wrap to have run first.
var ErrNotWrapped = errors.New("simcell: points are not wrapped")

// ErrEmpty indicates a cell without any grain point.
var ErrEmpty = errors.New("simcell: no points")

// ErrBadPlane indicates a plane with a zero or non-finite normal, or a
// non-positive tolerance.
var ErrBadPlane = errors.New("simcell: malformed plane")
