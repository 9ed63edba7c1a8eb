// SPDX-License-Identifier: MIT
// Package: lattix/cell
//
// errors.go - sentinel errors for the cell package.
//
// Callers MUST use errors.Is; messages carry context through %w wrapping.

package cell

import "errors"

// ErrEmptyMotif indicates a unit cell without nodes.
var ErrEmptyMotif = errors.New("cell: empty motif")

// ErrNodeOutOfRange indicates a fractional coordinate outside the allowed
// range ([0,1] for motif nodes, [0,1) for SnapToNode queries).
var ErrNodeOutOfRange = errors.New("cell: coordinate out of range")

// ErrBadLatticeParameter indicates a non-positive lattice parameter.
var ErrBadLatticeParameter = errors.New("cell: lattice parameter must be positive")

// ErrDegenerateCell indicates linearly dependent cell basis rows.
var ErrDegenerateCell = errors.New("cell: degenerate cell basis")

// ErrBadAxis indicates an axis index outside 0..2.
var ErrBadAxis = errors.New("cell: axis index out of range")

// ErrUnknownStructure indicates a catalogue lookup miss.
var ErrUnknownStructure = errors.New("cell: unknown crystal structure")
