// SPDX-License-Identifier: MIT
// Package: lattix/csl
//
// errors.go - sentinel errors for the csl package.
//
// ErrSigmaNotFound is recoverable: the caller may retry with another Σ or
// axis. Every other sentinel signals malformed input or a degenerate result.

package csl

import "errors"

// ErrSigmaNotFound indicates that no rotation about the axis produces the
// requested Σ.
var ErrSigmaNotFound = errors.New("csl: sigma not found for axis")

// ErrBadSigma indicates a Σ below 1.
var ErrBadSigma = errors.New("csl: sigma must be positive")

// ErrBadAxis indicates a zero rotation axis.
var ErrBadAxis = errors.New("csl: invalid axis")

// ErrDegenerateBasis indicates the coincidence set did not contain two
// non-collinear in-plane vectors.
var ErrDegenerateBasis = errors.New("csl: degenerate coincidence basis")
