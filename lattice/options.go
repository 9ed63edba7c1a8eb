// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// options.go - functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input; New and
//     every Lattice method return errors instead.
//   • Options apply in order, later ones override earlier ones.

package lattice

import "log/slog"

// Option customises a Lattice before any point is generated.
type Option func(*latticeConfig)

// WithRounding sets the decimals used for the boundary test (default 8).
// Panics if digits < 0.
func WithRounding(digits int) Option {
	if digits < 0 {
		panic("lattice: WithRounding(digits<0)")
	}
	return func(c *latticeConfig) { c.rounding = digits }
}

// WithDeterminantTolerance sets the |det| floor for usable constraint
// triples (default 1e-4). Panics if tol <= 0.
func WithDeterminantTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("lattice: WithDeterminantTolerance(tol<=0)")
	}
	return func(c *latticeConfig) { c.detTol = tol }
}

// WithAtomType tags every point of the lattice (default 1). Panics if t < 1.
func WithAtomType(t int) Option {
	if t < 1 {
		panic("lattice: WithAtomType(t<1)")
	}
	return func(c *latticeConfig) { c.atomType = t }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lattice: WithLogger(nil)")
	}
	return func(c *latticeConfig) { c.logger = l }
}

// WithObserver forwards generation statistics to o. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("lattice: WithObserver(nil)")
	}
	return func(c *latticeConfig) { c.observer = o }
}
