// SPDX-License-Identifier: MIT
// Package: lattix/csl
//
// options.go - functional options for NewSolver.
//
// Option constructors validate and PANIC on meaningless input.

package csl

import (
	"log/slog"

	"github.com/katalvlaran/lattix/cell"
)

// Option customises a Solver.
type Option func(*solverConfig)

// WithMotif sets the motif of the trial lattices (default simple cubic).
// Panics on nil.
func WithMotif(uc *cell.UnitCell) Option {
	if uc == nil {
		panic("csl: WithMotif(nil)")
	}
	return func(c *solverConfig) { c.motif = uc }
}

// WithTolerance sets the coincidence distance (default 1e-5). Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("csl: WithTolerance(tol<=0)")
	}
	return func(c *solverConfig) { c.tol = tol }
}

// WithWorkers bounds the goroutines used by the coincidence scan
// (default runtime.GOMAXPROCS(0)). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("csl: WithWorkers(n<1)")
	}
	return func(c *solverConfig) { c.workers = n }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("csl: WithLogger(nil)")
	}
	return func(c *solverConfig) { c.logger = l }
}

// WithObserver receives one notification per Solve. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("csl: WithObserver(nil)")
	}
	return func(c *solverConfig) { c.observer = o }
}
