// SPDX-License-Identifier: MIT
// Package: lattix/recipe
//
// options.go - functional options for Build and Run.
//
// Option constructors validate and PANIC on meaningless input.

package recipe

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lattix/csl"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/simcell"
)

// Option customises a build.
type Option func(*buildConfig)

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("recipe: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}

// WithWorkers bounds the number of grains generated at once
// (default GOMAXPROCS). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("recipe: WithWorkers(n<1)")
	}
	return func(c *buildConfig) { c.workers = n }
}

// WithLatticeObserver is attached to every grain lattice. Panics on nil.
func WithLatticeObserver(o lattice.Observer) Option {
	if o == nil {
		panic("recipe: WithLatticeObserver(nil)")
	}
	return func(c *buildConfig) { c.latticeObs = append(c.latticeObs, lattice.WithObserver(o)) }
}

// WithSolverObserver is attached to the CSL solver. Panics on nil.
func WithSolverObserver(o csl.Observer) Option {
	if o == nil {
		panic("recipe: WithSolverObserver(nil)")
	}
	return func(c *buildConfig) { c.solverObs = append(c.solverObs, csl.WithObserver(o)) }
}

// WithCellObserver is attached to the simulation cell. Panics on nil.
func WithCellObserver(o simcell.Observer) Option {
	if o == nil {
		panic("recipe: WithCellObserver(nil)")
	}
	return func(c *buildConfig) { c.cellObs = append(c.cellObs, simcell.WithObserver(o)) }
}

// WithClock sets the clock used for the data file timestamp and build
// timing. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("recipe: WithClock(nil)")
	}
	return func(c *buildConfig) { c.now = now }
}

// WithBuildID fixes the build ID instead of drawing a random one.
func WithBuildID(id uuid.UUID) Option {
	return func(c *buildConfig) { c.newID = func() uuid.UUID { return id } }
}
