// SPDX-License-Identifier: MIT
// Package: lattix/simcell
//
// options.go - functional options for New.
//
// Option constructors validate and PANIC on meaningless input; New and the
// Cell methods return errors.

package simcell

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Option customises a Cell.
type Option func(*cellConfig)

// WithOrigin sets the lower corner of the box (default 0,0,0).
func WithOrigin(o r3.Vec) Option {
	return func(c *cellConfig) { c.origin = o }
}

// WithBoundaries sets the per-axis boundary kinds (default all Periodic).
func WithBoundaries(x, y, z Boundary) Option {
	for _, b := range []Boundary{x, y, z} {
		if b != Periodic && b != Fixed {
			panic("simcell: WithBoundaries(unknown boundary)")
		}
	}
	return func(c *cellConfig) { c.boundaries = [3]Boundary{x, y, z} }
}

// WithPrecision sets the decimals Wrap rounds positions to (default 5).
// Panics if digits < 0.
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic("simcell: WithPrecision(digits<0)")
	}
	return func(c *cellConfig) { c.precision = digits }
}

// WithHeader sets the free text written after the timestamp on the first
// line of the data file.
func WithHeader(h string) Option {
	return func(c *cellConfig) { c.header = h }
}

// WithClock replaces time.Now for the data file timestamp. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("simcell: WithClock(nil)")
	}
	return func(c *cellConfig) { c.now = now }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simcell: WithLogger(nil)")
	}
	return func(c *cellConfig) { c.logger = l }
}

// WithObserver reports every Wrap to o. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("simcell: WithObserver(nil)")
	}
	return func(c *cellConfig) { c.observer = o }
}
