// SPDX-License-Identifier: MIT
// Package: lattix/region
//
// options.go - functional options for Generate.
//
// Option constructors validate and PANIC on meaningless input; Generate and
// the constructors themselves return errors.

package region

import "log/slog"

// Option customises how Generate composes constructors.
type Option func(*regionConfig)

// WithOpenFaces marks faces of the composed region as open (points lying on
// them are excluded). Indices count faces across all constructors in call
// order. Panics on a negative index.
func WithOpenFaces(idx ...int) Option {
	for _, i := range idx {
		if i < 0 {
			panic("region: WithOpenFaces(negative index)")
		}
	}
	cp := append([]int(nil), idx...)
	return func(c *regionConfig) { c.openFaces = append(c.openFaces, cp...) }
}

// WithLogger routes composition diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("region: WithLogger(nil)")
	}
	return func(c *regionConfig) { c.logger = l }
}
