// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// config.go - resolved configuration with deterministic defaults.
//
// Defaults:
//   • rounding  = DefaultRounding (8)
//   • detTol    = DefaultDeterminantTolerance (1e-4)
//   • atomType  = DefaultAtomType (1)
//   • logger    = slog.Default()
//   • observer  = nopObserver

package lattice

import "log/slog"

type latticeConfig struct {
	rounding int
	detTol   float64
	atomType int
	logger   *slog.Logger
	observer Observer
}

func newLatticeConfig(opts ...Option) latticeConfig {
	cfg := latticeConfig{
		rounding: DefaultRounding,
		detTol:   DefaultDeterminantTolerance,
		atomType: DefaultAtomType,
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
