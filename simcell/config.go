// SPDX-License-Identifier: MIT
// Package: lattix/simcell
//
// config.go - resolved options with deterministic defaults.
//
// Defaults:
//   • origin     = 0,0,0
//   • boundaries = Periodic on every axis
//   • precision  = DefaultPrecision (5)
//   • header     = ""
//   • now        = time.Now
//   • logger     = slog.Default()
//   • observer   = nopObserver

package simcell

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

type cellConfig struct {
	origin     r3.Vec
	boundaries [3]Boundary
	precision  int
	header     string
	now        func() time.Time
	logger     *slog.Logger
	observer   Observer
}

func newCellConfig(opts ...Option) cellConfig {
	cfg := cellConfig{
		precision: DefaultPrecision,
		now:       time.Now,
		logger:    slog.Default(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Observer receives the counts of every Wrap: points before deduplication,
// atoms after, and the wall time spent.
type Observer interface {
	ObserveWrap(before, after int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveWrap(int, int, time.Duration) {}
