// SPDX-License-Identifier: MIT
// Package: lattix/csl
//
// config.go - resolved solver configuration.
//
// Defaults:
//   • motif    = cell.SimpleCubic()
//   • tol      = DefaultTolerance (1e-5)
//   • workers  = runtime.GOMAXPROCS(0)
//   • logger   = slog.Default()
//   • observer = nopObserver

package csl

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/lattix/cell"
)

type solverConfig struct {
	motif    *cell.UnitCell
	tol      float64
	workers  int
	logger   *slog.Logger
	observer Observer
}

func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		motif:    cell.SimpleCubic(),
		tol:      DefaultTolerance,
		workers:  runtime.GOMAXPROCS(0),
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Observer receives the outcome of every Solve. err is nil on success and
// wraps ErrSigmaNotFound for a missing table row.
type Observer interface {
	ObserveSolve(axis [3]int, sigma int, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveSolve([3]int, int, time.Duration, error) {}
