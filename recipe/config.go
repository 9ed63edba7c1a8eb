// SPDX-License-Identifier: MIT
// Package: lattix/recipe
//
// config.go - resolved build options with deterministic defaults.
//
// Defaults:
//   • logger  = slog.Default()
//   • workers = runtime.GOMAXPROCS(0)
//   • now     = time.Now
//   • newID   = uuid.New (random v4)
//   • no observers

package recipe

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lattix/csl"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/simcell"
)

type buildConfig struct {
	logger     *slog.Logger
	workers    int
	now        func() time.Time
	newID      func() uuid.UUID
	latticeObs []lattice.Option
	solverObs  []csl.Option
	cellObs    []simcell.Option
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		logger:  slog.Default(),
		workers: runtime.GOMAXPROCS(0),
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
