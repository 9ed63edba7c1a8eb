// SPDX-License-Identifier: MIT
// Package: lattix/region
//
// config.go - resolved options with deterministic defaults.
//
// Defaults:
//   • openFaces = none (every face closed)
//   • logger    = slog.Default()

package region

import "log/slog"

// regionConfig is passed by value to constructors.
type regionConfig struct {
	openFaces []int
	logger    *slog.Logger
}

func newRegionConfig(opts ...Option) regionConfig {
	cfg := regionConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
