// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus metrics for lattix builds.
//
// A Collector satisfies lattice.Observer, csl.Observer and simcell.Observer,
// so one value can be attached to every stage of a build:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	res, err := recipe.Build(ctx, r,
//		recipe.WithLatticeObserver(m),
//		recipe.WithSolverObserver(m),
//		recipe.WithCellObserver(m),
//	)
//
// All metrics live under the "lattix" namespace. Collector methods are safe
// for concurrent use.
package metrics
