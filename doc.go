// Package lattix builds crystal-lattice atom configurations for molecular
// dynamics studies of grain boundaries.
//
// 🚀 What is lattix?
//
//	A small, deterministic toolkit that takes a crystal motif, an orientation
//	and a geometric region, enumerates every lattice point inside it, and
//	assembles several such grains into one periodic simulation cell:
//		• Motifs: unit and real cells, FCC / BCC / simple cubic catalogue
//		• Oriented lattices: exact half-space point generation with open faces
//		• Regions: boxes, parallelogram and regular polygon prisms, predicates
//		• CSL: coincidence-site lattice tables and numerical basis solver
//		• Simulation cells: triclinic wrapping, deduplication, LAMMPS data files
//		• Recipes: whole builds described in YAML and executed in parallel
//
// ✨ Why lattix?
//
//   - Deterministic – the same inputs always give the same atoms, in order
//   - Explicit errors – sentinels per package, no panics in algorithms
//   - Observable – slog diagnostics and Prometheus metrics at every stage
//
// Everything is organised in subpackages:
//
//	geom/    — bases, rotations, rounding and orientation quaternions
//	cell/    — UnitCell, RealCell and the motif catalogue
//	lattice/ — oriented lattice and the constrained point generator
//	region/  — region constructors composed into lattice faces
//	csl/     — CSL tables and solver
//	simcell/ — simulation cell, wrapping and LAMMPS output
//	recipe/  — YAML build recipes
//	metrics/ — Prometheus collector
//	preview/ — PNG scatter previews
//
// Quick example, a Σ5 [001] bicrystal:
//
//	r, _ := recipe.Load("sigma5.yaml")
//	res, err := recipe.Run(ctx, r)
//
//	go get github.com/katalvlaran/lattix
package lattix
