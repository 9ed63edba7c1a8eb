// SPDX-License-Identifier: MIT

// Package lattice implements OrientedLattice, the constrained lattice-point
// generator at the heart of lattix.
//
// A Lattice is a cell.RealCell placed in Cartesian space by an orientation
// basis and an origin. Generate takes half-space constraints n·x ≤ d written
// in the lattice's local Cartesian frame (x measured from the origin) and
// fills the lattice with every motif point inside the region:
//
//  1. each constraint is mapped into cell coordinates through M = C·B
//     (C = real cell vectors, B = orientation) and normalised;
//  2. an integer bounding box is derived by intersecting every
//     non-degenerate triple of constraint planes and keeping the
//     intersections that satisfy every face (Bounds);
//  3. every cell origin in the box is combined with every motif node and
//     duplicates are dropped, keeping first-seen order;
//  4. candidates outside any face are rejected after rounding the signed
//     distance (closed faces keep boundary points, open faces drop them)
//     as they are enumerated;
//  5. surviving points are mapped back to Cartesian space and shifted by the
//     origin.
//
// Real and lattice points are stored as parallel slices and every removal
// helper deletes the same rows from both.
//
// Diagnostics: each generation records Stats (triples examined, triples
// skipped as near-parallel, infeasible intersections, vertices, candidates,
// accepted points), logs them
// through log/slog and forwards them to an optional Observer.
package lattice
