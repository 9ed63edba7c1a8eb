// SPDX-License-Identifier: MIT

// Package csl finds coincidence-site lattices (CSL) of cubic crystals.
//
// Two copies of a lattice rotated about a common axis [hkl] share a
// sub-lattice of coincident points whenever the rotation angle belongs to
// the CSL table of that axis. Sigma (Σ) is the inverse density of the shared
// points.
//
// CubicTable enumerates the (Σ, angle) pairs for an axis from the classical
// number-theoretic generator: for coprime m, n ≥ 1 with N = h²+k²+l²,
//
//	Σ = odd part of m² + N·n²,  θ = 2·atan(n·√N / m).
//
// Solver.Solve picks the smallest angle with the requested Σ, builds an
// unrotated and a rotated trial lattice, intersects them numerically and
// returns the primitive in-plane CSL basis plus the repeat along the axis.
// A Σ without a table row is reported as ErrSigmaNotFound, the one expected
// negative outcome.
package csl
