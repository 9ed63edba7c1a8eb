// SPDX-License-Identifier: MIT

// Package cell models crystal motifs.
//
// A UnitCell is an immutable list of fractional node positions inside the
// unit cube. A RealCell scales a UnitCell by per-axis lattice parameters and
// an optional (possibly non-orthogonal) cell basis, which gives the real-space
// cell vectors every lattice in lattix is built from.
//
// The catalogue (FCC, BCC, SimpleCubic) provides the common cubic motifs;
// callers may supply any other node list through NewUnitCell.
package cell
