// SPDX-License-Identifier: MIT
// Package: lattix/csl

package csl

// Method names used as error prefixes.
const (
	methodCubicTable = "CubicTable"
	methodNewSolver  = "NewSolver"
	methodSolve      = "Solve"
)

// Deterministic defaults.
const (
	// DefaultTolerance is the distance below which two points coincide.
	DefaultTolerance = 1e-5

	// searchFactor scales Σ to the table ceiling searched by Solve.
	searchFactor = 2

	// sigmaCeilingFactor bounds m² + N·n² relative to the largest wanted Σ.
	// The odd part of a coprime cubic sum is at least an eighth of it.
	sigmaCeilingFactor = 8

	// angleDigits is the precision used to de-duplicate table angles.
	angleDigits = 10

	// basisDigits cleans float noise from returned basis vectors.
	basisDigits = 10

	// collinearTolerance bounds |û×v̂| for two directions to be collinear.
	collinearTolerance = 1e-6
)
