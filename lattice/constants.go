// SPDX-License-Identifier: MIT
// Package: lattix/lattice

package lattice

// Method names used as error prefixes.
const (
	methodNew       = "New"
	methodGenerate  = "Generate"
	methodBounds    = "Bounds"
	methodOpenFaces = "OpenFaces"

	methodConstrainRealPoints = "ConstrainRealPoints"
	methodRemovePlane         = "RemovePlane"
)

// Deterministic defaults.
const (
	// DefaultRounding is the number of decimals a signed face distance is
	// rounded to before the inside/outside test.
	DefaultRounding = 8

	// DefaultDeterminantTolerance is the |det| floor below which a triple of
	// constraint normals is treated as near-parallel and skipped.
	DefaultDeterminantTolerance = 1e-4

	// DefaultAtomType is the atom type tag of a new lattice.
	DefaultAtomType = 1

	// OpenFaceRounding is the precision used by OpenFaces to decide which
	// existing points sit on a newly opened face.
	OpenFaceRounding = 5

	// pointRounding normalises float noise in lattice and real coordinates.
	pointRounding = 10

	// vertexRounding is the precision of the feasibility test applied to
	// triple intersections. It is looser than DefaultRounding so solve noise
	// never drops a true vertex.
	vertexRounding = 6

	// minConstraints is the smallest constraint count that can bound space.
	minConstraints = 3

	// recessionTolerance is the slack allowed when testing whether a
	// direction escapes every face.
	recessionTolerance = 1e-9
)
