// SPDX-License-Identifier: MIT
// Package: lattix/region

package region

// Method names used as error prefixes.
const (
	methodGenerate       = "Generate"
	methodBox            = "Box"
	methodParallelogram  = "Parallelogram"
	methodRegularPolygon = "RegularPolygon"
	methodImplicit       = "Implicit"
	methodHalfSpaces     = "HalfSpaces"
)

// minPolygonSides is the smallest admissible regular polygon.
const minPolygonSides = 3

// parallelTolerance bounds |l×w| below which two edges are parallel.
const parallelTolerance = 1e-12

// Face indices of Box, in the order the faces are emitted.
const (
	FaceXHigh = iota
	FaceXLow
	FaceYHigh
	FaceYLow
	FaceZHigh
	FaceZLow
)
