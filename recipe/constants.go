// SPDX-License-Identifier: MIT
// Package: lattix/recipe

package recipe

// Method names used as error prefixes.
const (
	methodParse    = "Parse"
	methodLoad     = "Load"
	methodValidate = "Validate"
	methodBuild    = "Build"
	methodRun      = "Run"
)

// Shape kinds accepted in a grain's shape.kind.
const (
	ShapeBox           = "box"
	ShapeParallelogram = "parallelogram"
	ShapePolygon       = "polygon"
)

// Boundary letters accepted in box.boundaries.
const (
	BoundaryPeriodic = "p"
	BoundaryFixed    = "f"
)

const (
	defaultStructure        = "fcc"
	defaultLatticeParameter = 4.05 // Å, aluminium
	defaultAtomType         = 1
)
