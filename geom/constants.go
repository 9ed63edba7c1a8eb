// SPDX-License-Identifier: MIT
// Package: lattix/geom

package geom

// Method names used as error prefixes.
const (
	methodInverse    = "Inverse"
	methodReduceAxis = "ReduceAxis"
	methodAligned    = "AlignedBasis"
)

// Tolerances shared by the helpers in this package.
const (
	// SingularTolerance is the default |det| floor below which a basis is
	// treated as singular.
	SingularTolerance = 1e-12

	// parallelTolerance bounds |a×b| for two unit vectors to be considered
	// parallel in RotationBetween.
	parallelTolerance = 1e-12
)
