// SPDX-License-Identifier: MIT

// Package geom holds the stateless geometry helpers shared by every lattix
// package: 3×3 row bases, rotations about arbitrary axes, decimal rounding,
// plane tests and orientation quaternions.
//
// Conventions:
//   - A Basis stores vectors as ROWS. A point expressed in that basis is a row
//     vector, so Cartesian = coords·B (see Basis.Apply).
//   - Angles are radians; positive angles rotate counter-clockwise when looking
//     down the rotation axis towards the origin (right-hand rule).
//   - Nothing here keeps state; tolerances are explicit parameters.
//
// Vector arithmetic is delegated to gonum.org/v1/gonum/spatial/r3, dense
// algebra (determinants, inverses) to gonum.org/v1/gonum/mat.
package geom
