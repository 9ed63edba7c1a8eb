// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// lattice.go - the Lattice type, its constructor and read accessors.
//
// Ownership: a Lattice owns its point slices exclusively. Accessors return
// copies; callers never alias internal state. A Lattice is not safe for
// concurrent mutation, but distinct lattices share nothing and may be built
// in parallel.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/cell"
	"github.com/katalvlaran/lattix/geom"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lattice is an oriented, origin-shifted RealCell and the points generated
// inside its current region.
type Lattice struct {
	*cell.RealCell

	orientation geom.Basis
	origin      r3.Vec
	transform   geom.Basis // M = C·B: cell coordinates → local Cartesian
	cfg         latticeConfig

	constraints        []Constraint // Cartesian, as supplied
	latticeConstraints []Constraint // cell coordinates, unit normals

	latticePoints []r3.Vec
	realPoints    []r3.Vec

	stats Stats
}

// New places rc in space. Rows of orientation are the Cartesian directions
// of the cell axes; origin shifts every generated point. The lattice starts
// empty until Generate runs. A nil cell is ErrNilCell; a singular C·B is
// ErrSingularBasis.
// Complexity: O(1).
func New(rc *cell.RealCell, orientation geom.Basis, origin r3.Vec, opts ...Option) (*Lattice, error) {
	if rc == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilCell)
	}
	m := rc.RealCellVectors().Mul(orientation)
	if math.Abs(m.Det()) <= geom.SingularTolerance {
		return nil, fmt.Errorf("%s: det(C·B)=%g: %w", methodNew, m.Det(), ErrSingularBasis)
	}
	return &Lattice{
		RealCell:    rc,
		orientation: orientation,
		origin:      origin,
		transform:   m,
		cfg:         newLatticeConfig(opts...),
	}, nil
}

// Orientation returns the orientation basis.
func (l *Lattice) Orientation() geom.Basis { return l.orientation }

// Origin returns the translation applied to generated points.
func (l *Lattice) Origin() r3.Vec { return l.origin }

// RealBasisVectors returns latticeParameter[i]·orientation[i].
func (l *Lattice) RealBasisVectors() geom.Basis {
	return l.orientation.Scaled(l.LatticeParameters())
}

// Transform returns M = C·B, mapping cell coordinates to local Cartesian
// coordinates (before the origin shift).
func (l *Lattice) Transform() geom.Basis { return l.transform }

// Rounding returns the boundary-test precision.
func (l *Lattice) Rounding() int { return l.cfg.rounding }

// AtomType returns the atom type tag shared by every point.
func (l *Lattice) AtomType() int { return l.cfg.atomType }

// Len returns the number of points currently held.
func (l *Lattice) Len() int { return len(l.realPoints) }

// RealPoints returns a copy of the Cartesian points.
// Complexity: O(N).
func (l *Lattice) RealPoints() []r3.Vec { return clonePoints(l.realPoints) }

// LatticePoints returns a copy of the cell-coordinate points, row-aligned
// with RealPoints.
// Complexity: O(N).
func (l *Lattice) LatticePoints() []r3.Vec { return clonePoints(l.latticePoints) }

// Constraints returns a copy of the active Cartesian constraints.
func (l *Lattice) Constraints() []Constraint {
	return append([]Constraint(nil), l.constraints...)
}

// LatticeConstraints returns a copy of the constraints in cell coordinates.
func (l *Lattice) LatticeConstraints() []Constraint {
	return append([]Constraint(nil), l.latticeConstraints...)
}

// Stats returns the statistics of the last successful Generate.
func (l *Lattice) Stats() Stats { return l.stats }

// Quaternion returns the orientation as a unit quaternion reduced by cubic
// symmetry.
// Complexity: O(1) (24 symmetry operators).
func (l *Lattice) Quaternion() quat.Number {
	return geom.CubicEquivalent(geom.QuaternionFromBasis(l.orientation.Normalised()))
}

func clonePoints(p []r3.Vec) []r3.Vec {
	if p == nil {
		return nil
	}
	return append(make([]r3.Vec, 0, len(p)), p...)
}
