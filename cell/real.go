// SPDX-License-Identifier: MIT
// Package: lattix/cell
//
// real.go - RealCell: a UnitCell with lattice parameters and a cell basis.
//
// Contract:
//   • latticeParameters[i] > 0 for every axis.
//   • The cell basis (default identity) must have |det| above
//     geom.SingularTolerance.
//   • realCellVectors[i] = latticeParameters[i] · cellBasis[i].
//   • NearestNeighbourDistance is the smallest positive pairwise distance
//     between the real cell vectors (a coarse length scale, not the true
//     atomic nearest-neighbour distance of the motif).

package cell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// RealCell is a motif placed in real space.
type RealCell struct {
	*UnitCell

	params      [3]float64
	cellBasis   geom.Basis
	realVectors geom.Basis
	nearest     float64
}

// Option customises a RealCell.
type Option func(*realConfig)

type realConfig struct {
	cellBasis geom.Basis
}

// WithCellBasis sets a non-orthogonal cell basis (rows are cell vectors of
// unit scale). Singularity is checked by NewRealCell.
func WithCellBasis(b geom.Basis) Option {
	return func(c *realConfig) { c.cellBasis = b }
}

// NewRealCell scales uc by params and the configured cell basis.
func NewRealCell(uc *UnitCell, params [3]float64, opts ...Option) (*RealCell, error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: nil unit cell: %w", methodNewRealCell, ErrEmptyMotif)
	}
	for i, p := range params {
		if !(p > 0) {
			return nil, fmt.Errorf("%s: axis %d a=%g: %w", methodNewRealCell, i, p, ErrBadLatticeParameter)
		}
	}
	cfg := realConfig{cellBasis: geom.Identity()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.Abs(cfg.cellBasis.Det()) <= geom.SingularTolerance {
		return nil, fmt.Errorf("%s: %w", methodNewRealCell, ErrDegenerateCell)
	}

	rc := &RealCell{
		UnitCell:    uc,
		params:      params,
		cellBasis:   cfg.cellBasis,
		realVectors: cfg.cellBasis.Scaled(params),
	}
	rc.nearest = nearestPositive(rc.realVectors)
	return rc, nil
}

// LatticeParameters returns the per-axis scale.
func (rc *RealCell) LatticeParameters() [3]float64 { return rc.params }

// CellVectors returns the unit-scale cell basis.
func (rc *RealCell) CellVectors() geom.Basis { return rc.cellBasis }

// RealCellVectors returns the cell basis scaled by the lattice parameters.
func (rc *RealCell) RealCellVectors() geom.Basis { return rc.realVectors }

// NearestNeighbourDistance returns the smallest positive distance between
// two real cell vectors.
func (rc *RealCell) NearestNeighbourDistance() float64 { return rc.nearest }

func nearestPositive(b geom.Basis) float64 {
	var d []float64
	for i := range b {
		for j := i + 1; j < len(b); j++ {
			if v := r3.Norm(r3.Sub(b[i], b[j])); v > 0 {
				d = append(d, v)
			}
		}
	}
	if len(d) == 0 {
		return 0
	}
	return floats.Min(d)
}
