// SPDX-License-Identifier: MIT
// Package: lattix/cell
//
// unit.go - UnitCell: an immutable motif of fractional nodes.
//
// Contract:
//   • Every node coordinate lies in the closed interval [0,1].
//   • Node order is preserved exactly as supplied; lattice generation
//     replicates nodes in this order.
//   • Accessors return copies so the motif cannot be mutated after
//     construction.

package cell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// UnitCell is a crystal motif in fractional coordinates.
type UnitCell struct {
	nodes []r3.Vec
}

// NewUnitCell validates and copies nodes into a new UnitCell.
func NewUnitCell(nodes []r3.Vec) (*UnitCell, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewUnitCell, ErrEmptyMotif)
	}
	for i, n := range nodes {
		if !inClosedUnit(n) {
			return nil, fmt.Errorf("%s: node %d %v: %w", methodNewUnitCell, i, n, ErrNodeOutOfRange)
		}
	}
	cp := make([]r3.Vec, len(nodes))
	copy(cp, nodes)
	return &UnitCell{nodes: cp}, nil
}

// Nodes returns a copy of the motif.
func (u *UnitCell) Nodes() []r3.Vec {
	cp := make([]r3.Vec, len(u.nodes))
	copy(cp, u.nodes)
	return cp
}

// Node returns motif node i.
func (u *UnitCell) Node(i int) r3.Vec { return u.nodes[i] }

// Len returns the number of motif nodes.
func (u *UnitCell) Len() int { return len(u.nodes) }

// Dimension is always 3.
func (u *UnitCell) Dimension() int { return dimension }

// Centre returns the centre of the unit cube.
func (u *UnitCell) Centre() r3.Vec { return r3.Vec{X: 0.5, Y: 0.5, Z: 0.5} }

// SnapToNode returns the motif node nearest to p. p must lie in [0,1) on
// every axis; ties resolve to the earliest node.
func (u *UnitCell) SnapToNode(p r3.Vec) (r3.Vec, error) {
	if minComponent(p) < 0 || maxComponent(p) >= 1 {
		return r3.Vec{}, fmt.Errorf("%s: %v: %w", methodSnapToNode, p, ErrNodeOutOfRange)
	}
	best, bestDist := 0, math.Inf(1)
	for i, n := range u.nodes {
		if d := r3.Norm(r3.Sub(p, n)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return u.nodes[best], nil
}

// DirectionalMotif returns the nodes lying on the sign side of the cell
// centre along axis (0=x, 1=y, 2=z), nodes on the centre plane included.
// sign < 0 selects the negative half; any other value the positive half.
func (u *UnitCell) DirectionalMotif(axis, sign int) ([]r3.Vec, error) {
	if axis < 0 || axis >= dimension {
		return nil, fmt.Errorf("%s: axis=%d: %w", methodDirectionalMotif, axis, ErrBadAxis)
	}
	s := 1.0
	if sign < 0 {
		s = -1
	}
	c := u.Centre()
	var out []r3.Vec
	for _, n := range u.nodes {
		if s*component(r3.Sub(n, c), axis) >= 0 {
			out = append(out, n)
		}
	}
	return out, nil
}

func inClosedUnit(v r3.Vec) bool {
	return minComponent(v) >= 0 && maxComponent(v) <= 1
}

func minComponent(v r3.Vec) float64 { return math.Min(v.X, math.Min(v.Y, v.Z)) }

func maxComponent(v r3.Vec) float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
