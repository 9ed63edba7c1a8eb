// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// constraint.go - half-space constraints with an explicit face kind.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// FaceKind tells whether points lying exactly on a face belong to the region.
type FaceKind uint8

const (
	// Closed faces keep boundary points (the default).
	Closed FaceKind = iota
	// Open faces drop boundary points.
	Open
)

// String implements fmt.Stringer.
func (k FaceKind) String() string {
	if k == Open {
		return "open"
	}
	return "closed"
}

// Constraint is the half-space Normal·x ≤ Offset.
type Constraint struct {
	Normal r3.Vec
	Offset float64
	Face   FaceKind
}

// NewConstraint returns the closed half-space n·x ≤ d.
func NewConstraint(n r3.Vec, d float64) Constraint {
	return Constraint{Normal: n, Offset: d}
}

// Opened returns a copy of c with an open face.
func (c Constraint) Opened() Constraint {
	c.Face = Open
	return c
}

// Eval returns n·p − d; non-positive values are inside.
func (c Constraint) Eval(p r3.Vec) float64 {
	return r3.Dot(c.Normal, p) - c.Offset
}

// Distance returns the signed distance from p to the face plane.
func (c Constraint) Distance(p r3.Vec) float64 {
	return geom.PlaneDistance(p, c.Normal, c.Offset)
}

// Normalised scales the constraint so that |Normal| = 1.
func (c Constraint) Normalised() Constraint {
	n := r3.Norm(c.Normal)
	return Constraint{Normal: r3.Scale(1/n, c.Normal), Offset: c.Offset / n, Face: c.Face}
}

// Rejects reports whether a point whose value (n·p − d) was rounded to
// digits decimals lies outside the face.
func (c Constraint) Rejects(value float64, digits int) bool {
	v := geom.Round(value, digits)
	if c.Face == Open {
		return v >= 0
	}
	return v > 0
}

func (c Constraint) validate() error {
	n := c.Normal
	if !finite(n.X) || !finite(n.Y) || !finite(n.Z) || !finite(c.Offset) {
		return fmt.Errorf("non-finite constraint %+v: %w", c, ErrInvalidConstraint)
	}
	if r3.Norm(n) == 0 {
		return fmt.Errorf("zero normal: %w", ErrInvalidConstraint)
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
