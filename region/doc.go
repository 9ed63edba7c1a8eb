// SPDX-License-Identifier: MIT

// Package region builds the half-space descriptions lattix fills with
// lattice points.
//
// Every shape is a Constructor returning a Region (faces plus optional keep
// predicates). Generate composes any number of constructors, intersects their
// faces, fills a lattice.Lattice and then applies the predicates:
//
//	err := region.Generate(l, nil,
//		region.RegularPolygon(10, 4, 6),
//		region.Implicit(func(p r3.Vec) bool { return p.Z < 2 }),
//	)
//
// Canonical shapes are extruded along the local z axis from z=0 to z=H:
//
//   - Box(L, W, H): [0,L]×[0,W]×[0,H].
//   - Parallelogram(l, w, H): the prism spanned by in-plane edges l and w.
//   - RegularPolygon(s, H, n): a regular n-gon of side s with its first edge
//     on the x axis starting at the origin.
//   - Implicit(pred): keeps points for which pred returns true. It carries no
//     faces and must be combined with a bounding constructor.
//
// The Extruded* helpers build a lattice and fill it with a single shape.
package region
