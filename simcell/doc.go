// SPDX-License-Identifier: MIT

// Package simcell assembles grains into a periodic simulation cell and
// writes it as a LAMMPS data file.
//
// A Cell is a (possibly triclinic) parallelepiped given by three box rows.
// Grains are lattice.Lattice values added under unique names; the cell only
// reads their points. Wrap maps every grain point into the cell modulo the
// box vectors on periodic axes, rounds to a fixed precision and keeps one
// atom per distinct position. When overlapping grains disagree on the atom
// type, the grain added first wins.
//
// Before Wrap the cell reports and writes the raw per-grain points; after
// Wrap it reports and writes the deduplicated atoms. Adding a grain discards
// the wrapped state.
//
//	c, _ := simcell.New(geom.BasisFromRows([3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 4}}))
//	_ = c.AddGrain("left", left)
//	_ = c.AddGrain("right", right)
//	c.Wrap()
//	err := c.WriteDataFile("bicrystal.data")
package simcell
