// SPDX-License-Identifier: MIT

// Package recipe describes a complete simulation cell build in YAML and
// executes it.
//
// A Recipe names a crystal structure and lattice parameter, a simulation box,
// an optional CSL misorientation and a list of grains, each a region shape
// filled with an oriented lattice:
//
//	name: sigma5-bicrystal
//	structure: fcc
//	lattice_parameter: 4.05
//	csl: {axis: [0, 0, 1], sigma: 5}
//	box: {csl_multiples: [4, 4, 4]}
//	grains:
//	  - name: lower
//	    csl_grain: 0
//	    shape: {kind: box, length: 36.2, width: 18.1, height: 16.2}
//	  - name: upper
//	    csl_grain: 1
//	    atom_type: 2
//	    origin: [0, 18.1, 0]
//	    shape: {kind: box, length: 36.2, width: 18.1, height: 16.2}
//
// Parse and Load decode strictly (unknown keys are errors) on top of
// DefaultRecipe and validate the result. Build generates the grains in
// parallel, assembles and wraps the simulation cell and tags the run with a
// random build ID that appears in every log record and in the data file
// header.
package recipe
