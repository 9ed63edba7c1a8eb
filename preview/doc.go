// SPDX-License-Identifier: MIT

// Package preview renders a simulation cell as a 2-D scatter plot, one
// colour per atom type, projected onto a coordinate plane. It is meant for a
// quick visual check of grain shapes and boundaries before a run.
package preview
