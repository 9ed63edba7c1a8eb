// SPDX-License-Identifier: MIT
// Package: lattix/lattice

package lattice

import "time"

// Stats summarises one call to Generate.
type Stats struct {
	Constraints int           // faces supplied
	Triples     int           // constraint triples examined by Bounds
	Skipped     int           // near-parallel triples skipped
	Infeasible  int           // triple intersections outside some face
	Vertices    int           // feasible intersections bounding the box
	Box         Box           // integer cell range enumerated
	Candidates  int           // unique motif points inside the box
	Accepted    int           // points kept after the face test
	Elapsed     time.Duration // wall time of the generation
}

// Observer receives the Stats of every successful generation and the
// failures of unsuccessful ones. Implementations must be safe for
// concurrent use when shared between lattices built in parallel.
type Observer interface {
	ObserveGeneration(s Stats)
	ObserveGenerationError(err error)
}

type nopObserver struct{}

func (nopObserver) ObserveGeneration(Stats)     {}
func (nopObserver) ObserveGenerationError(error) {}
