// SPDX-License-Identifier: MIT
// Package: lattix/metrics
//
// metrics.go - Prometheus collector for generation, CSL and wrap events.

package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lattix/csl"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/simcell"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lattix"

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	_ lattice.Observer = (*Collector)(nil)
	_ csl.Observer     = (*Collector)(nil)
	_ simcell.Observer = (*Collector)(nil)
)

// Collector records lattix events into Prometheus metrics.
type Collector struct {
	generations    *prometheus.CounterVec
	generationTime prometheus.Histogram
	points         prometheus.Counter
	candidates     prometheus.Counter
	skippedTriples prometheus.Counter

	solves    *prometheus.CounterVec
	solveTime *prometheus.HistogramVec

	wraps      prometheus.Counter
	duplicates prometheus.Counter
	atoms      prometheus.Gauge
	wrapTime   prometheus.Histogram
}

// New registers the lattix metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice on the same registry
// panics, as promauto does.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lattice",
			Name:      "generations_total",
			Help:      "Lattice generations by outcome",
		}, []string{"outcome"}),
		generationTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lattice",
			Name:      "generation_seconds",
			Help:      "Wall time of successful lattice generations",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		points: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lattice",
			Name:      "points_total",
			Help:      "Lattice points accepted inside their regions",
		}),
		candidates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lattice",
			Name:      "candidates_total",
			Help:      "Candidate points tested against region faces",
		}),
		skippedTriples: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lattice",
			Name:      "skipped_triples_total",
			Help:      "Near-parallel constraint triples skipped while bounding",
		}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "csl",
			Name:      "solves_total",
			Help:      "CSL solves by axis and outcome",
		}, []string{"axis", "outcome"}),
		solveTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "csl",
			Name:      "solve_seconds",
			Help:      "Wall time of CSL solves",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"axis"}),
		wraps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simcell",
			Name:      "wraps_total",
			Help:      "Simulation cell wraps",
		}),
		duplicates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simcell",
			Name:      "duplicate_atoms_total",
			Help:      "Points collapsed onto an existing atom while wrapping",
		}),
		atoms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "simcell",
			Name:      "atoms",
			Help:      "Atoms in the most recently wrapped cell",
		}),
		wrapTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simcell",
			Name:      "wrap_seconds",
			Help:      "Wall time of simulation cell wraps",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// ObserveGeneration implements lattice.Observer.
func (c *Collector) ObserveGeneration(s lattice.Stats) {
	c.generations.WithLabelValues(OutcomeOK).Inc()
	c.generationTime.Observe(s.Elapsed.Seconds())
	c.points.Add(float64(s.Accepted))
	c.candidates.Add(float64(s.Candidates))
	c.skippedTriples.Add(float64(s.Skipped))
}

// ObserveGenerationError implements lattice.Observer.
func (c *Collector) ObserveGenerationError(error) {
	c.generations.WithLabelValues(OutcomeError).Inc()
}

// ObserveSolve implements csl.Observer.
func (c *Collector) ObserveSolve(axis [3]int, _ int, elapsed time.Duration, err error) {
	label := AxisLabel(axis)
	outcome := OutcomeOK
	switch {
	case errors.Is(err, csl.ErrSigmaNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	c.solves.WithLabelValues(label, outcome).Inc()
	c.solveTime.WithLabelValues(label).Observe(elapsed.Seconds())
}

// ObserveWrap implements simcell.Observer.
func (c *Collector) ObserveWrap(before, after int, elapsed time.Duration) {
	c.wraps.Inc()
	c.duplicates.Add(float64(before - after))
	c.atoms.Set(float64(after))
	c.wrapTime.Observe(elapsed.Seconds())
}

// AxisLabel formats an axis as the label value used by the csl metrics,
// e.g. "[0 0 1]".
func AxisLabel(axis [3]int) string {
	return fmt.Sprintf("[%d %d %d]", axis[0], axis[1], axis[2])
}
