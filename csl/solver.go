// SPDX-License-Identifier: MIT
// Package: lattix/csl
//
// solver.go - numerical CSL basis solver.
//
// Contract:
//   • The axis is reduced by its GCD. [001] uses the identity crystal frame
//     with repeat height 1; any other axis uses the identity rotated so the
//     axis lies along z, with repeat height |axis|.
//   • Solve(ctx, Σ) uses the smallest table angle with that Σ (table searched
//     up to 2Σ). A missing row is ErrSigmaNotFound and leaves no result.
//   • Trial lattices have unit lattice parameter and fill the box
//     [0,Σ]×[0,Σ]×[0,h] in the rotated frame.
//   • Pass 1 finds the coincidence nearest the origin in the z=0 plane and
//     derives the frame rotation that aligns it with +x. Pass 2 rebuilds both
//     lattices in that frame and takes the shortest coincidence vector and
//     the next shortest non-collinear one; the vector with the larger x
//     component comes first.
//
// Concurrency:
//   • The two trial lattices of a pass are generated concurrently.
//   • The coincidence scan is split across WithWorkers goroutines; ctx
//     cancellation stops it between rows.
//   • A Solver holds no mutable state; Solve may be called concurrently.
//
// Determinism: chunks are merged in index order, candidates are sorted by
// length then polar angle, so repeated calls return identical results.

package csl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/lattix/cell"
	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/region"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Result is the outcome of a successful Solve.
type Result struct {
	Axis             [3]int     // reduced rotation axis
	Sigma            int        // coincidence index
	RotationAngle    float64    // misorientation between the two grains, radians
	LatticeRotations [2]float64 // absolute rotations of grain 1 and grain 2 about z
	Basis            geom.Basis // two in-plane CSL vectors and the axis repeat
}

// Solver computes CSL bases for one rotation axis.
type Solver struct {
	axis   [3]int
	frame  geom.Basis
	height float64
	cfg    solverConfig
}

// NewSolver prepares a solver for rotations about axis. The axis is reduced
// by its GCD; the zero axis is ErrBadAxis.
// Complexity: O(1).
func NewSolver(axis [3]int, opts ...Option) (*Solver, error) {
	ax, err := geom.ReduceAxis(axis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNewSolver, ErrBadAxis, err)
	}
	s := &Solver{axis: ax, cfg: newSolverConfig(opts...)}
	if ax == [3]int{0, 0, 1} {
		s.frame, s.height = geom.Identity(), 1
		return s, nil
	}
	v := geom.AxisVec(ax)
	if s.frame, err = geom.AlignedBasis(v); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSolver, err)
	}
	s.height = r3.Norm(v)
	return s, nil
}

// Axis returns the reduced rotation axis.
func (s *Solver) Axis() [3]int { return s.axis }

// Frame returns the crystal orientation with the axis along z.
func (s *Solver) Frame() geom.Basis { return s.frame }

// Height returns the repeat length along the axis, in lattice parameters.
func (s *Solver) Height() float64 { return s.height }

// Table returns the CSL table of the solver's axis up to maxSigma.
// Complexity: see CubicTable.
func (s *Solver) Table(maxSigma int) ([]Row, error) {
	return CubicTable(s.axis, maxSigma)
}

// Solve returns the CSL of the given Σ about the solver's axis.
// Σ < 1 is ErrBadSigma, a Σ absent from the table is ErrSigmaNotFound, and
// a cancelled ctx returns ctx.Err(). Every call, failed or not, is reported
// to the observer.
//
// Complexity: two passes, each O(P²/W) for P in-plane points of a Σ×Σ
// trial box (P ~ Σ²) split across W workers.
func (s *Solver) Solve(ctx context.Context, sigma int) (Result, error) {
	start := time.Now()
	res, err := s.solve(ctx, sigma)
	elapsed := time.Since(start)
	s.cfg.observer.ObserveSolve(s.axis, sigma, elapsed, err)
	switch {
	case errors.Is(err, ErrSigmaNotFound):
		s.cfg.logger.Warn("csl sigma not found",
			slog.Any("axis", s.axis), slog.Int("sigma", sigma))
		return Result{}, err
	case err != nil:
		return Result{}, err
	}
	s.cfg.logger.Debug("csl solved",
		slog.Any("axis", s.axis),
		slog.Int("sigma", sigma),
		slog.Float64("angle_deg", res.RotationAngle*180/math.Pi),
		slog.Any("basis", res.Basis.Rows()),
		slog.Duration("elapsed", elapsed),
	)
	return res, nil
}

func (s *Solver) solve(ctx context.Context, sigma int) (Result, error) {
	if sigma < 1 {
		return Result{}, fmt.Errorf("%s: Σ=%d: %w", methodSolve, sigma, ErrBadSigma)
	}
	rows, err := s.Table(searchFactor * sigma)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	idx := sort.Search(len(rows), func(i int) bool { return rows[i].Sigma >= sigma })
	if idx == len(rows) || rows[idx].Sigma != sigma {
		return Result{}, fmt.Errorf("%s: Σ%d about %v: %w", methodSolve, sigma, s.axis, ErrSigmaNotFound)
	}
	theta := rows[idx].Angle
	size := float64(sigma)

	// Pass 1: fix the frame from the nearest in-plane coincidence.
	first, err := s.coincidentPlane(ctx, size, 0, theta)
	if err != nil {
		return Result{}, err
	}
	if len(first) == 0 {
		return Result{}, fmt.Errorf("%s: Σ%d: no in-plane coincidence: %w", methodSolve, sigma, ErrDegenerateBasis)
	}
	sortByLength(first)
	cos := math.Max(-1, math.Min(1, r3.Dot(r3.Unit(first[0]), geom.XAxis)))
	frame := -math.Acos(cos)

	// Pass 2: primitive pair in the aligned frame.
	second, err := s.coincidentPlane(ctx, size, frame, theta+frame)
	if err != nil {
		return Result{}, err
	}
	v1, v2, err := primitivePair(second)
	if err != nil {
		return Result{}, fmt.Errorf("%s: Σ%d: %w", methodSolve, sigma, err)
	}
	if r3.Dot(v2, geom.XAxis) > r3.Dot(v1, geom.XAxis) {
		v1, v2 = v2, v1
	}
	return Result{
		Axis:             s.axis,
		Sigma:            sigma,
		RotationAngle:    theta,
		LatticeRotations: [2]float64{frame, theta + frame},
		Basis:            geom.Basis{v1, v2, {Z: s.height}}.Round(basisDigits),
	}, nil
}

// coincidentPlane builds two trial lattices rotated by a1 and a2 about z and
// returns their coincidences in the z=0 plane, origin excluded.
func (s *Solver) coincidentPlane(ctx context.Context, size, a1, a2 float64) ([]r3.Vec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var pts [2][]r3.Vec
	var g errgroup.Group
	for i, angle := range [2]float64{a1, a2} {
		g.Go(func() error {
			l, err := s.trial(angle, size)
			if err != nil {
				return err
			}
			pts[i] = inPlane(l.RealPoints(), s.cfg.tol)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: trial lattice: %w", methodSolve, err)
	}
	common, err := coincidences(ctx, pts[0], pts[1], s.cfg.tol, s.cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	out := common[:0]
	for _, p := range common {
		if r3.Norm(p) >= s.cfg.tol {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Solver) trial(angle, size float64) (*lattice.Lattice, error) {
	rc, err := cell.NewRealCell(s.cfg.motif, [3]float64{1, 1, 1})
	if err != nil {
		return nil, err
	}
	orientation := geom.RotateVectors(angle, geom.ZAxis, s.frame)
	return region.ExtrudedRectangle(rc, orientation, r3.Vec{}, size, size, s.height,
		lattice.WithLogger(s.cfg.logger))
}

// coincidences returns the points of a lying within tol of some point of b,
// in the order of a. Rows of a are split into contiguous chunks scanned in
// parallel.
func coincidences(ctx context.Context, a, b []r3.Vec, tol float64, workers int) ([]r3.Vec, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	workers = max(1, min(workers, len(a)))
	chunk := (len(a) + workers - 1) / workers
	parts := make([][]r3.Vec, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, len(a))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for _, p := range a[lo:hi] {
				if err := gctx.Err(); err != nil {
					return err
				}
				for _, q := range b {
					if r3.Norm(r3.Sub(p, q)) < tol {
						parts[w] = append(parts[w], p)
						break
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []r3.Vec
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func inPlane(pts []r3.Vec, tol float64) []r3.Vec {
	out := pts[:0]
	for _, p := range pts {
		if math.Abs(p.Z) < tol {
			out = append(out, p)
		}
	}
	return out
}

// sortByLength orders vectors by length, then by polar angle.
func sortByLength(v []r3.Vec) {
	sort.SliceStable(v, func(i, j int) bool {
		ni, nj := geom.Round(r3.Norm(v[i]), angleDigits), geom.Round(r3.Norm(v[j]), angleDigits)
		if ni != nj {
			return ni < nj
		}
		return math.Atan2(v[i].Y, v[i].X) < math.Atan2(v[j].Y, v[j].X)
	})
}

// primitivePair returns the shortest vector and the shortest vector not
// collinear with it.
func primitivePair(pts []r3.Vec) (r3.Vec, r3.Vec, error) {
	if len(pts) < 2 {
		return r3.Vec{}, r3.Vec{}, ErrDegenerateBasis
	}
	sortByLength(pts)
	v1 := pts[0]
	u1 := r3.Unit(v1)
	for _, v := range pts[1:] {
		if r3.Norm(r3.Cross(u1, r3.Unit(v))) > collinearTolerance {
			return v1, v, nil
		}
	}
	return r3.Vec{}, r3.Vec{}, ErrDegenerateBasis
}
