// SPDX-License-Identifier: MIT
// Package: lattix/recipe
//
// build.go - executes a validated recipe.
//
// Steps:
//   1. Resolve the motif and the real cell (cubic, parameter a).
//   2. With a csl block, solve the CSL; the solver frame (axis along z) is
//      the base orientation of every grain, otherwise the identity is.
//   3. Generate every grain concurrently (bounded by WithWorkers). Grain i's
//      orientation is the base rotated about z by its csl_grain lattice
//      rotation plus its own rotation. The first failure cancels the rest.
//   4. Add the grains to the simulation cell in recipe order and wrap when
//      the recipe asks for it.
//
// Determinism: grains land in recipe order regardless of completion order,
// so a recipe always yields the same cell.

package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lattix/cell"
	"github.com/katalvlaran/lattix/csl"
	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/region"
	"github.com/katalvlaran/lattix/simcell"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Result is a finished build.
type Result struct {
	ID      uuid.UUID
	Cell    *simcell.Cell
	CSL     *csl.Result // nil without a csl block
	Elapsed time.Duration
}

// Build executes r and returns the assembled simulation cell.
func Build(ctx context.Context, r Recipe, opts ...Option) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuildConfig(opts...)
	start := cfg.now()
	id := cfg.newID()
	log := cfg.logger.With(slog.String("build_id", id.String()), slog.String("recipe", r.Name))

	uc, err := cell.Lookup(r.Structure)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrInvalidRecipe, err)
	}
	a := r.LatticeParameter
	rc, err := cell.NewRealCell(uc, [3]float64{a, a, a})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrBuildFailed, err)
	}

	base := geom.Identity()
	var sol *csl.Result
	if r.CSL != nil {
		axis := [3]int{r.CSL.Axis[0], r.CSL.Axis[1], r.CSL.Axis[2]}
		solver, err := csl.NewSolver(axis, append([]csl.Option{csl.WithLogger(log)}, cfg.solverObs...)...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrInvalidRecipe, err)
		}
		res, err := solver.Solve(ctx, r.CSL.Sigma)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrBuildFailed, err)
		}
		base, sol = solver.Frame(), &res
	}

	grains, err := buildGrains(ctx, r, rc, base, sol, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrBuildFailed, err)
	}

	sc, err := newCell(r, sol, id, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrBuildFailed, err)
	}
	for i, g := range grains {
		if err := sc.AddGrain(r.Grains[i].Name, g); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrBuildFailed, err)
		}
	}
	if r.Wrap {
		sc.Wrap()
	}

	res := &Result{ID: id, Cell: sc, CSL: sol, Elapsed: cfg.now().Sub(start)}
	log.Info("recipe built",
		slog.Int("grains", sc.Len()),
		slog.Int("points", sc.UnwrappedCount()),
		slog.Int("atoms", sc.AtomCount()),
		slog.Bool("wrapped", sc.Wrapped()),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// Run builds r and writes the data file to r.Output.
func Run(ctx context.Context, r Recipe, opts ...Option) (*Result, error) {
	if r.Output == "" {
		return nil, fmt.Errorf("%s: %q: %w", methodRun, r.Name, ErrNoOutput)
	}
	res, err := Build(ctx, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	if err := res.Cell.WriteDataFile(r.Output); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	return res, nil
}

func buildGrains(ctx context.Context, r Recipe, rc *cell.RealCell, base geom.Basis,
	sol *csl.Result, cfg buildConfig, log *slog.Logger) ([]*lattice.Lattice, error) {
	out := make([]*lattice.Lattice, len(r.Grains))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, gs := range r.Grains {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := buildGrain(gs, rc, base, sol, cfg, log)
			if err != nil {
				return fmt.Errorf("grain %q: %w", gs.Name, err)
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildGrain(gs Grain, rc *cell.RealCell, base geom.Basis, sol *csl.Result,
	cfg buildConfig, log *slog.Logger) (*lattice.Lattice, error) {
	angle := gs.Rotation * math.Pi / 180
	if gs.CSLGrain != nil && sol != nil {
		angle += sol.LatticeRotations[*gs.CSLGrain]
	}
	orientation := geom.RotateVectors(angle, geom.ZAxis, base)

	atomType := gs.AtomType
	if atomType == 0 {
		atomType = defaultAtomType
	}
	lopts := append([]lattice.Option{
		lattice.WithAtomType(atomType),
		lattice.WithLogger(log.With(slog.String("grain", gs.Name))),
	}, cfg.latticeObs...)
	l, err := lattice.New(rc, orientation, vec(gs.Origin), lopts...)
	if err != nil {
		return nil, err
	}
	cons := []region.Constructor{shape(gs.Shape)}
	if w := gs.Shape.Within; w != nil {
		centre, radius := vec(w.Centre), w.Radius
		cons = append(cons, region.Implicit(func(p r3.Vec) bool {
			return r3.Norm(r3.Sub(p, centre)) <= radius
		}))
	}
	var ropts []region.Option
	if len(gs.OpenFaces) > 0 {
		ropts = append(ropts, region.WithOpenFaces(gs.OpenFaces...))
	}
	if err := region.Generate(l, ropts, cons...); err != nil {
		return nil, err
	}
	return l, nil
}

// shape maps a validated Shape onto its region constructor.
func shape(s Shape) region.Constructor {
	switch s.Kind {
	case ShapeParallelogram:
		return region.Parallelogram(
			r3.Vec{X: s.EdgeA[0], Y: s.EdgeA[1]},
			r3.Vec{X: s.EdgeB[0], Y: s.EdgeB[1]},
			s.Height)
	case ShapePolygon:
		return region.RegularPolygon(s.Side, s.Height, s.Sides)
	default:
		return region.Box(s.Length, s.Width, s.Height)
	}
}

func newCell(r Recipe, sol *csl.Result, id uuid.UUID, cfg buildConfig, log *slog.Logger) (*simcell.Cell, error) {
	var box geom.Basis
	if len(r.Box.CSLMultiples) > 0 {
		for i := range box {
			box[i] = r3.Scale(float64(r.Box.CSLMultiples[i])*r.LatticeParameter, sol.Basis[i])
		}
	} else {
		for i := range box {
			box[i] = vec(r.Box.Rows[i])
		}
	}
	var bounds [3]simcell.Boundary
	for i, b := range r.Box.Boundaries {
		if b == BoundaryFixed {
			bounds[i] = simcell.Fixed
		}
	}
	opts := append([]simcell.Option{
		simcell.WithOrigin(vec(r.Box.Origin)),
		simcell.WithBoundaries(bounds[0], bounds[1], bounds[2]),
		simcell.WithPrecision(r.Precision),
		simcell.WithHeader(strings.TrimSpace(r.Header + " build " + id.String())),
		simcell.WithClock(cfg.now),
		simcell.WithLogger(log),
	}, cfg.cellObs...)
	return simcell.New(box, opts...)
}

// vec converts an optional three-element slice; nil is the zero vector.
func vec(v []float64) r3.Vec {
	if len(v) < 3 {
		return r3.Vec{}
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
