package lattice_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/lattix/cell"
	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// boxFaces returns the six closed faces of [0,L]×[0,W]×[0,H].
func boxFaces(L, W, H float64) []lattice.Constraint {
	return []lattice.Constraint{
		lattice.NewConstraint(r3.Vec{X: 1}, L),
		lattice.NewConstraint(r3.Vec{X: -1}, 0),
		lattice.NewConstraint(r3.Vec{Y: 1}, W),
		lattice.NewConstraint(r3.Vec{Y: -1}, 0),
		lattice.NewConstraint(r3.Vec{Z: 1}, H),
		lattice.NewConstraint(r3.Vec{Z: -1}, 0),
	}
}

func newLattice(t *testing.T, uc *cell.UnitCell, a float64, b geom.Basis, origin r3.Vec, opts ...lattice.Option) *lattice.Lattice {
	t.Helper()
	rc, err := cell.NewRealCell(uc, [3]float64{a, a, a})
	require.NoError(t, err)
	l, err := lattice.New(rc, b, origin, opts...)
	require.NoError(t, err)
	return l
}

type recordingObserver struct {
	mu    sync.Mutex
	stats []lattice.Stats
	errs  []error
}

func (r *recordingObserver) ObserveGeneration(s lattice.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append(r.stats, s)
}

func (r *recordingObserver) ObserveGenerationError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func TestGenerate_BoxCounts(t *testing.T) {
	cases := []struct {
		name    string
		motif   *cell.UnitCell
		a       float64
		L, W, H float64
		want    int
	}{
		{"sc 2a cube", cell.SimpleCubic(), 1, 2, 2, 2, 27},
		{"sc scaled parameter", cell.SimpleCubic(), 2, 4, 4, 4, 27},
		{"sc slab", cell.SimpleCubic(), 1, 3, 2, 0, 12},
		{"fcc unit cube", cell.FCC(), 1, 1, 1, 1, 14},
		{"bcc unit cube", cell.BCC(), 1, 1, 1, 1, 9},
		{"sc fractional extent", cell.SimpleCubic(), 1, 2.5, 1.5, 1, 3 * 2 * 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLattice(t, tc.motif, tc.a, geom.Identity(), r3.Vec{})
			require.NoError(t, l.Generate(boxFaces(tc.L, tc.W, tc.H)))
			require.Equal(t, tc.want, l.Len())
			require.Len(t, l.LatticePoints(), tc.want)
		})
	}
}

func TestGenerate_MatchesBruteForce(t *testing.T) {
	for _, a := range []float64{1, 1.5, 3.2} {
		for _, L := range []float64{1, 2, 3.7} {
			l := newLattice(t, cell.SimpleCubic(), a, geom.Identity(), r3.Vec{})
			require.NoError(t, l.Generate(boxFaces(L, L, L)))
			n := int(math.Floor(L/a+1e-9)) + 1
			require.Equal(t, n*n*n, l.Len(), "a=%g L=%g", a, L)
		}
	}
}

func TestGenerate_OpenFace(t *testing.T) {
	faces := boxFaces(2, 2, 2)
	faces[0] = faces[0].Opened()
	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
	require.NoError(t, l.Generate(faces))
	require.Equal(t, 18, l.Len())
	for _, p := range l.RealPoints() {
		require.Less(t, p.X, 2.0)
	}
	require.Equal(t, lattice.Open, l.Constraints()[0].Face)
	require.Equal(t, "open", l.Constraints()[0].Face.String())
}

func TestOpenFaces_MatchesGenerateWithOpenFace(t *testing.T) {
	direct := newLattice(t, cell.FCC(), 1, geom.Identity(), r3.Vec{})
	faces := boxFaces(2, 2, 1)
	faces[0], faces[2] = faces[0].Opened(), faces[2].Opened()
	require.NoError(t, direct.Generate(faces))

	later := newLattice(t, cell.FCC(), 1, geom.Identity(), r3.Vec{X: 5, Y: -1})
	require.NoError(t, later.Generate(boxFaces(2, 2, 1)))
	removed, err := later.OpenFaces(0, 2)
	require.NoError(t, err)
	require.Positive(t, removed)
	require.Equal(t, direct.Len(), later.Len())
	require.Equal(t, direct.LatticePoints(), later.LatticePoints())

	_, err = later.OpenFaces(6)
	require.ErrorIs(t, err, lattice.ErrConstraintIndex)
}

func TestGenerate_InvalidRegion(t *testing.T) {
	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
	require.NoError(t, l.Generate(boxFaces(1, 1, 1)))
	before := l.RealPoints()

	cases := map[string][]lattice.Constraint{
		"too few":      boxFaces(1, 1, 1)[:2],
		"open octant":  {boxFaces(1, 1, 1)[0], boxFaces(1, 1, 1)[2], boxFaces(1, 1, 1)[4]},
		"slab only":    {boxFaces(1, 1, 1)[0], boxFaces(1, 1, 1)[1], lattice.NewConstraint(r3.Vec{X: 1}, 3)},
		"infinite bar": boxFaces(1, 1, 1)[:4],
	}
	for name, cons := range cases {
		t.Run(name, func(t *testing.T) {
			err := l.Generate(cons)
			require.ErrorIs(t, err, lattice.ErrInvalidRegion)
			require.Equal(t, before, l.RealPoints(), "failed generation must not touch points")
		})
	}
}

func TestGenerate_InvalidConstraint(t *testing.T) {
	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
	cons := boxFaces(1, 1, 1)
	cons[3] = lattice.NewConstraint(r3.Vec{}, 1)
	require.ErrorIs(t, l.Generate(cons), lattice.ErrInvalidConstraint)

	cons[3] = lattice.NewConstraint(r3.Vec{Y: -1}, math.NaN())
	require.ErrorIs(t, l.Generate(cons), lattice.ErrInvalidConstraint)
}

func TestNew_Errors(t *testing.T) {
	rc, err := cell.NewRealCell(cell.SimpleCubic(), [3]float64{1, 1, 1})
	require.NoError(t, err)
	flat := geom.BasisFromRows([3][3]float64{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}})
	_, err = lattice.New(rc, flat, r3.Vec{})
	require.ErrorIs(t, err, lattice.ErrSingularBasis)

	_, err = lattice.New(nil, geom.Identity(), r3.Vec{})
	require.ErrorIs(t, err, lattice.ErrNilCell)
}

func TestGenerate_RotatedOrientationStaysInside(t *testing.T) {
	b := geom.RotateVectors(math.Pi/5, r3.Vec{X: 1, Y: 1, Z: 1}, geom.Identity())
	origin := r3.Vec{X: 10, Y: 20, Z: 30}
	l := newLattice(t, cell.FCC(), 1.3, b, origin)
	faces := boxFaces(4, 3, 5)
	require.NoError(t, l.Generate(faces))
	require.NotZero(t, l.Len())

	real, cellPts := l.RealPoints(), l.LatticePoints()
	for i, p := range real {
		local := r3.Sub(p, origin)
		for _, f := range faces {
			require.LessOrEqual(t, geom.Round(f.Eval(local), 6), 0.0)
		}
		// Lock-step rows: the lattice point maps to the real point.
		want := r3.Add(l.Transform().Apply(cellPts[i]), origin)
		require.InDelta(t, 0, r3.Norm(r3.Sub(want, p)), 1e-8)
	}
}

func TestGenerate_RotatedCountMatchesBruteForce(t *testing.T) {
	b := geom.RotateVectors(0.3, geom.ZAxis, geom.Identity())
	l := newLattice(t, cell.SimpleCubic(), 1, b, r3.Vec{})
	faces := boxFaces(5, 4, 2)
	require.NoError(t, l.Generate(faces))

	want := 0
	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			for z := -10; z <= 10; z++ {
				p := b.Apply(r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
				inside := true
				for _, f := range faces {
					if geom.Round(f.Eval(p), 8) > 0 {
						inside = false
						break
					}
				}
				if inside {
					want++
				}
			}
		}
	}
	require.Equal(t, want, l.Len())
}

func TestBounds_ContainsBruteForcePoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		// A cube keeps the region bounded; random extra faces cut it.
		cons := []lattice.Constraint{
			lattice.NewConstraint(r3.Vec{X: 1}, 5), lattice.NewConstraint(r3.Vec{X: -1}, 5),
			lattice.NewConstraint(r3.Vec{Y: 1}, 5), lattice.NewConstraint(r3.Vec{Y: -1}, 5),
			lattice.NewConstraint(r3.Vec{Z: 1}, 5), lattice.NewConstraint(r3.Vec{Z: -1}, 5),
		}
		for k := 0; k < 1+rng.Intn(4); k++ {
			n := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
			cons = append(cons, lattice.NewConstraint(n, 0.5+3*rng.Float64()))
		}

		l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
		require.NoError(t, l.Generate(cons))
		box := l.Stats().Box

		brute := 0
		for x := -8; x <= 8; x++ {
			for y := -8; y <= 8; y++ {
				for z := -8; z <= 8; z++ {
					p := r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
					inside := true
					for _, c := range cons {
						if c.Normalised().Rejects(c.Normalised().Eval(p), lattice.DefaultRounding) {
							inside = false
							break
						}
					}
					if inside {
						brute++
						require.True(t, box.Contains(p), "trial %d: %v outside box %+v", trial, p, box)
					}
				}
			}
		}
		require.Equal(t, brute, l.Len(), "trial %d", trial)
	}
}

func TestBounds_StatsAndObserver(t *testing.T) {
	obs := &recordingObserver{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{},
		lattice.WithObserver(obs), lattice.WithLogger(logger))

	require.NoError(t, l.Generate(boxFaces(2, 2, 2)))
	st := l.Stats()
	require.Equal(t, 6, st.Constraints)
	require.Equal(t, 20, st.Triples)
	require.Equal(t, 12, st.Skipped)
	require.Equal(t, 8, st.Vertices)
	require.Equal(t, lattice.Box{Hi: [3]int{2, 2, 2}}, st.Box)
	require.Equal(t, 27, st.Accepted)
	require.Len(t, obs.stats, 1)
	require.Contains(t, buf.String(), "skipped_triples=12")

	require.Error(t, l.Generate(boxFaces(2, 2, 2)[:2]))
	require.Len(t, obs.errs, 1)
}

func TestBounds_Direct(t *testing.T) {
	box, st, err := lattice.Bounds(boxFaces(2.5, 1, 0.2), lattice.DefaultDeterminantTolerance)
	require.NoError(t, err)
	require.Equal(t, lattice.Box{Hi: [3]int{3, 1, 1}}, box)
	require.Equal(t, 4*2*2, box.Cells())
	require.Equal(t, 8, st.Vertices)
}

func TestBounds_NearParallelFacesStayTight(t *testing.T) {
	// Unit simplex cut by two faces nearly parallel to x ≤ 1. Their triple
	// intersections with the other faces land thousands of cells away but
	// violate the simplex, so they must not widen the box.
	cons := []lattice.Constraint{
		lattice.NewConstraint(r3.Vec{X: -1}, 0),
		lattice.NewConstraint(r3.Vec{Y: -1}, 0),
		lattice.NewConstraint(r3.Vec{Z: -1}, 0),
		lattice.NewConstraint(r3.Vec{X: 1, Y: 1, Z: 1}, 1),
		lattice.NewConstraint(r3.Vec{X: 1, Y: 0.0002}, 1),
		lattice.NewConstraint(r3.Vec{X: 1, Z: 0.0003}, 1.0001),
	}
	box, st, err := lattice.Bounds(cons, lattice.DefaultDeterminantTolerance)
	require.NoError(t, err)
	require.Equal(t, lattice.Box{Hi: [3]int{1, 1, 1}}, box)
	require.Positive(t, st.Infeasible)
	require.Equal(t, st.Triples, st.Skipped+st.Infeasible+st.Vertices)

	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
	require.NoError(t, l.Generate(cons))
	require.ElementsMatch(t, []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, l.LatticePoints())
	require.LessOrEqual(t, l.Stats().Candidates, 8)
}

func TestBounds_InfeasibleRegionIsEmpty(t *testing.T) {
	// x ≤ 0 and x ≥ 1 inside a cube: bounded, no feasible point.
	cons := append(boxFaces(2, 2, 2), lattice.NewConstraint(r3.Vec{X: 1}, 0), lattice.NewConstraint(r3.Vec{X: -1}, -1))
	box, st, err := lattice.Bounds(cons, lattice.DefaultDeterminantTolerance)
	require.NoError(t, err)
	require.True(t, box.Empty())
	require.Zero(t, st.Vertices)

	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
	require.NoError(t, l.Generate(cons))
	require.Zero(t, l.Len())
}

func TestBounds_RejectsMalformedConstraint(t *testing.T) {
	cons := append(boxFaces(1, 1, 1), lattice.NewConstraint(r3.Vec{}, 1))
	_, _, err := lattice.Bounds(cons, lattice.DefaultDeterminantTolerance)
	require.ErrorIs(t, err, lattice.ErrInvalidConstraint)
}

func TestRemoval_LockStep(t *testing.T) {
	origin := r3.Vec{X: 1, Y: 1, Z: 1}
	fresh := func() *lattice.Lattice {
		l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), origin)
		require.NoError(t, l.Generate(boxFaces(2, 2, 2)))
		return l
	}
	checkAligned := func(t *testing.T, l *lattice.Lattice) {
		real, cellPts := l.RealPoints(), l.LatticePoints()
		require.Len(t, cellPts, len(real))
		for i := range real {
			require.Equal(t, r3.Add(cellPts[i], origin), real[i])
		}
	}

	t.Run("RemovePoints", func(t *testing.T) {
		l := fresh()
		n := l.RemovePoints([]r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 3, Y: 3, Z: 3}, {X: 9}})
		require.Equal(t, 2, n)
		require.Equal(t, 25, l.Len())
		checkAligned(t, l)
	})
	t.Run("RemoveCoincident", func(t *testing.T) {
		l := fresh()
		n := l.RemoveCoincident([]r3.Vec{{X: 1.000001, Y: 1, Z: 1}}, 1e-5)
		require.Equal(t, 1, n)
		checkAligned(t, l)
	})
	t.Run("ConstrainRealPoints", func(t *testing.T) {
		l := fresh()
		n, err := l.ConstrainRealPoints(lattice.NewConstraint(r3.Vec{Z: 2}, 4)) // z ≤ 2
		require.NoError(t, err)
		require.Equal(t, 9, n)
		checkAligned(t, l)
	})
	t.Run("RemovePlane", func(t *testing.T) {
		l := fresh()
		n, err := l.RemovePlane(lattice.NewConstraint(r3.Vec{X: 1}, 2), 0.01)
		require.NoError(t, err)
		require.Equal(t, 9, n)
		checkAligned(t, l)
	})
	t.Run("Keep", func(t *testing.T) {
		l := fresh()
		centre := r3.Vec{X: 2, Y: 2, Z: 2}
		n := l.Keep(func(p r3.Vec) bool { return r3.Norm(r3.Sub(p, centre)) <= 1 })
		require.Equal(t, 27-7, n)
		checkAligned(t, l)
		require.Zero(t, l.Keep(nil))
	})
}

func TestRemoval_RejectsMalformedConstraint(t *testing.T) {
	l := newLattice(t, cell.SimpleCubic(), 1, geom.Identity(), r3.Vec{})
	require.NoError(t, l.Generate(boxFaces(2, 2, 2)))

	_, err := l.ConstrainRealPoints(lattice.NewConstraint(r3.Vec{}, 1))
	require.ErrorIs(t, err, lattice.ErrInvalidConstraint)
	_, err = l.ConstrainRealPoints(lattice.NewConstraint(r3.Vec{X: math.NaN()}, 1))
	require.ErrorIs(t, err, lattice.ErrInvalidConstraint)
	_, err = l.RemovePlane(lattice.NewConstraint(r3.Vec{}, 1), 0.1)
	require.ErrorIs(t, err, lattice.ErrInvalidConstraint)
	_, err = l.RemovePlane(lattice.NewConstraint(r3.Vec{X: 1}, 1), 0)
	require.ErrorIs(t, err, lattice.ErrInvalidConstraint)
	require.Equal(t, 27, l.Len())
}

func TestAccessors(t *testing.T) {
	l := newLattice(t, cell.SimpleCubic(), 2, geom.Identity(), r3.Vec{X: 3}, lattice.WithAtomType(4), lattice.WithRounding(6))
	require.Equal(t, 4, l.AtomType())
	require.Equal(t, 6, l.Rounding())
	require.Equal(t, r3.Vec{X: 3}, l.Origin())
	require.Equal(t, geom.Identity().Scaled([3]float64{2, 2, 2}), l.RealBasisVectors())
	require.InDelta(t, 1.0, l.Quaternion().Real, 1e-12)
	require.Zero(t, l.Len())

	// Copies must not alias internal state.
	require.NoError(t, l.Generate(boxFaces(2, 2, 2)))
	pts := l.RealPoints()
	pts[0] = r3.Vec{X: -100}
	require.NotEqual(t, pts[0], l.RealPoints()[0])
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { lattice.WithRounding(-1) })
	require.Panics(t, func() { lattice.WithDeterminantTolerance(0) })
	require.Panics(t, func() { lattice.WithAtomType(0) })
	require.Panics(t, func() { lattice.WithLogger(nil) })
	require.Panics(t, func() { lattice.WithObserver(nil) })
}
