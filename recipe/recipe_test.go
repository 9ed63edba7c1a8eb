package recipe_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lattix/csl"
	"github.com/katalvlaran/lattix/geom"
	"github.com/katalvlaran/lattix/recipe"
	"github.com/stretchr/testify/require"
)

const slabs = `
name: two-slabs
structure: sc
lattice_parameter: 1
box:
  rows: [[10, 0, 0], [0, 10, 0], [0, 0, 10]]
grains:
  - name: left
    shape: {kind: box, length: 2, width: 2, height: 0}
  - name: right
    origin: [2, 0, 0]
    shape: {kind: box, length: 2, width: 2, height: 0}
`

const sigma5 = `
name: sigma5
structure: SC
lattice_parameter: 1
csl: {axis: [0, 0, 1], sigma: 5}
box: {csl_multiples: [1, 1, 1]}
grains:
  - name: lower
    csl_grain: 0
    origin: [-3, -3, 0]
    shape: {kind: box, length: 8, width: 8, height: 0}
  - name: upper
    csl_grain: 1
    atom_type: 2
    origin: [-3, -3, 0]
    shape: {kind: box, length: 8, width: 8, height: 0}
`

func TestParse_Defaults(t *testing.T) {
	r, err := recipe.Parse([]byte(slabs))
	require.NoError(t, err)
	require.Equal(t, "two-slabs", r.Name)
	require.Equal(t, 5, r.Precision)
	require.True(t, r.Wrap)
	require.Equal(t, []string{"p", "p", "p"}, r.Box.Boundaries)
	require.Len(t, r.Grains, 2)
	require.Equal(t, 1, r.Grains[0].AtomType)
	require.Nil(t, r.CSL)

	d := recipe.DefaultRecipe()
	require.Equal(t, "fcc", d.Structure)
	require.InDelta(t, 4.05, d.LatticeParameter, 0)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		edit func(string) string
	}{
		{"missing name", func(s string) string { return strings.Replace(s, "name: two-slabs", "", 1) }},
		{"unknown structure", func(s string) string { return strings.Replace(s, "structure: sc", "structure: hcp", 1) }},
		{"unknown key", func(s string) string { return s + "colour: red\n" }},
		{"negative parameter", func(s string) string {
			return strings.Replace(s, "lattice_parameter: 1", "lattice_parameter: -1", 1)
		}},
		{"short box row", func(s string) string { return strings.Replace(s, "[0, 0, 10]", "[0, 10]", 1) }},
		{"rows and multiples", func(s string) string {
			return strings.Replace(s, "box:\n", "box:\n  csl_multiples: [1, 1, 1]\n", 1)
		}},
		{"no box", func(s string) string {
			return strings.Replace(s, "  rows: [[10, 0, 0], [0, 10, 0], [0, 0, 10]]\n", "  origin: [0, 0, 0]\n", 1)
		}},
		{"bad boundary", func(s string) string {
			return strings.Replace(s, "box:\n", "box:\n  boundaries: [p, x, p]\n", 1)
		}},
		{"csl grain without csl", func(s string) string {
			return strings.Replace(s, "  - name: left\n", "  - name: left\n    csl_grain: 1\n", 1)
		}},
		{"duplicate grain", func(s string) string { return strings.Replace(s, "name: right", "name: left", 1) }},
		{"bad shape", func(s string) string { return strings.Replace(s, "kind: box", "kind: torus", 1) }},
		{"polygon without sides", func(s string) string {
			return strings.Replace(s, "{kind: box, length: 2, width: 2, height: 0}", "{kind: polygon, side: 2}", 1)
		}},
		{"empty document", func(string) string { return "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := recipe.Parse([]byte(tc.edit(slabs)))
			require.ErrorIs(t, err, recipe.ErrInvalidRecipe)
		})
	}

	r, err := recipe.Parse([]byte(sigma5))
	require.NoError(t, err)
	r.CSL = nil
	require.ErrorIs(t, r.Validate(), recipe.ErrInvalidRecipe, "csl_multiples need a csl block")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slabs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(slabs), 0o600))
	r, err := recipe.Load(path)
	require.NoError(t, err)
	require.Equal(t, "two-slabs", r.Name)

	_, err = recipe.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Slabs(t *testing.T) {
	r, err := recipe.Parse([]byte(slabs))
	require.NoError(t, err)

	res, err := recipe.Build(context.Background(), r, recipe.WithWorkers(1))
	require.NoError(t, err)
	require.Nil(t, res.CSL)
	require.NotEqual(t, uuid.Nil, res.ID)
	require.Equal(t, []string{"left", "right"}, res.Cell.Grains())
	require.Equal(t, 18, res.Cell.UnwrappedCount())
	n, err := res.Cell.UniqueCount()
	require.NoError(t, err)
	require.Equal(t, 15, n)

	r.Wrap = false
	res, err = recipe.Build(context.Background(), r)
	require.NoError(t, err)
	require.False(t, res.Cell.Wrapped())
	require.Equal(t, 18, res.Cell.AtomCount())
}

func TestBuild_Sigma5(t *testing.T) {
	r, err := recipe.Parse([]byte(sigma5))
	require.NoError(t, err)

	res, err := recipe.Build(context.Background(), r)
	require.NoError(t, err)
	require.NotNil(t, res.CSL)
	require.Equal(t, 5, res.CSL.Sigma)

	root5 := math.Sqrt(5)
	b := res.Cell.Bounds()
	require.InDelta(t, root5, b.Hi.X, 1e-9)
	require.InDelta(t, root5, b.Hi.Y, 1e-9)
	require.InDelta(t, 1, b.Hi.Z, 1e-9)

	upper, err := res.Cell.Grain("upper")
	require.NoError(t, err)
	want := geom.RotateVectors(res.CSL.LatticeRotations[1], geom.ZAxis, geom.Identity())
	for i := range want {
		require.InDelta(t, want[i].X, upper.Orientation()[i].X, 1e-12)
		require.InDelta(t, want[i].Y, upper.Orientation()[i].Y, 1e-12)
	}

	// Each grain puts Σ=5 sites in the CSL cell; the two share one.
	n, err := res.Cell.UniqueCount()
	require.NoError(t, err)
	require.Equal(t, 9, n)
	require.Equal(t, 2, res.Cell.AtomTypeCount())
	types := map[int]int{}
	for _, a := range res.Cell.Atoms() {
		types[a.Type]++
	}
	require.Equal(t, map[int]int{1: 5, 2: 4}, types)
}

func TestBuild_Errors(t *testing.T) {
	r, err := recipe.Parse([]byte(sigma5))
	require.NoError(t, err)
	r.CSL.Sigma = 7
	_, err = recipe.Build(context.Background(), r)
	require.ErrorIs(t, err, recipe.ErrBuildFailed)
	require.ErrorIs(t, err, csl.ErrSigmaNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err = recipe.Parse([]byte(slabs))
	require.NoError(t, err)
	_, err = recipe.Build(ctx, r)
	require.ErrorIs(t, err, context.Canceled)

	_, err = recipe.Build(context.Background(), recipe.Recipe{})
	require.ErrorIs(t, err, recipe.ErrInvalidRecipe)
}

func TestBuild_WithinSphere(t *testing.T) {
	r, err := recipe.Parse([]byte(`
name: ball
structure: sc
lattice_parameter: 1
wrap: false
box: {rows: [[4, 0, 0], [0, 4, 0], [0, 0, 4]]}
grains:
  - name: ball
    shape:
      kind: box
      length: 2
      width: 2
      height: 2
      within: {centre: [1, 1, 1], radius: 1}
`))
	require.NoError(t, err)
	res, err := recipe.Build(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, 7, res.Cell.AtomCount())
}

func TestRun(t *testing.T) {
	r, err := recipe.Parse([]byte(slabs))
	require.NoError(t, err)
	_, err = recipe.Run(context.Background(), r)
	require.ErrorIs(t, err, recipe.ErrNoOutput)

	id := uuid.MustParse("0b7c8f5e-4a43-4d8e-9a55-2f1a3c6d7e90")
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r.Header = "two slabs"
	r.Output = filepath.Join(t.TempDir(), "slabs.data")
	res, err := recipe.Run(context.Background(), r,
		recipe.WithBuildID(id),
		recipe.WithLogger(logger),
		recipe.WithClock(func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }),
	)
	require.NoError(t, err)
	require.Equal(t, id, res.ID)

	raw, err := os.ReadFile(r.Output)
	require.NoError(t, err)
	first, _, _ := strings.Cut(string(raw), "\n")
	require.Equal(t, "## 03/02/2026 04:05:06 two slabs build "+id.String(), first)
	require.Contains(t, string(raw), "\n15 atoms\n")
	require.Contains(t, logs.String(), `"build_id":"`+id.String()+`"`)
	require.Contains(t, logs.String(), `"msg":"recipe built"`)
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { recipe.WithLogger(nil) })
	require.Panics(t, func() { recipe.WithWorkers(0) })
	require.Panics(t, func() { recipe.WithLatticeObserver(nil) })
	require.Panics(t, func() { recipe.WithSolverObserver(nil) })
	require.Panics(t, func() { recipe.WithCellObserver(nil) })
	require.Panics(t, func() { recipe.WithClock(nil) })
}
