package geom_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lattix/geom"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestBasis_InverseRoundTrip(t *testing.T) {
	b := geom.BasisFromRows([3][3]float64{{2, 0, 0}, {1, 3, 0}, {0.5, 0.25, 4}})
	inv, err := b.Inverse(geom.SingularTolerance)
	require.NoError(t, err)

	got := b.Mul(inv).Rows()
	want := geom.Identity().Rows()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("B·B⁻¹ mismatch (-want +got):\n%s", diff)
	}
}

func TestBasis_InverseSingular(t *testing.T) {
	b := geom.BasisFromRows([3][3]float64{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}})
	_, err := b.Inverse(geom.SingularTolerance)
	require.ErrorIs(t, err, geom.ErrSingular)
}

func TestBasis_ApplyAndMulVec(t *testing.T) {
	b := geom.BasisFromRows([3][3]float64{{1, 2, 3}, {0, 1, 0}, {0, 0, 2}})
	c := r3.Vec{X: 1, Y: 1, Z: 1}
	require.Equal(t, r3.Vec{X: 1, Y: 3, Z: 5}, b.Apply(c))
	require.Equal(t, r3.Vec{X: 6, Y: 1, Z: 2}, b.MulVec(c))
	require.Equal(t, b.Apply(c), b.Transpose().MulVec(c))
	require.InDelta(t, 2.0, b.Det(), 1e-12)
}

func TestRotateVectors_QuarterTurn(t *testing.T) {
	got := geom.RotateVectors(math.Pi/2, geom.ZAxis, geom.Identity()).Round(10)
	want := geom.BasisFromRows([3][3]float64{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}})
	require.Equal(t, want, got)
}

func TestRotationBetween(t *testing.T) {
	cases := []struct {
		name     string
		from, to r3.Vec
		angle    float64
	}{
		{"parallel", r3.Vec{Z: 2}, geom.ZAxis, 0},
		{"orthogonal", geom.XAxis, geom.ZAxis, math.Pi / 2},
		{"antiparallel", r3.Vec{Z: -1}, geom.ZAxis, math.Pi},
		{"body diagonal", r3.Vec{X: 1, Y: 1, Z: 1}, geom.ZAxis, math.Acos(1 / math.Sqrt(3))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			angle, axis := geom.RotationBetween(tc.from, tc.to)
			require.InDelta(t, tc.angle, angle, 1e-12)
			rotated := r3.Rotate(r3.Unit(tc.from), angle, axis)
			if diff := cmp.Diff(r3.Unit(tc.to), rotated, approx); diff != "" {
				t.Fatalf("rotation does not carry from onto to:\n%s", diff)
			}
		})
	}
}

func TestAlignedBasis_MapsDirectionToZ(t *testing.T) {
	dir := r3.Vec{X: 1, Y: 1, Z: 1}
	b, err := geom.AlignedBasis(dir)
	require.NoError(t, err)
	// The crystal direction expressed through the rotated axes lands on z.
	got := r3.Unit(b.Apply(dir))
	if diff := cmp.Diff(geom.ZAxis, got, approx); diff != "" {
		t.Fatalf("aligned basis mismatch:\n%s", diff)
	}
	_, err = geom.AlignedBasis(r3.Vec{})
	require.ErrorIs(t, err, geom.ErrZeroAxis)
}

func TestReduceAxis(t *testing.T) {
	got, err := geom.ReduceAxis([3]int{2, -4, 6})
	require.NoError(t, err)
	require.Equal(t, [3]int{1, -2, 3}, got)

	_, err = geom.ReduceAxis([3]int{})
	require.ErrorIs(t, err, geom.ErrZeroAxis)
}

func TestRound(t *testing.T) {
	require.Equal(t, 0.12346, geom.Round(0.123456, 5))
	require.Equal(t, 0.0, geom.Round(-1e-12, 8))
	require.False(t, math.Signbit(geom.Round(-1e-12, 8)))
	require.Equal(t, [3]float64{1, 0, -2.5}, geom.Key(r3.Vec{X: 1.0000000001, Y: -0.0000000001, Z: -2.5}, 8))
}

func TestOnPlane(t *testing.T) {
	n := r3.Vec{X: 2}
	require.True(t, geom.OnPlane(r3.Vec{X: 1, Y: 5}, n, 2, 1e-9))
	require.False(t, geom.OnPlane(r3.Vec{X: 1.1}, n, 2, 1e-9))
	require.InDelta(t, -0.5, geom.PlaneDistance(r3.Vec{X: 0.5}, n, 2), 1e-12)
}

func TestQuaternionFromBasis(t *testing.T) {
	q := geom.QuaternionFromBasis(geom.Identity())
	require.InDelta(t, 1.0, q.Real, 1e-12)

	rotated := geom.RotateVectors(math.Pi/3, geom.ZAxis, geom.Identity())
	q = geom.QuaternionFromBasis(rotated)
	// Rows rotated by +θ means the frame rotates by +θ about z.
	require.InDelta(t, math.Cos(math.Pi/6), q.Real, 1e-12)
	require.InDelta(t, math.Sin(math.Pi/6), math.Abs(q.Kmag), 1e-12)
}

func TestCubicEquivalent_CollapsesSymmetryVariants(t *testing.T) {
	base := geom.RotateVectors(0.2, r3.Vec{X: 1, Y: 2, Z: 3}, geom.Identity())
	want := geom.CubicEquivalent(geom.QuaternionFromBasis(base))

	// Applying a 90° cube-axis turn in the crystal frame first yields the same
	// physical orientation.
	variant := geom.RotateVectors(0.2, r3.Vec{X: 1, Y: 2, Z: 3}, geom.RotateVectors(math.Pi/2, geom.XAxis, geom.Identity()))
	got := geom.CubicEquivalent(geom.QuaternionFromBasis(variant))
	require.InDelta(t, want.Real, got.Real, 1e-9)
	require.InDelta(t, want.Imag, got.Imag, 1e-9)
	require.InDelta(t, want.Jmag, got.Jmag, 1e-9)
	require.InDelta(t, want.Kmag, got.Kmag, 1e-9)

	require.InDelta(t, math.Cos(0.1), got.Real, 1e-9)
}
