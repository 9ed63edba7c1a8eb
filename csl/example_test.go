package csl_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lattix/csl"
)

// ExampleSolver_Solve finds the Σ5 boundary about [001].
func ExampleSolver_Solve() {
	s, _ := csl.NewSolver([3]int{0, 0, 1})
	res, err := s.Solve(context.Background(), 5)
	fmt.Printf("Σ%d %.2f° %v\n", res.Sigma, res.RotationAngle*180/math.Pi, err)
	fmt.Printf("|v1|=%.4f |v2|=%.4f\n", res.Basis[0].X, res.Basis[1].Y)
	// Output:
	// Σ5 36.87° <nil>
	// |v1|=2.2361 |v2|=2.2361
}

// ExampleCubicTable lists the smallest angle of each low-Σ boundary about
// [111].
func ExampleCubicTable() {
	rows, _ := csl.CubicTable([3]int{1, 1, 1}, 13)
	last := 0
	for _, r := range rows {
		if r.Sigma == last {
			continue
		}
		last = r.Sigma
		fmt.Printf("Σ%d %.2f\n", r.Sigma, r.Degrees())
	}
	// Output:
	// Σ3 60.00
	// Σ7 38.21
	// Σ13 27.80
}
