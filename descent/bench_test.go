package descent_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Wjh70301/ensembleEN/descent"
	"github.com/Wjh70301/ensembleEN/lambda"
)

// benchmarkPath solves a full sparsity path on a deterministic n×p design
// with the given ensemble size. It resets the timer after setup.
func benchmarkPath(b *testing.B, n, p, groups int) {
	// Deterministic pseudo-random design, then center/scale by hand.
	raw := make([]float64, n*p)
	state := uint64(42)
	for i := range raw {
		state = state*6364136223846793005 + 1442695040888963407
		raw[i] = float64(state>>11)/float64(1<<53) - 0.5
	}
	xs := mat.NewDense(n, p, raw)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, xs)
		var mean float64
		for _, v := range col {
			mean += v
		}
		mean /= float64(n)
		var ss float64
		for i := range col {
			col[i] -= mean
			ss += col[i] * col[i]
		}
		sd := math.Sqrt(ss / float64(n))
		for i := range col {
			col[i] /= sd
		}
		xs.SetCol(j, col)
	}
	yc := make([]float64, n)
	for i := 0; i < n; i++ {
		yc[i] = 2*xs.At(i, 0) - 1.5*xs.At(i, 1) + 0.5*xs.At(i, p-1)
	}

	pr, err := descent.NewProblem(xs, yc, groups, descent.DefaultOptions())
	if err != nil {
		b.Fatalf("NewProblem failed: %v", err)
	}
	max, err := lambda.SparsityMax(xs, yc, 1)
	if err != nil {
		b.Fatalf("SparsityMax failed: %v", err)
	}
	grid, err := lambda.SparsityGrid(max, 50)
	if err != nil {
		b.Fatalf("SparsityGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pr.SolvePath(grid, 0.1); err != nil {
			b.Fatalf("SolvePath failed: %v", err)
		}
	}
}

func BenchmarkSolvePath_100x20_G5(b *testing.B)  { benchmarkPath(b, 100, 20, 5) }
func BenchmarkSolvePath_200x50_G10(b *testing.B) { benchmarkPath(b, 200, 50, 10) }
