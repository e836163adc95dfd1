package descent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wjh70301/ensembleEN/descent"
	"github.com/Wjh70301/ensembleEN/lambda"
)

// TestSolvePath_EmptyGrid verifies the empty-grid sentinel.
func TestSolvePath_EmptyGrid(t *testing.T) {
	pr := orthoProblem(t, 2, descent.DefaultOptions())
	_, err := pr.SolvePath(nil, 0)
	assert.ErrorIs(t, err, descent.ErrEmptyGrid)
}

// TestSolvePath_ZeroAtLambdaMax verifies the closed-form grid maximum:
// at lambda-max every coefficient of every group is exactly zero.
func TestSolvePath_ZeroAtLambdaMax(t *testing.T) {
	pr := orthoProblem(t, 3, descent.DefaultOptions())

	// x1'y/n == 2 on this fixture, so lambda-max == 2 at alpha == 1.
	grid, err := lambda.SparsityGrid(2.0, 5)
	require.NoError(t, err)

	pa, err := pr.SolvePath(grid, 0.3)
	require.NoError(t, err)

	p, g := pa.Betas[0].Dims()
	for j := 0; j < p; j++ {
		for k := 0; k < g; k++ {
			assert.Equal(t, 0.0, pa.Betas[0].At(j, k), "lambda-max point must be exactly zero")
		}
	}
}

// TestSolvePath_L1Monotone verifies that moving toward larger sparsity
// penalties never grows any group's L1 norm.
func TestSolvePath_L1Monotone(t *testing.T) {
	pr := correlatedProblem(t, 3, descent.DefaultOptions())

	grid, err := lambda.SparsityGrid(2.5, 20)
	require.NoError(t, err)

	pa, err := pr.SolvePath(grid, 0)
	require.NoError(t, err)
	require.Zero(t, pa.NonConverged)

	p, g := pa.Betas[0].Dims()
	prev := make([]float64, g)
	for l := 0; l < len(grid); l++ {
		for k := 0; k < g; k++ {
			var l1 float64
			for j := 0; j < p; j++ {
				l1 += math.Abs(pa.Betas[l].At(j, k))
			}
			if l > 0 {
				assert.GreaterOrEqual(t, l1+1e-9, prev[k],
					"L1 norm of group %d must not shrink as lambda decreases (index %d)", k, l)
			}
			prev[k] = l1
		}
	}
}

// TestSolvePath_FiniteAndFlagged verifies finiteness of the whole tensor
// and agreement between the per-point flags and the counter.
func TestSolvePath_FiniteAndFlagged(t *testing.T) {
	pr := correlatedProblem(t, 2, descent.DefaultOptions())

	grid, err := lambda.SparsityGrid(1.0, 12)
	require.NoError(t, err)

	pa, err := pr.SolvePath(grid, 0.05)
	require.NoError(t, err)
	require.Len(t, pa.Betas, 12)
	require.Len(t, pa.Converged, 12)

	bad := 0
	for l, b := range pa.Betas {
		p, g := b.Dims()
		for j := 0; j < p; j++ {
			for k := 0; k < g; k++ {
				v := b.At(j, k)
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite beta at (%d,%d,%d)", j, k, l)
			}
		}
		if !pa.Converged[l] {
			bad++
		}
	}
	assert.Equal(t, bad, pa.NonConverged)
}

// TestPath_Average pins the group averaging used for prediction.
func TestPath_Average(t *testing.T) {
	pr := orthoProblem(t, 4, descent.DefaultOptions())

	pa, err := pr.SolvePath([]float64{0.5}, 0)
	require.NoError(t, err)

	avg := pa.Average(0)
	require.Len(t, avg, 2)
	// All four decoupled groups solve to (1.5, 0); the mean must too.
	assert.InDelta(t, 1.5, avg[0], 1e-9)
	assert.InDelta(t, 0.0, avg[1], 1e-12)
}
