package cv_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Wjh70301/ensembleEN/cv"
	"github.com/Wjh70301/ensembleEN/descent"
	"github.com/Wjh70301/ensembleEN/lambda"
	"github.com/Wjh70301/ensembleEN/scaling"
)

// TestSplit_Contiguous verifies fold sizes, coverage and the remainder
// being absorbed by the last fold.
func TestSplit_Contiguous(t *testing.T) {
	folds, err := cv.Split(23, 4)
	require.NoError(t, err)
	require.Len(t, folds, 4)

	assert.Equal(t, cv.Fold{Lo: 0, Hi: 5}, folds[0])
	assert.Equal(t, cv.Fold{Lo: 5, Hi: 10}, folds[1])
	assert.Equal(t, cv.Fold{Lo: 10, Hi: 15}, folds[2])
	assert.Equal(t, cv.Fold{Lo: 15, Hi: 23}, folds[3], "last fold absorbs the remainder")

	total := 0
	for _, f := range folds {
		total += f.Len()
	}
	assert.Equal(t, 23, total)
}

// TestSplit_Sentinels covers out-of-range fold counts.
func TestSplit_Sentinels(t *testing.T) {
	_, err := cv.Split(10, 1)
	assert.ErrorIs(t, err, cv.ErrBadFolds)
	_, err = cv.Split(10, 11)
	assert.ErrorIs(t, err, cv.ErrBadFolds)
}

// testJob builds a deterministic standardized CV job: 24 rows, 3 features,
// y driven by the first feature only.
func testJob(t *testing.T, threads int) cv.Job {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	n, p := 24, 3
	raw := make([]float64, n*p)
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}
	x := mat.NewDense(n, p, raw)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = 2*x.At(i, 0) + 0.1*rng.NormFloat64()
	}

	xs, yc, _, err := scaling.Standardize(x, y)
	require.NoError(t, err)
	max, err := lambda.SparsityMax(xs, yc, 1)
	require.NoError(t, err)
	lamS, err := lambda.SparsityGrid(max, 15)
	require.NoError(t, err)
	lamD, err := lambda.DiversityGrid(xs, yc, 4)
	require.NoError(t, err)

	return cv.Job{
		X:                xs,
		Y:                yc,
		Groups:           3,
		LambdasSparsity:  lamS,
		LambdasDiversity: lamD,
		NumFolds:         4,
		NumThreads:       threads,
		Opts:             descent.DefaultOptions(),
	}
}

// TestRun_Sentinels verifies the job input contract.
func TestRun_Sentinels(t *testing.T) {
	job := testJob(t, 1)

	bad := job
	bad.X = nil
	_, err := cv.Run(bad)
	assert.ErrorIs(t, err, cv.ErrNilMatrix)

	bad = job
	bad.Y = bad.Y[:3]
	_, err = cv.Run(bad)
	assert.ErrorIs(t, err, cv.ErrShapeMismatch)

	bad = job
	bad.LambdasDiversity = nil
	_, err = cv.Run(bad)
	assert.ErrorIs(t, err, cv.ErrEmptyGrid)

	bad = job
	bad.NumThreads = 0
	_, err = cv.Run(bad)
	assert.ErrorIs(t, err, cv.ErrBadThreads)

	bad = job
	bad.NumFolds = 1
	_, err = cv.Run(bad)
	assert.ErrorIs(t, err, cv.ErrBadFolds)
}

// TestRun_SurfaceShape verifies the surface dimensions and positivity.
func TestRun_SurfaceShape(t *testing.T) {
	job := testJob(t, 1)
	res, err := cv.Run(job)
	require.NoError(t, err)

	require.Len(t, res.MSE, len(job.LambdasDiversity))
	for _, row := range res.MSE {
		require.Len(t, row, len(job.LambdasSparsity))
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}

// TestRun_ThreadCountInvariant fixes the reproducibility contract:
// the surface and the selected optimum must not depend on NumThreads.
func TestRun_ThreadCountInvariant(t *testing.T) {
	base, err := cv.Run(testJob(t, 1))
	require.NoError(t, err)

	for _, threads := range []int{2, 4} {
		res, err := cv.Run(testJob(t, threads))
		require.NoError(t, err)
		assert.Equal(t, base.MSE, res.MSE, "surface must be identical with %d threads", threads)
		assert.Equal(t, base.Select(), res.Select())
	}
}

// TestResult_SelectTieBreak verifies that equal errors prefer the larger
// sparsity penalty (smaller index on the descending grid) and that the
// global minimum wins across diversity rows.
func TestResult_SelectTieBreak(t *testing.T) {
	res := &cv.Result{MSE: [][]float64{
		{0.5, 0.4, 0.4},
		{0.6, 0.3, 0.3},
	}}

	opt := res.Select()
	assert.Equal(t, 1, opt.DiversityIndex)
	assert.Equal(t, 1, opt.SparsityIndex, "tie at 0.3 must keep the more regularized point")
	assert.Equal(t, 0.3, opt.CVOpt)
}

// TestResult_Curves verifies the row/column curve extractors.
func TestResult_Curves(t *testing.T) {
	res := &cv.Result{MSE: [][]float64{
		{1, 2},
		{3, 4},
	}}

	assert.Equal(t, []float64{3, 4}, res.SparsityCurve(1))
	assert.Equal(t, []float64{2, 4}, res.DiversityCurve(1))
}
