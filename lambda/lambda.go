package lambda

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EpsRatio is the fixed ratio between the smallest and largest sparsity
// grid values: the grid spans [max·EpsRatio, max].
const EpsRatio = 1e-4

var (
	// ErrBadCount indicates a non-positive grid size was requested.
	ErrBadCount = errors.New("lambda: grid size must be positive")

	// ErrBadAlpha indicates alpha outside (0, 1].
	ErrBadAlpha = errors.New("lambda: alpha must be in (0, 1]")
)

// SparsityMax returns the smallest sparsity penalty that drives every
// coefficient of every group to exactly zero: max_j |x_j'y| / (n·alpha).
//
// xs must be standardized and yc centered; with all groups at zero the
// diversity term vanishes, so the bound is independent of the ensemble
// size and of lambda-diversity.
//
// Complexity: O(n·p).
func SparsityMax(xs *mat.Dense, yc []float64, alpha float64) (float64, error) {
	if alpha <= 0 || alpha > 1 {
		return 0, ErrBadAlpha
	}

	return gradientMax(xs, yc) / alpha, nil
}

// SparsityGrid returns count geometrically spaced values descending from
// max to max·EpsRatio. A single-point grid is just {max}.
func SparsityGrid(max float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	grid := make([]float64, count)
	grid[0] = max
	if count == 1 {
		return grid, nil
	}

	// Constant ratio r with r^(count-1) == EpsRatio.
	r := math.Pow(EpsRatio, 1/float64(count-1))
	for i := 1; i < count; i++ {
		grid[i] = grid[i-1] * r
	}

	return grid, nil
}

// DiversityGrid returns count values rising linearly from 0 to
// max_j |x_j'y| / n. The zero first entry decouples the groups entirely;
// every later entry applies strictly more cross-group pressure.
func DiversityGrid(xs *mat.Dense, yc []float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	grid := make([]float64, count)
	if count == 1 {
		return grid, nil
	}

	max := gradientMax(xs, yc)
	step := max / float64(count-1)
	for i := 1; i < count; i++ {
		grid[i] = step * float64(i)
	}

	return grid, nil
}

// gradientMax computes max_j |x_j'y| / n, the largest absolute coordinate
// of the least-squares gradient at beta = 0. It uses the same dot-product
// routine as the solver, so the all-zero solution at the grid maximum is
// exact, not approximate.
func gradientMax(xs *mat.Dense, yc []float64) float64 {
	n, p := xs.Dims()
	col := make([]float64, n)
	var max float64
	for j := 0; j < p; j++ {
		mat.Col(col, j, xs)
		if a := math.Abs(floats.Dot(col, yc)); a > max {
			max = a
		}
	}

	return max / float64(n)
}
