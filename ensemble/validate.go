// Package ensemble - input-contract validation shared by Fit.
//
// Deterministic, side-effect free checks that surface sentinel errors
// before any heavy computation. No logging, no panics on user input.
package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateAll verifies data + options and returns (n, p) on success.
//
// Stages:
//  1. design shape and response length;
//  2. finiteness scan of x and y (NaN/±Inf rejected);
//  3. hyperparameter ranges;
//  4. optional user permutation.
//
// Complexity: O(n·p).
func validateAll(x *mat.Dense, y []float64, o Options) (int, int, error) {
	// Stage 1: shape.
	if x == nil {
		return 0, 0, ErrNilMatrix
	}
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return 0, 0, ErrBadShape
	}
	if len(y) != n {
		return 0, 0, ErrDimensionMismatch
	}

	// Stage 2: finiteness.
	for i := 0; i < n; i++ {
		if !isFinite(y[i]) {
			return 0, 0, ErrNaNInf
		}
		for j := 0; j < p; j++ {
			if !isFinite(x.At(i, j)) {
				return 0, 0, ErrNaNInf
			}
		}
	}

	// Stage 3: hyperparameters.
	if err := validateOptions(o, n); err != nil {
		return 0, 0, err
	}

	// Stage 4: explicit permutation, when supplied.
	if o.permutation != nil {
		if err := validatePermutation(o.permutation, n); err != nil {
			return 0, 0, err
		}
	}

	return n, p, nil
}

// validateOptions checks hyperparameter ranges against the documented
// contract; n is needed only for the fold bound.
func validateOptions(o Options, n int) error {
	if o.alpha <= 0 || o.alpha > 1 {
		return ErrBadAlpha
	}
	if o.tolerance <= 0 || o.tolerance >= 1 {
		return ErrBadTolerance
	}
	if o.numLambdasSparsity < 1 || o.numLambdasDiversity < 1 {
		return ErrBadLambdaCount
	}
	if o.numGroups < 1 {
		return ErrBadGroups
	}
	if o.maxIter < 1 {
		return ErrBadMaxIter
	}
	if o.numFolds < 2 || o.numFolds > n {
		return ErrBadFolds
	}
	if o.numThreads < 1 {
		return ErrBadThreads
	}

	return nil
}

// validatePermutation enforces that perm rearranges exactly 0..n-1.
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, idx := range perm {
		if idx < 0 || idx >= n || seen[idx] {
			return ErrBadPermutation
		}
		seen[idx] = true
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
