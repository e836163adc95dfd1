// Package ensemble: sentinel error set.
// All validation failures return these sentinels and tests match them via
// errors.Is. No function panics on user input.
package ensemble

import "errors"

var (
	// ErrNilMatrix is returned when the design (or prediction) matrix is nil.
	ErrNilMatrix = errors.New("ensemble: matrix is nil")

	// ErrBadShape is returned when a matrix has no rows or no columns.
	ErrBadShape = errors.New("ensemble: matrix must have positive dimensions")

	// ErrDimensionMismatch is returned when the response length differs
	// from the design row count, or a prediction matrix's column count
	// differs from the number of fitted features.
	ErrDimensionMismatch = errors.New("ensemble: dimension mismatch between inputs")

	// ErrNaNInf is returned when the design or response contains NaN or ±Inf.
	ErrNaNInf = errors.New("ensemble: input contains NaN or Inf")

	// ErrBadAlpha is returned for an elastic-net mixing value outside (0, 1].
	ErrBadAlpha = errors.New("ensemble: alpha must be in (0, 1]")

	// ErrBadTolerance is returned for a convergence tolerance outside (0, 1).
	ErrBadTolerance = errors.New("ensemble: tolerance must be in (0, 1)")

	// ErrBadLambdaCount is returned for non-positive penalty grid sizes.
	ErrBadLambdaCount = errors.New("ensemble: lambda grid sizes must be positive")

	// ErrBadGroups is returned for a non-positive ensemble size.
	ErrBadGroups = errors.New("ensemble: number of groups must be positive")

	// ErrBadMaxIter is returned for a non-positive iteration cap.
	ErrBadMaxIter = errors.New("ensemble: max iterations must be positive")

	// ErrBadFolds is returned for a fold count outside [2, rows].
	ErrBadFolds = errors.New("ensemble: number of folds must be in [2, rows]")

	// ErrBadThreads is returned for a non-positive thread count.
	ErrBadThreads = errors.New("ensemble: number of threads must be positive")

	// ErrBadPermutation is returned when a user-supplied row permutation is
	// not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("ensemble: permutation must rearrange exactly the input rows")

	// ErrIndexOutOfRange is returned when a requested sparsity index falls
	// outside the fitted path. Indices are never clamped.
	ErrIndexOutOfRange = errors.New("ensemble: sparsity index out of range")
)
