package descent

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Default solver controls. These mirror the documented defaults of the
// public fitting surface; DefaultOptions is the single source of truth.
const (
	// DefaultAlpha mixes the elastic-net penalty: 1 is pure L1 (lasso).
	DefaultAlpha = 1.0

	// DefaultTol stops a solve once no coefficient moved by more than this
	// across one full cycle over all groups and features.
	DefaultTol = 1e-7

	// DefaultMaxIter bounds the number of full cycles per solve.
	DefaultMaxIter = 100000
)

var (
	// ErrNilMatrix indicates a nil standardized design was supplied.
	ErrNilMatrix = errors.New("descent: design matrix is nil")

	// ErrShapeMismatch indicates the response length does not match the
	// design row count, or the design is empty.
	ErrShapeMismatch = errors.New("descent: design/response shape mismatch")

	// ErrBadGroups indicates a non-positive ensemble size.
	ErrBadGroups = errors.New("descent: number of groups must be positive")

	// ErrBadAlpha indicates an elastic-net mixing value outside (0, 1].
	ErrBadAlpha = errors.New("descent: alpha must be in (0, 1]")

	// ErrBadTol indicates a convergence tolerance outside (0, 1).
	ErrBadTol = errors.New("descent: tolerance must be in (0, 1)")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("descent: max iterations must be positive")

	// ErrBadLambda indicates a negative penalty value.
	ErrBadLambda = errors.New("descent: penalty values must be non-negative")

	// ErrEmptyGrid indicates an empty sparsity grid was passed to SolvePath.
	ErrEmptyGrid = errors.New("descent: sparsity grid must be non-empty")

	// ErrBadWarmStart indicates a warm-start tensor whose shape does not
	// match (groups, features).
	ErrBadWarmStart = errors.New("descent: warm start shape mismatch")
)

// Options controls a single ensemble solve.
//
// Alpha   – elastic-net mixing in (0, 1]; 1 = lasso, →0 = ridge-like.
// Tol     – convergence threshold on the max coefficient change per cycle.
// MaxIter – cap on full cycles; hitting it flags Point.Converged=false.
type Options struct {
	Alpha   float64
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Alpha:   DefaultAlpha,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
	}
}

// validate checks option ranges; sentinels only, no panics.
func (o Options) validate() error {
	if o.Alpha <= 0 || o.Alpha > 1 {
		return ErrBadAlpha
	}
	if o.Tol <= 0 || o.Tol >= 1 {
		return ErrBadTol
	}
	if o.MaxIter < 1 {
		return ErrBadMaxIter
	}

	return nil
}

// Point is the solution of one (λS, λD) solve.
type Point struct {
	// Beta holds the fitted coefficients, groups × features.
	Beta [][]float64

	// Converged reports whether the tolerance was reached before MaxIter.
	Converged bool

	// Iters is the number of full cycles performed.
	Iters int
}

// Path is a warm-started sweep along a descending sparsity grid at a
// fixed diversity penalty.
type Path struct {
	// LambdaSparsity is the grid the path was solved on (descending).
	LambdaSparsity []float64

	// LambdaDiversity is the fixed diversity penalty of this path.
	LambdaDiversity float64

	// Betas holds one p×G coefficient matrix per grid point, in
	// standardized space.
	Betas []*mat.Dense

	// Converged flags each grid point; NonConverged counts the failures.
	Converged    []bool
	NonConverged int
}

// Average returns the ensemble-averaged coefficient vector (length p) at
// grid point l. Averaging across the group dimension is what turns the
// ensemble into a single predictive model.
func (pa *Path) Average(l int) []float64 {
	p, g := pa.Betas[l].Dims()
	avg := make([]float64, p)
	inv := 1 / float64(g)
	for j := 0; j < p; j++ {
		var s float64
		for k := 0; k < g; k++ {
			s += pa.Betas[l].At(j, k)
		}
		avg[j] = s * inv
	}

	return avg
}
