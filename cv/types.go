package cv

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/Wjh70301/ensembleEN/descent"
)

var (
	// ErrNilMatrix indicates a nil standardized design was supplied.
	ErrNilMatrix = errors.New("cv: design matrix is nil")

	// ErrShapeMismatch indicates the response length differs from the
	// design row count.
	ErrShapeMismatch = errors.New("cv: design/response shape mismatch")

	// ErrBadFolds indicates a fold count outside [2, n].
	ErrBadFolds = errors.New("cv: number of folds must be in [2, rows]")

	// ErrBadThreads indicates a non-positive worker count.
	ErrBadThreads = errors.New("cv: number of threads must be positive")

	// ErrEmptyGrid indicates an empty penalty grid.
	ErrEmptyGrid = errors.New("cv: penalty grids must be non-empty")
)

// Fold is a contiguous held-out block [Lo, Hi) of the pre-shuffled rows.
type Fold struct {
	Lo, Hi int
}

// Len returns the number of held-out rows.
func (f Fold) Len() int { return f.Hi - f.Lo }

// Job describes one full cross-validation sweep.
//
// X and Y must already be shuffled, standardized and centered; they are
// shared read-only across fold workers.
type Job struct {
	X *mat.Dense
	Y []float64

	Groups           int
	LambdasSparsity  []float64 // descending
	LambdasDiversity []float64 // non-decreasing, first entry may be 0

	NumFolds   int
	NumThreads int

	Opts descent.Options
}

// Result is the averaged squared-error surface over both grids.
type Result struct {
	// MSE[d][s] is the cross-validated mean squared error at diversity
	// index d and sparsity index s.
	MSE [][]float64

	// NonConverged counts (fold, λ-pair) solves that hit MaxIter.
	NonConverged int
}

// Optimum identifies the jointly best grid point.
type Optimum struct {
	DiversityIndex int
	SparsityIndex  int
	CVOpt          float64
}
