// Package ensemble: functional configuration for Fit.
// Defaults are constants (single source of truth); setters only record
// values, and validateAll rejects out-of-range settings with sentinels
// before any computation starts.
package ensemble

// DEFAULTS - these constants MUST reflect the behavior of gatherOptions.
const (
	// DefaultNumLambdasSparsity is the sparsity grid size.
	DefaultNumLambdasSparsity = 100

	// DefaultNumLambdasDiversity is the diversity grid size.
	DefaultNumLambdasDiversity = 100

	// DefaultAlpha is the elastic-net mixing value (pure lasso).
	DefaultAlpha = 1.0

	// DefaultNumGroups is the ensemble size.
	DefaultNumGroups = 10

	// DefaultTolerance is the coordinate-descent convergence threshold.
	DefaultTolerance = 1e-7

	// DefaultMaxIter caps full descent cycles per solve.
	DefaultMaxIter = 100000

	// DefaultNumFolds is the cross-validation fold count.
	DefaultNumFolds = 10

	// DefaultNumThreads bounds concurrent fold workers.
	DefaultNumThreads = 1

	// DefaultSeed drives the initial row shuffle when no explicit
	// permutation is supplied.
	DefaultSeed = 1
)

// Option mutates fit options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective fit configuration. Fields are unexported;
// public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	numLambdasSparsity  int
	numLambdasDiversity int
	alpha               float64
	numGroups           int
	tolerance           float64
	maxIter             int
	numFolds            int
	numThreads          int

	seed        int64
	shuffle     bool
	permutation []int
}

// WithNumLambdasSparsity sets the sparsity grid size.
func WithNumLambdasSparsity(n int) Option {
	return func(o *Options) { o.numLambdasSparsity = n }
}

// WithNumLambdasDiversity sets the diversity grid size.
func WithNumLambdasDiversity(n int) Option {
	return func(o *Options) { o.numLambdasDiversity = n }
}

// WithAlpha sets the elastic-net mixing value; 1 is pure L1, values
// toward 0 add L2 shrinkage. Must lie in (0, 1].
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.alpha = alpha }
}

// WithNumGroups sets the ensemble size G.
func WithNumGroups(g int) Option {
	return func(o *Options) { o.numGroups = g }
}

// WithTolerance sets the convergence threshold on the maximum coefficient
// change per descent cycle. Must lie in (0, 1).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIter caps the number of full descent cycles per solve. Hitting
// the cap is reported on the fitted object, not an error.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithNumFolds sets the cross-validation fold count (within [2, rows]).
func WithNumFolds(k int) Option {
	return func(o *Options) { o.numFolds = k }
}

// WithNumThreads bounds the number of folds processed concurrently.
func WithNumThreads(n int) Option {
	return func(o *Options) { o.numThreads = n }
}

// WithSeed seeds the initial row shuffle. Fits with the same data, seed
// and options are reproducible regardless of thread count.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.shuffle = true
		o.permutation = nil
	}
}

// WithPermutation supplies the row order explicitly instead of shuffling.
// perm must be a permutation of 0..n-1; it is copied, not aliased.
func WithPermutation(perm []int) Option {
	return func(o *Options) {
		o.permutation = append([]int(nil), perm...)
		o.shuffle = false
	}
}

// WithoutShuffle keeps the input row order as-is. Intended for tests and
// for callers that have already decorrelated row order themselves.
func WithoutShuffle() Option {
	return func(o *Options) {
		o.shuffle = false
		o.permutation = nil
	}
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		numLambdasSparsity:  DefaultNumLambdasSparsity,
		numLambdasDiversity: DefaultNumLambdasDiversity,
		alpha:               DefaultAlpha,
		numGroups:           DefaultNumGroups,
		tolerance:           DefaultTolerance,
		maxIter:             DefaultMaxIter,
		numFolds:            DefaultNumFolds,
		numThreads:          DefaultNumThreads,
		seed:                DefaultSeed,
		shuffle:             true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
