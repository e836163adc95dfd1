package ensemble

import "gonum.org/v1/gonum/mat"

// Fitted is the immutable result of Fit.
//
// The coefficient path lives on the original (pre-standardization) scale:
// Betas[l] is a p×G matrix of per-feature, per-group coefficients at the
// l-th sparsity level, solved at the CV-optimal diversity penalty, and
// Intercepts[l][g] is the matching analytically derived intercept.
//
// IndexOpt is the 0-based position of the CV-optimal sparsity penalty in
// LambdasSparsity; Predict and Coefficients default to it.
type Fitted struct {
	// Betas holds one p×G coefficient matrix per sparsity level.
	Betas []*mat.Dense

	// Intercepts holds one intercept per (level, group).
	Intercepts [][]float64

	// LambdasSparsity is the descending sparsity grid (length L).
	LambdasSparsity []float64

	// LambdasDiversity is the non-decreasing diversity grid.
	LambdasDiversity []float64

	// CVMSESparsity is the CV curve over the sparsity grid at the optimal
	// diversity penalty; CVMSEDiversity is the curve over the diversity
	// grid at the optimal sparsity penalty.
	CVMSESparsity  []float64
	CVMSEDiversity []float64

	// IndexOpt, LambdaSparsityOpt, LambdaDiversityOpt and CVOpt identify
	// the jointly optimal grid point and its cross-validated error.
	IndexOpt           int
	LambdaSparsityOpt  float64
	LambdaDiversityOpt float64
	CVOpt              float64

	// NonConverged counts cross-validation solves that hit the iteration
	// cap; RefitConverged reports the final full-data path. Diagnostics
	// only — non-convergence never aborts a fit.
	NonConverged   int
	RefitConverged bool

	numFeatures int
	numGroups   int
}

// NumFeatures returns p, the number of design columns the model was fit on.
func (f *Fitted) NumFeatures() int { return f.numFeatures }

// NumGroups returns the ensemble size G.
func (f *Fitted) NumGroups() int { return f.numGroups }

// Len returns L, the number of sparsity levels on the fitted path.
func (f *Fitted) Len() int { return len(f.LambdasSparsity) }
