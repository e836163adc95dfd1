package ensemble

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/Wjh70301/ensembleEN/cv"
	"github.com/Wjh70301/ensembleEN/descent"
	"github.com/Wjh70301/ensembleEN/lambda"
	"github.com/Wjh70301/ensembleEN/scaling"
)

// Fit trains a diversity-penalized elastic-net ensemble on (x, y) and
// selects both penalty strengths by k-fold cross-validation.
//
// Pipeline:
//  1. validate the input contract (sentinels, before any computation);
//  2. shuffle rows once (seeded, or a caller-supplied permutation) to
//     decorrelate fold assignment from input order;
//  3. standardize the design and center the response — shared read-only
//     by every fold worker;
//  4. build the sparsity and diversity grids;
//  5. cross-validate the full grid, folds in parallel;
//  6. refit on all rows across the sparsity grid at the optimal diversity
//     penalty, and map the path back to the original scale.
//
// The returned object is never mutated afterwards. Solver non-convergence
// is reported on it (NonConverged, RefitConverged), not raised as an
// error; x and y are left untouched.
//
// Complexity: dominated by cross-validation,
// O(numLambdasDiversity · numFolds/numThreads · path-solve).
func Fit(x *mat.Dense, y []float64, opts ...Option) (*Fitted, error) {
	o := gatherOptions(opts...)
	n, p, err := validateAll(x, y, o)
	if err != nil {
		return nil, err
	}

	xsh, ysh := permuteRows(x, y, rowOrder(o, n))

	xs, yc, moments, err := scaling.Standardize(xsh, ysh)
	if err != nil {
		return nil, err
	}

	lamMax, err := lambda.SparsityMax(xs, yc, o.alpha)
	if err != nil {
		return nil, err
	}
	lamsS, err := lambda.SparsityGrid(lamMax, o.numLambdasSparsity)
	if err != nil {
		return nil, err
	}
	lamsD, err := lambda.DiversityGrid(xs, yc, o.numLambdasDiversity)
	if err != nil {
		return nil, err
	}

	dopts := descent.Options{Alpha: o.alpha, Tol: o.tolerance, MaxIter: o.maxIter}
	res, err := cv.Run(cv.Job{
		X:                xs,
		Y:                yc,
		Groups:           o.numGroups,
		LambdasSparsity:  lamsS,
		LambdasDiversity: lamsD,
		NumFolds:         o.numFolds,
		NumThreads:       o.numThreads,
		Opts:             dopts,
	})
	if err != nil {
		return nil, err
	}
	opt := res.Select()

	// One more solve on the full data at the selected diversity penalty
	// produces the output path.
	prob, err := descent.NewProblem(xs, yc, o.numGroups, dopts)
	if err != nil {
		return nil, err
	}
	path, err := prob.SolvePath(lamsS, lamsD[opt.DiversityIndex])
	if err != nil {
		return nil, err
	}

	betas, intercepts := restore(path, moments, p, o.numGroups)

	return &Fitted{
		Betas:              betas,
		Intercepts:         intercepts,
		LambdasSparsity:    lamsS,
		LambdasDiversity:   lamsD,
		CVMSESparsity:      res.SparsityCurve(opt.DiversityIndex),
		CVMSEDiversity:     res.DiversityCurve(opt.SparsityIndex),
		IndexOpt:           opt.SparsityIndex,
		LambdaSparsityOpt:  lamsS[opt.SparsityIndex],
		LambdaDiversityOpt: lamsD[opt.DiversityIndex],
		CVOpt:              opt.CVOpt,
		NonConverged:       res.NonConverged,
		RefitConverged:     path.NonConverged == 0,
		numFeatures:        p,
		numGroups:          o.numGroups,
	}, nil
}

// rowOrder resolves the fitting permutation: caller-supplied, seeded
// shuffle, or identity. Randomness is local and seeded — never global.
func rowOrder(o Options, n int) []int {
	if o.permutation != nil {
		return o.permutation
	}
	if o.shuffle {
		return rand.New(rand.NewSource(o.seed)).Perm(n)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}

// permuteRows copies x and y into the given row order.
func permuteRows(x *mat.Dense, y []float64, order []int) (*mat.Dense, []float64) {
	n, p := x.Dims()
	xsh := mat.NewDense(n, p, nil)
	ysh := make([]float64, n)

	row := make([]float64, p)
	for dst, src := range order {
		mat.Row(row, src, x)
		xsh.SetRow(dst, row)
		ysh[dst] = y[src]
	}

	return xsh, ysh
}

// restore maps a standardized-space path back to the original scale:
// per-column unscaling plus the analytic intercept (nothing re-estimated).
func restore(path *descent.Path, m scaling.Moments, p, groups int) ([]*mat.Dense, [][]float64) {
	betas := make([]*mat.Dense, len(path.Betas))
	intercepts := make([][]float64, len(path.Betas))

	betaStd := make([]float64, p)
	for l, std := range path.Betas {
		b := mat.NewDense(p, groups, nil)
		b0 := make([]float64, groups)
		for g := 0; g < groups; g++ {
			mat.Col(betaStd, g, std)
			beta := m.Unscale(betaStd)
			b.SetCol(g, beta)
			b0[g] = m.Intercept(beta)
		}
		betas[l] = b
		intercepts[l] = b0
	}

	return betas, intercepts
}
