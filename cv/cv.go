package cv

import (
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Wjh70301/ensembleEN/descent"
)

// Split partitions n pre-shuffled rows into k contiguous folds. Every
// fold holds ⌊n/k⌋ rows except the last, which absorbs the remainder.
//
// Complexity: O(k).
func Split(n, k int) ([]Fold, error) {
	if k < 2 || k > n {
		return nil, ErrBadFolds
	}
	size := n / k
	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		folds[i] = Fold{Lo: i * size, Hi: (i + 1) * size}
	}
	folds[k-1].Hi = n

	return folds, nil
}

// foldSlice is one fold's training view plus its held-out range.
type foldSlice struct {
	fold   Fold
	trainX *mat.Dense
	trainY []float64
}

// Run executes the full folds × diversity-grid sweep and returns the MSE
// surface. Diversity values are processed sequentially; within each, the
// folds run on a bounded pool of NumThreads workers. Fold error vectors
// are merged in fold-index order, keeping the surface independent of
// scheduling (best-effort bitwise reproducibility).
//
// Complexity: O(D · K/threads · path-solve) time; O(n·p) extra space per
// fold for the training copies, built once and reused across the sweep.
func Run(job Job) (*Result, error) {
	if err := job.validate(); err != nil {
		return nil, err
	}
	n, _ := job.X.Dims()

	folds, err := Split(n, job.NumFolds)
	if err != nil {
		return nil, err
	}
	slices := make([]foldSlice, len(folds))
	for i, f := range folds {
		slices[i] = carve(job.X, job.Y, f)
	}

	res := &Result{MSE: make([][]float64, len(job.LambdasDiversity))}
	numS := len(job.LambdasSparsity)

	for d, lamD := range job.LambdasDiversity {
		sse := make([][]float64, len(folds))
		ncs := make([]int, len(folds))
		errs := make([]error, len(folds))

		tasks := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < job.NumThreads; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for fi := range tasks {
					sse[fi], ncs[fi], errs[fi] = runFold(job, slices[fi], lamD)
				}
			}()
		}
		for fi := range folds {
			tasks <- fi
		}
		close(tasks)
		wg.Wait()

		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}

		// Deterministic reduction: fold-index order, then divide by n.
		row := make([]float64, numS)
		for fi := range folds {
			floats.Add(row, sse[fi])
			res.NonConverged += ncs[fi]
		}
		floats.Scale(1/float64(n), row)
		res.MSE[d] = row
	}

	return res, nil
}

// runFold trains a warm-started sparsity path on the fold's held-in rows
// and accumulates held-out squared error per sparsity index.
func runFold(job Job, fs foldSlice, lamD float64) ([]float64, int, error) {
	prob, err := descent.NewProblem(fs.trainX, fs.trainY, job.Groups, job.Opts)
	if err != nil {
		return nil, 0, err
	}
	path, err := prob.SolvePath(job.LambdasSparsity, lamD)
	if err != nil {
		return nil, 0, err
	}

	_, p := job.X.Dims()
	row := make([]float64, p)
	sse := make([]float64, len(job.LambdasSparsity))
	for l := range job.LambdasSparsity {
		avg := path.Average(l)
		for i := fs.fold.Lo; i < fs.fold.Hi; i++ {
			mat.Row(row, i, job.X)
			diff := job.Y[i] - floats.Dot(row, avg)
			sse[l] += diff * diff
		}
	}

	return sse, path.NonConverged, nil
}

// carve copies the rows outside f into a training design/response pair.
func carve(x *mat.Dense, y []float64, f Fold) foldSlice {
	n, p := x.Dims()
	m := n - f.Len()
	tx := mat.NewDense(m, p, nil)
	ty := make([]float64, m)

	row := make([]float64, p)
	out := 0
	for i := 0; i < n; i++ {
		if i >= f.Lo && i < f.Hi {
			continue
		}
		mat.Row(row, i, x)
		tx.SetRow(out, row)
		ty[out] = y[i]
		out++
	}

	return foldSlice{fold: f, trainX: tx, trainY: ty}
}

// validate checks the job's input contract; sentinels only.
func (j Job) validate() error {
	if j.X == nil {
		return ErrNilMatrix
	}
	n, _ := j.X.Dims()
	if len(j.Y) != n {
		return ErrShapeMismatch
	}
	if len(j.LambdasSparsity) == 0 || len(j.LambdasDiversity) == 0 {
		return ErrEmptyGrid
	}
	if j.NumFolds < 2 || j.NumFolds > n {
		return ErrBadFolds
	}
	if j.NumThreads < 1 {
		return ErrBadThreads
	}

	return nil
}

// Select returns the surface's global minimum. Scanning sparsity indices
// in ascending order with a strict comparison implements the tie-break:
// on the descending grid a smaller index is a larger penalty, and ties
// keep the first (more regularized) point seen.
func (r *Result) Select() Optimum {
	opt := Optimum{CVOpt: r.MSE[0][0]}
	for d := range r.MSE {
		for s, v := range r.MSE[d] {
			if v < opt.CVOpt {
				opt = Optimum{DiversityIndex: d, SparsityIndex: s, CVOpt: v}
			}
		}
	}

	return opt
}

// SparsityCurve returns a copy of the CV curve over the sparsity grid at
// diversity index d.
func (r *Result) SparsityCurve(d int) []float64 {
	return append([]float64(nil), r.MSE[d]...)
}

// DiversityCurve returns a copy of the CV curve over the diversity grid
// at sparsity index s.
func (r *Result) DiversityCurve(s int) []float64 {
	curve := make([]float64, len(r.MSE))
	for d := range r.MSE {
		curve[d] = r.MSE[d][s]
	}

	return curve
}
