package ensemble

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Predict returns response predictions for newx at the requested sparsity
// levels (default: the CV-optimal level). Each ensemble member's
// coefficients and intercept are averaged into a single linear model per
// level; the result has one row per input row and one column per
// requested index.
//
// newx may be a row matrix with p columns or a mat.Vector of length p
// (treated as a single observation). Out-of-range indices and column
// mismatches are input-contract errors — never clamped.
func (f *Fitted) Predict(newx mat.Matrix, indices ...int) (*mat.Dense, error) {
	if newx == nil {
		return nil, ErrNilMatrix
	}
	x, err := f.asRows(newx)
	if err != nil {
		return nil, err
	}
	idx, err := f.resolve(indices)
	if err != nil {
		return nil, err
	}

	n, _ := x.Dims()
	out := mat.NewDense(n, len(idx), nil)
	row := make([]float64, f.numFeatures)
	for c, l := range idx {
		b0, beta := f.averaged(l)
		for i := 0; i < n; i++ {
			mat.Row(row, i, x)
			out.Set(i, c, b0+floats.Dot(row, beta))
		}
	}

	return out, nil
}

// Coefficients returns, for each requested sparsity level (default: the
// CV-optimal level), the ensemble-averaged vector [intercept, beta...] of
// length p+1.
func (f *Fitted) Coefficients(indices ...int) ([][]float64, error) {
	idx, err := f.resolve(indices)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(idx))
	for c, l := range idx {
		b0, beta := f.averaged(l)
		v := make([]float64, 1+f.numFeatures)
		v[0] = b0
		copy(v[1:], beta)
		out[c] = v
	}

	return out, nil
}

// averaged reduces the group dimension at level l: arithmetic mean of the
// G coefficient vectors and the G intercepts.
func (f *Fitted) averaged(l int) (float64, []float64) {
	beta := make([]float64, f.numFeatures)
	inv := 1 / float64(f.numGroups)

	var b0 float64
	for g := 0; g < f.numGroups; g++ {
		b0 += f.Intercepts[l][g]
		for j := 0; j < f.numFeatures; j++ {
			beta[j] += f.Betas[l].At(j, g)
		}
	}
	b0 *= inv
	floats.Scale(inv, beta)

	return b0, beta
}

// resolve applies the default index and bounds-checks every request.
func (f *Fitted) resolve(indices []int) ([]int, error) {
	if len(indices) == 0 {
		return []int{f.IndexOpt}, nil
	}
	for _, l := range indices {
		if l < 0 || l >= f.Len() {
			return nil, ErrIndexOutOfRange
		}
	}

	return indices, nil
}

// asRows normalizes newx into a dense row matrix with p columns.
func (f *Fitted) asRows(newx mat.Matrix) (*mat.Dense, error) {
	if v, ok := newx.(mat.Vector); ok {
		if v.Len() != f.numFeatures {
			return nil, ErrDimensionMismatch
		}
		row := mat.NewDense(1, f.numFeatures, nil)
		for j := 0; j < f.numFeatures; j++ {
			row.Set(0, j, v.AtVec(j))
		}

		return row, nil
	}

	n, p := newx.Dims()
	if p != f.numFeatures {
		return nil, ErrDimensionMismatch
	}
	if n == 0 {
		return nil, ErrBadShape
	}
	out := mat.NewDense(n, p, nil)
	out.Copy(newx)

	return out, nil
}
