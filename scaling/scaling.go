package scaling

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNilMatrix indicates a nil design matrix was supplied.
	ErrNilMatrix = errors.New("scaling: design matrix is nil")

	// ErrBadShape indicates an empty design matrix (no rows or no columns).
	ErrBadShape = errors.New("scaling: design matrix must have positive dimensions")

	// ErrLengthMismatch indicates len(y) differs from the design row count.
	ErrLengthMismatch = errors.New("scaling: response length must equal design row count")
)

// Moments holds the per-column location/scale of a design matrix and the
// response mean, captured by Standardize and consumed by Unscale/Intercept.
type Moments struct {
	XMean  []float64 // per-column mean, length p
	XScale []float64 // per-column population standard deviation (1 for degenerate columns)
	YMean  float64   // response mean
}

// Standardize returns a standardized copy of x (each column centered and
// divided by its population standard deviation), the centered response,
// and the Moments describing the transform. Inputs are not mutated.
//
// Degenerate columns (zero variance) get scale 1 and come out all-zero.
//
// Complexity: O(n·p) time, O(n·p) space for the copy.
func Standardize(x *mat.Dense, y []float64) (*mat.Dense, []float64, Moments, error) {
	if x == nil {
		return nil, nil, Moments{}, ErrNilMatrix
	}
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return nil, nil, Moments{}, ErrBadShape
	}
	if len(y) != n {
		return nil, nil, Moments{}, ErrLengthMismatch
	}

	m := Moments{
		XMean:  make([]float64, p),
		XScale: make([]float64, p),
	}
	xs := mat.NewDense(n, p, nil)

	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		m.XMean[j] = stat.Mean(col, nil)

		// Population variance keeps ||xs_j||^2 == n exactly, which the
		// solver's closed-form lambda-max relies on.
		var ss float64
		for i := range col {
			col[i] -= m.XMean[j]
			ss += col[i] * col[i]
		}
		sd := math.Sqrt(ss / float64(n))
		if sd == 0 {
			sd = 1
		}
		m.XScale[j] = sd
		for i := range col {
			col[i] /= sd
		}
		xs.SetCol(j, col)
	}

	m.YMean = stat.Mean(y, nil)
	yc := make([]float64, n)
	copy(yc, y)
	floats.AddConst(-m.YMean, yc)

	return xs, yc, m, nil
}

// Unscale maps a coefficient vector fitted in standardized space back to
// the original feature scale: beta[j] = betaStd[j] / XScale[j].
func (m Moments) Unscale(betaStd []float64) []float64 {
	beta := make([]float64, len(betaStd))
	for j, b := range betaStd {
		beta[j] = b / m.XScale[j]
	}

	return beta
}

// Intercept derives the original-scale intercept for an already-unscaled
// coefficient vector: meanY − meanX · beta.
func (m Moments) Intercept(beta []float64) float64 {
	return m.YMean - floats.Dot(m.XMean, beta)
}
