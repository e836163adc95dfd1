package descent

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Problem is an immutable, solver-ready view of one standardized dataset:
// column-major feature slices, per-column squared norms, the centered
// response and the ensemble size. Build it once, solve many (λS, λD)
// points against it.
type Problem struct {
	cols   [][]float64 // cols[j][i] = xs(i, j)
	norm2n []float64   // ||x_j||^2 / n per column
	y      []float64   // centered response
	n, p   int
	groups int
	opts   Options
}

// NewProblem copies the standardized design into column-major form and
// precomputes the per-column curvature terms.
//
// Contracts:
//   - xs standardized, yc centered (package scaling), neither is mutated;
//   - groups ≥ 1; opts ranges per Options docs.
//
// Complexity: O(n·p) time and space.
func NewProblem(xs *mat.Dense, yc []float64, groups int, opts Options) (*Problem, error) {
	if xs == nil {
		return nil, ErrNilMatrix
	}
	n, p := xs.Dims()
	if n == 0 || p == 0 || len(yc) != n {
		return nil, ErrShapeMismatch
	}
	if groups < 1 {
		return nil, ErrBadGroups
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pr := &Problem{
		cols:   make([][]float64, p),
		norm2n: make([]float64, p),
		y:      make([]float64, n),
		n:      n,
		p:      p,
		groups: groups,
		opts:   opts,
	}
	copy(pr.y, yc)
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, xs)
		pr.cols[j] = col
		pr.norm2n[j] = floats.Dot(col, col) / float64(n)
	}

	return pr, nil
}

// Features returns the number of columns of the underlying design.
func (pr *Problem) Features() int { return pr.p }

// Groups returns the ensemble size the problem was built with.
func (pr *Problem) Groups() int { return pr.groups }

// Solve runs cyclic coordinate descent for one (lamS, lamD) pair.
//
// Update rule, derived from the coordinate-wise stationarity condition of
// the joint objective: for group g and feature j,
//
//	rho   = x_j'r_g / n + (||x_j||²/n)·β_jg     (partial-residual correlation)
//	thr   = lamS·alpha + lamD·Σ_{h≠g} |β_jh|    (diversity widens the threshold)
//	β_jg ← S(rho, thr) / (||x_j||²/n + lamS·(1−alpha))
//
// The cross-group magnitude sum is maintained incrementally, so every
// update inside a cycle sees the other groups' current values. warm may
// be nil (zero start) or a groups×p tensor; it is copied, not aliased.
//
// The last iterate is always returned; hitting MaxIter is reported via
// Point.Converged=false, never as an error.
//
// Complexity: O(iters·G·p·n) time, O(G·n + G·p) space.
func (pr *Problem) Solve(lamS, lamD float64, warm [][]float64) (*Point, error) {
	if lamS < 0 || lamD < 0 {
		return nil, ErrBadLambda
	}
	beta, err := pr.initBeta(warm)
	if err != nil {
		return nil, err
	}

	// Per-group residuals r_g = y − X·β_g and per-feature magnitude sums
	// Σ_g |β_jg|, both kept current across every coordinate update.
	resid := make([][]float64, pr.groups)
	absSum := make([]float64, pr.p)
	for g := 0; g < pr.groups; g++ {
		r := make([]float64, pr.n)
		copy(r, pr.y)
		for j := 0; j < pr.p; j++ {
			if b := beta[g][j]; b != 0 {
				floats.AddScaled(r, -b, pr.cols[j])
				absSum[j] += math.Abs(b)
			}
		}
		resid[g] = r
	}

	var (
		alpha  = pr.opts.Alpha
		invN   = 1 / float64(pr.n)
		l2term = lamS * (1 - alpha)
		l1term = lamS * alpha
	)

	pt := &Point{Beta: beta}
	for iter := 0; iter < pr.opts.MaxIter; iter++ {
		var maxDelta float64
		for g := 0; g < pr.groups; g++ {
			rg := resid[g]
			bg := beta[g]
			for j := 0; j < pr.p; j++ {
				old := bg[j]
				rho := floats.Dot(pr.cols[j], rg)*invN + pr.norm2n[j]*old
				thr := l1term + lamD*(absSum[j]-math.Abs(old))
				denom := pr.norm2n[j] + l2term

				// Degenerate column after centering: rho and denom are both
				// zero, the stationary value is zero.
				var nv float64
				if denom > 0 {
					nv = softThreshold(rho, thr) / denom
				}
				if nv == old {
					continue
				}
				floats.AddScaled(rg, old-nv, pr.cols[j])
				absSum[j] += math.Abs(nv) - math.Abs(old)
				bg[j] = nv
				if d := math.Abs(nv - old); d > maxDelta {
					maxDelta = d
				}
			}
		}
		pt.Iters = iter + 1
		if maxDelta < pr.opts.Tol {
			pt.Converged = true

			break
		}
	}

	return pt, nil
}

// initBeta clones the warm start or allocates zeros.
func (pr *Problem) initBeta(warm [][]float64) ([][]float64, error) {
	beta := make([][]float64, pr.groups)
	if warm == nil {
		for g := range beta {
			beta[g] = make([]float64, pr.p)
		}

		return beta, nil
	}
	if len(warm) != pr.groups {
		return nil, ErrBadWarmStart
	}
	for g := range beta {
		if len(warm[g]) != pr.p {
			return nil, ErrBadWarmStart
		}
		beta[g] = make([]float64, pr.p)
		copy(beta[g], warm[g])
	}

	return beta, nil
}

// softThreshold is the proximal operator of t·|·|: sign(z)·max(|z|−t, 0).
// A zero numerator always maps to exactly zero.
func softThreshold(z, t float64) float64 {
	switch {
	case z > t:
		return z - t
	case z < -t:
		return z + t
	default:
		return 0
	}
}
