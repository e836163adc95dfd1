package descent

import "gonum.org/v1/gonum/mat"

// SolvePath sweeps the descending sparsity grid at a fixed diversity
// penalty, warm-starting each point from the previous solution.
//
// The first grid point starts from zero; when the grid begins at the
// closed-form lambda-max that start is already the exact solution, so the
// path warms up for free. Each solution is stored as a p×G matrix in
// standardized space.
//
// Non-convergent points are counted in Path.NonConverged and flagged
// per-point; the sweep never aborts on them.
//
// Complexity: O(Σ iters_l · G·p·n) time, O(L·p·G) space for the path.
func (pr *Problem) SolvePath(lambdasS []float64, lamD float64) (*Path, error) {
	if len(lambdasS) == 0 {
		return nil, ErrEmptyGrid
	}

	pa := &Path{
		LambdaSparsity:  append([]float64(nil), lambdasS...),
		LambdaDiversity: lamD,
		Betas:           make([]*mat.Dense, len(lambdasS)),
		Converged:       make([]bool, len(lambdasS)),
	}

	var warm [][]float64
	for l, lamS := range lambdasS {
		pt, err := pr.Solve(lamS, lamD, warm)
		if err != nil {
			return nil, err
		}
		warm = pt.Beta

		b := mat.NewDense(pr.p, pr.groups, nil)
		for g := 0; g < pr.groups; g++ {
			for j := 0; j < pr.p; j++ {
				b.Set(j, g, pt.Beta[g][j])
			}
		}
		pa.Betas[l] = b
		pa.Converged[l] = pt.Converged
		if !pt.Converged {
			pa.NonConverged++
		}
	}

	return pa, nil
}
