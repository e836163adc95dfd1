// Package descent fits an ensemble of elastic-net linear models coupled
// by a pairwise diversity penalty, via cyclic coordinate descent.
//
// 🚀 What does it solve?
//
//	For groups g = 1..G, jointly minimize
//
//	  (1/2n)‖y − Xβᵍ‖² + λS[(1−α)/2‖βᵍ‖₂² + α‖βᵍ‖₁]
//	                   + (λD/2) Σ_{h≠g} Σ_j |β_jʰ β_jᵍ|
//
//	The quadratic loss is per-group; the groups interact only through the
//	diversity term, which discourages two models from loading on the same
//	feature at once.
//
// ✨ Key features:
//   - closed-form soft-threshold coordinate updates with live cross-group
//     penalty weights (never cached across a cycle)
//   - incremental per-group residual maintenance — O(n) per update
//   - warm-started paths along a descending sparsity grid
//   - convergence reported, never silently ignored (Point.Converged)
//
// ⚙️ Usage:
//
//	prob, err := descent.NewProblem(xs, yc, 10, descent.DefaultOptions())
//	path, err := prob.SolvePath(lambdasSparsity, lambdaDiversity)
//
// Inputs must be standardized (package scaling); the solver assumes
// centered columns and response and therefore carries no intercept.
//
// Performance: one full cycle costs O(G·p·n); paths reuse the previous
// solution so later grid points typically converge in a few cycles.
package descent
