// Package ensemble fits ensembles of elastic-net linear models penalized
// for cross-model diversity, with penalties selected by cross-validation.
//
// 🚀 What is it?
//
//	Fit trains G linear models jointly: each model carries its own
//	elastic-net penalty (sparsity), and a pairwise interaction penalty
//	pushes different models onto different features (diversity). Both
//	penalty strengths are chosen on a two-dimensional grid by k-fold
//	cross-validation, and the final ensemble predicts by averaging its
//	members.
//
// ✨ Key features:
//   - closed-form coordinate-descent engine with warm-started paths
//   - two-axis grid search with parallel per-fold work (bounded pool)
//   - explicit, seedable row shuffling — fully reproducible fits
//   - immutable fitted object with the whole coefficient path over the
//     sparsity grid at the selected diversity level
//
// ⚙️ Usage:
//
//	import "github.com/Wjh70301/ensembleEN/ensemble"
//
//	fit, err := ensemble.Fit(x, y,
//	  ensemble.WithNumGroups(10),
//	  ensemble.WithNumFolds(10),
//	  ensemble.WithNumThreads(4),
//	  ensemble.WithSeed(1),
//	)
//	preds, err := fit.Predict(newX)         // at the CV-optimal sparsity level
//	coefs, err := fit.Coefficients()        // [intercept, beta...] per level
//
// Validation failures surface synchronously as sentinel errors before any
// heavy computation; solver non-convergence is reported on the fitted
// object, never silently dropped.
//
// Subpackages: scaling (standardize/restore), lambda (penalty grids),
// descent (the solver), cv (fold orchestration).
package ensemble
