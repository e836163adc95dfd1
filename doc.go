// Package ensembleEN fits ensembles of sparse linear regression models
// that are penalized to disagree — elastic-net sparsity within each
// model, a pairwise diversity penalty across models, and both penalty
// strengths chosen by cross-validation.
//
// 🚀 What is ensembleEN?
//
//	A small numeric library built around one engine:
//	  • ensemble/ — the public fitting surface: Fit, Predict, Coefficients
//	  • descent/  — cyclic coordinate descent over G coupled models
//	  • cv/       — parallel k-fold cross-validation over two penalty grids
//	  • lambda/   — closed-form penalty grid construction
//	  • scaling/  — standardize inputs, restore coefficients exactly
//
// ✨ Why choose ensembleEN?
//
//   - Reproducible – seeded shuffling, deterministic fold reduction
//   - Honest numerics – convergence reported, never silently dropped
//   - Parallel where it pays – folds fan out on a bounded worker pool
//   - gonum-native – dense matrices in, dense coefficient paths out
//
// Start with package ensemble:
//
//	go get github.com/Wjh70301/ensembleEN/ensemble
package ensembleEN
