// Package cv drives k-fold cross-validation over the two penalty grids.
//
// Rows are assumed pre-shuffled; Split carves them into contiguous folds
// (the last fold absorbs the remainder). For every diversity value, each
// fold trains a warm-started sparsity path on its held-in rows and scores
// ensemble-averaged predictions on its held-out rows; folds are the unit
// of parallel work, processed by a bounded pool of NumThreads workers.
//
// Determinism: every fold owns its own error accumulator, and fold
// accumulators are merged in fold-index order after the pool drains, so
// the selected optimum never depends on scheduling. Non-convergent
// (fold, λ-pair) solves are counted, not fatal.
package cv
