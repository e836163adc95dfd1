// Package lambda builds the two penalty grids swept by the ensemble fit.
//
// Sparsity grid (λS): a geometric, strictly decreasing sequence from the
// closed-form lambda-max — the smallest λS at which every coefficient in
// every group is exactly zero — down to lambda-max·EpsRatio. At the top
// of the grid the all-zero solution is a joint stationary point of the
// ensemble objective regardless of the diversity penalty, which makes it
// an exact warm start for the whole path.
//
// Diversity grid (λD): a non-decreasing sequence anchored at 0 (no
// coupling between groups) rising linearly to max_j |x_j'y| / n. At that
// magnitude the per-coordinate diversity threshold rivals the largest
// unpenalized gradient whenever another group occupies the same feature,
// so diversity pressure grows monotonically across the grid.
//
// Both builders expect the standardized design and centered response
// produced by package scaling.
package lambda
