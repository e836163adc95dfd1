// Package scaling centers and scales regression inputs and inverts the
// transform on fitted coefficients.
//
// Standardize produces a zero-mean, unit-variance copy of the design
// matrix (population variance, divisor n) together with the centered
// response; the returned Moments carry everything needed to map
// coefficients fitted in standardized space back to the original scale:
//
//	beta      = betaStd / scale
//	intercept = meanY − meanX · beta
//
// The inverse mapping is pure algebra — nothing is re-estimated — so it
// is exact to floating-point precision.
//
// Zero-variance columns never divide by zero: their scale is fixed at 1,
// which leaves the (all-zero after centering) column untouched and keeps
// downstream coordinate updates at exactly zero for that feature.
package scaling
