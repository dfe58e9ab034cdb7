// Package stat holds the statistical primitives of minos: conversions
// between Gaussian sigma intervals and confidence levels, the change in
// negative log-likelihood (ΔNLL) that defines an interval, ready-made NLL
// functions, and the Minos procedure in one and in N dimensions.
//
// What & Why:
//
//	Minos finds the interval of a parameter (or of a derived quantity g(x))
//	where the NLL stays within ΔNLL of its minimum:
//	  • 1-D: minimise the NLL, then solve nll(x) = nll(x̂) + ΔNLL on each side.
//	  • N-D: minimise with a simplex, then solve the Lagrange system
//	        ∂nll/∂xᵢ − λ·∂g/∂xᵢ = 0,  nll(x) − (nll(x̂) + ΔNLL) = 0
//	    twice (λ > 0 and λ < 0) to get both extrema of g on the contour.
//
// Errors:
//
//	Invalid confidence levels return ErrBadConfidence. Solver failures are
//	returned wrapped (match solver.ErrNotConverged with errors.Is) together
//	with an Interval holding the best values found; Lower ≤ Central ≤ Upper
//	always holds for a returned Interval.
//
// Confidence levels are plain float64 values in (0, 1).
package stat
