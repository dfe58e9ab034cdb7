// Package solver implements the iterative numeric machinery behind the
// Minos interval computations: bracketing root finding, bounded 1-D
// minimisation, Nelder–Mead simplex minimisation, damped-Newton solution of
// non-linear systems and numeric differentiation.
//
// What & Why:
//
//	Every solver is a small state machine satisfying Iterator. The generic
//	driver Iterate advances it until Converged reports true or the iteration
//	cap MaxIteration·Dim is reached. The convenience functions Solve1D,
//	Minimize1D, MinimizeND and SolveSystem build a solver, drive it and
//	return the best iterate together with a tagged error.
//
// Solvers:
//
//	BrentRoot       Brent–Dekker root bracketing (inverse quadratic / secant / bisection).
//	BrentMinimizer  Brent's parabolic/golden-section minimiser on a bracket.
//	Simplex         Nelder–Mead with reflect/expand/contract/shrink moves.
//	MultiRoot       Newton steps with finite-difference Jacobian, pivoted LU
//	                (package matrix) and a backtracking line search.
//
// Errors:
//
//	Non-convergence is reported as ErrNotConverged (wrapped). The result that
//	accompanies it is still the best estimate the solver reached, so callers
//	may choose to warn and continue.
//
// Determinism:
//
//	No randomness and no shared state: all workspaces are created per call.
//
// Complexity:
//
//	Derivative: 4 evaluations per step size tried, at most ~14 step sizes.
//	MultiRoot: O(n) system evaluations for the Jacobian plus O(n³) LU per step.
package solver
