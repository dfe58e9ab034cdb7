// Package matrix provides the small dense linear-algebra kernel used by the
// multi-dimensional solvers in this module.
//
// What & Why:
//
//	The Newton-type root finder in package solver needs to solve J·δ = −F
//	for a small (n+1)×(n+1) Jacobian at every step. This package keeps that
//	work explicit and deterministic:
//	  • Dense: row-major storage with bounds-checked At/Set
//	  • MatVec: y = A·x
//	  • LU: Doolittle factorization with partial (row) pivoting
//	  • LUFactor.Solve: forward/backward substitution for A·x = b
//
// Errors:
//
//	All public functions return sentinel errors from errors.go, wrapped
//	with an operation tag ("LU: matrix: singular matrix"). Match them
//	with errors.Is.
//
// Complexity:
//
//	At/Set O(1); MatVec O(r·c); LU O(n³); Solve O(n²).
package matrix
