// Package solver: sentinel error set.
// Functions return these sentinels wrapped with an operation tag; match them
// with errors.Is.

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged reports that the iteration cap was reached before the
	// convergence predicate was satisfied.
	ErrNotConverged = errors.New("solver: did not converge")

	// ErrStalled reports that an iteration could not make progress. It wraps
	// ErrNotConverged so callers only need to test for the latter.
	ErrStalled = fmt.Errorf("%w: iteration stalled", ErrNotConverged)

	// ErrNoBracket indicates that f(lo)−y and f(hi)−y share a sign.
	ErrNoBracket = errors.New("solver: endpoints do not bracket a root")

	// ErrNoMinimum indicates that no interior point is lower than both
	// endpoints of the search interval.
	ErrNoMinimum = errors.New("solver: no interior minimum in interval")

	// ErrBadInterval indicates lo >= hi or a non-finite endpoint.
	ErrBadInterval = errors.New("solver: invalid interval")

	// ErrDimension indicates an empty start point or mismatched vector lengths.
	ErrDimension = errors.New("solver: invalid dimension")
)

// Operation tags for uniform error wrapping.
const (
	opIterate     = "Iterate"
	opSolve1D     = "Solve1D"
	opMinimize1D  = "Minimize1D"
	opMinimizeND  = "MinimizeND"
	opSolveSystem = "SolveSystem"
	opBrentRoot   = "NewBrentRoot"
	opBrentMin    = "NewBrentMinimizer"
	opSimplex     = "NewSimplex"
	opMultiRoot   = "NewMultiRoot"
)

// solverErrorf wraps err with an operation tag. Call only with a non-nil err.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
