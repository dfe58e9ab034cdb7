// Package stat: sentinel error set.

package stat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minos/solver"
)

var (
	// ErrBadConfidence indicates a confidence level outside (0, 1).
	ErrBadConfidence = errors.New("stat: confidence level must lie in (0, 1)")

	// ErrDimension indicates an empty starting point or mismatched guess vectors.
	ErrDimension = errors.New("stat: dimension mismatch")

	// ErrWrongSide reports a contour solution whose g value lies on the wrong
	// side of the central value. It wraps solver.ErrNotConverged.
	ErrWrongSide = fmt.Errorf("%w: stat: bound on the wrong side of the central value", solver.ErrNotConverged)
)

// Operation tags for uniform error wrapping.
const (
	opSigmaInterval = "SigmaInterval"
	opMinos1D       = "Minos1D"
	opMinosND       = "MinosND"
)

// statErrorf wraps err with an operation tag. Call only with a non-nil err.
func statErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
