// Package efficiency: sentinel error set.

package efficiency

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput indicates counts outside 0 ≤ passed ≤ total, total ≤ 0,
	// or non-positive prior parameters.
	ErrBadInput = errors.New("efficiency: invalid counts")

	// ErrBadMethod indicates an unknown interval Method.
	ErrBadMethod = errors.New("efficiency: unknown interval method")
)

// Operation tags for uniform error wrapping.
const (
	opMinos          = "Minos"
	opBayesian       = "Bayesian"
	opClopperPearson = "ClopperPearson"
	opLazy           = "Lazy"
)

// efficiencyErrorf wraps err with an operation tag. Call only with a non-nil err.
func efficiencyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
