// Package poisson: sentinel error set.

package poisson

import (
	"errors"
	"fmt"
)

// ErrBadInput indicates a negative or non-finite observed count.
var ErrBadInput = errors.New("poisson: observed count must be finite and non-negative")

// Operation tags for uniform error wrapping.
const (
	opMinos      = "Minos"
	opLazy       = "Lazy"
	opCMSStatCom = "CMSStatCom"
)

// poissonErrorf wraps err with an operation tag. Call only with a non-nil err.
func poissonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
