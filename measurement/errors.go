// Package measurement: sentinel error set.

package measurement

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroCentral indicates an operation that divides by a zero central value.
	ErrZeroCentral = errors.New("measurement: zero central value")

	// ErrZeroDivisor indicates division by a zero scalar.
	ErrZeroDivisor = errors.New("measurement: division by zero")

	// ErrEmpty indicates a combination over an empty list.
	ErrEmpty = errors.New("measurement: empty measurement list")

	// ErrBadList indicates an undecodable serialized measurement.
	ErrBadList = errors.New("measurement: expected a list of numbers")
)

// Operation tags for uniform error wrapping.
const (
	opNormalized = "Normalized"
	opDivide     = "Divide"
	opScalarDiv  = "ScalarDiv"
	opEvaluate   = "EvaluateUncorrelated"
	opSum        = "SumUncorrelated"
	opProd       = "ProdUncorrelated"
	opLazy       = "LazyEvaluateUncorrelated"
	opUnmarshal  = "Unmarshal"
)

// measurementErrorf wraps err with an operation tag. Call only with a non-nil err.
func measurementErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
