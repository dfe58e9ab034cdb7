package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Numeric policy shared by every solver in this package.
const (
	// AbsEpsilon is the absolute tolerance used by the convergence predicates
	// and as the smallest derivative step.
	AbsEpsilon = 1e-8

	// RelEpsilon is the relative tolerance used by the convergence predicates.
	RelEpsilon = 1e-6

	// MachineEpsilon is 1 − nextafter(1, 0), i.e. 2⁻⁵³.
	MachineEpsilon = 1.0 / (1 << 53)

	// MaxIteration is the per-dimension iteration cap of Iterate.
	MaxIteration = 10000
)

// Func1D is a scalar function of one variable. Parameters are captured by the closure.
type Func1D func(x float64) float64

// FuncND is a scalar function of a vector. Implementations must not retain x.
type FuncND func(x []float64) float64

// SystemFunc evaluates a system of equations at x and writes the residuals
// into out (len(out) == len(x)). Implementations must not retain x or out.
type SystemFunc func(x, out []float64)

// Iterator is a solver state machine driven by Iterate.
type Iterator interface {
	// Iterate performs one step. A non-nil error means no further progress is possible.
	Iterate() error
	// Converged reports whether the convergence predicate holds for the current state.
	Converged() bool
	// Dim is the problem dimension; it scales the iteration cap.
	Dim() int
}

// Iterate drives it until Converged or the cap MaxIteration·Dim is reached.
//
// Returns:
//   - the number of Iterate calls performed.
//   - nil on convergence; the step error if a step failed; ErrNotConverged
//     (wrapped) when the cap was hit. In every case the solver keeps its best
//     iterate, so callers can still read a result.
func Iterate(it Iterator) (int, error) {
	limit := MaxIteration * max(it.Dim(), 1)

	var iter int
	for iter < limit {
		if it.Converged() {
			return iter, nil
		}
		if err := it.Iterate(); err != nil {
			return iter + 1, solverErrorf(opIterate, err)
		}
		iter++
	}
	if it.Converged() {
		return iter, nil
	}

	return iter, solverErrorf(opIterate, ErrNotConverged)
}

// Sum returns Σxᵢ; a ready-made variable-of-interest for sums.
func Sum(x []float64) float64 { return floats.Sum(x) }

// Product returns Πxᵢ; a ready-made variable-of-interest for products.
func Product(x []float64) float64 {
	if len(x) == 0 {
		return 1
	}

	return floats.Prod(x)
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// orInf maps NaN to +Inf so that comparisons treat it as "worse than anything".
func orInf(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}

	return v
}
