package stat

import (
	"math"

	"github.com/katalvlaran/minos/solver"
)

// GaussianNLL returns x ↦ (x − mean)² / (2σ²).
func GaussianNLL(mean, sigma float64) solver.Func1D {
	den := 2 * sigma * sigma
	return func(x float64) float64 {
		d := x - mean
		return d * d / den
	}
}

// BinomialNLL returns ε ↦ −k·ln ε − (N − k)·ln(1 − ε) for k passed out of N.
// Zero-count terms are dropped so the function stays finite at ε = 0 or 1
// when the matching count is zero.
func BinomialNLL(passed, total float64) solver.Func1D {
	failed := total - passed
	return func(eps float64) float64 {
		var nll float64
		if passed != 0 {
			nll -= passed * math.Log(eps)
		}
		if failed != 0 {
			nll -= failed * math.Log(1-eps)
		}
		return nll
	}
}

// PoissonNLL returns ν ↦ ν − n·ln ν for n observed events.
func PoissonNLL(obs float64) solver.Func1D {
	return func(nu float64) float64 {
		if obs == 0 {
			return nu
		}
		return nu - obs*math.Log(nu)
	}
}
