package measurement

import (
	"math"

	"github.com/katalvlaran/minos/solver"
)

// LazyEvaluateUncorrelated is the linearised alternative to
// EvaluateUncorrelated: central g(c) and
//
//	σ±² = Σ (∂g/∂xᵢ · errᵢ)²
//
// where errᵢ is the upper error of input i when ∂g/∂xᵢ ≥ 0 and its lower
// error otherwise (reversed for σ−). No minimisation is performed.
//
// Errors:
//   - ErrEmpty for an empty list.
func LazyEvaluateUncorrelated(list []Measurement, g solver.FuncND) (Measurement, error) {
	if len(list) == 0 {
		return Measurement{}, measurementErrorf(opLazy, ErrEmpty)
	}

	c := make([]float64, len(list))
	for i, m := range list {
		c[i] = m.central
	}

	var up2, lo2 float64
	for i, m := range list {
		d := solver.PartialDerivative(g, c, i)
		du, dl := d*m.errUp, d*m.errLo
		if d >= 0 {
			up2 += du * du
			lo2 += dl * dl
		} else {
			up2 += dl * dl
			lo2 += du * du
		}
	}

	return Measurement{central: g(c), errUp: math.Sqrt(up2), errLo: math.Sqrt(lo2)}, nil
}
