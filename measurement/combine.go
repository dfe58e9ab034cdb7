package measurement

import (
	"errors"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/minos/solver"
	"github.com/katalvlaran/minos/stat"
)

// EvaluateUncorrelated propagates independent measurements through an
// arbitrary variable of interest g with the N-D Minos procedure.
//
// Implementation:
//   - joint NLL = Σ opts.NLL(xᵢ, listᵢ), start point = centrals.
//   - root-search hints follow the sign of ∂g/∂xᵢ at the centrals: the
//     upper hint moves input i to its upper edge when g increases with it
//     and to its lower edge otherwise; the lower hint does the opposite.
//   - result (g(x̂), max − g(x̂), g(x̂) − min).
//
// Errors:
//   - ErrEmpty for an empty list.
//   - wrapped solver.ErrNotConverged together with the best estimate.
func EvaluateUncorrelated(list []Measurement, g solver.FuncND, opts ...Option) (Measurement, error) {
	if len(list) == 0 {
		return Measurement{}, measurementErrorf(opEvaluate, ErrEmpty)
	}
	o := gatherOptions(opts...)

	c := make([]float64, len(list))
	for i, m := range list {
		c[i] = m.central
	}
	upper := make([]float64, len(list))
	lower := make([]float64, len(list))
	for i, m := range list {
		if solver.PartialDerivative(g, c, i) >= 0 {
			upper[i], lower[i] = m.Upper(), m.Lower()
		} else {
			upper[i], lower[i] = m.Lower(), m.Upper()
		}
	}

	return minos(opEvaluate, list, g, upper, lower, o)
}

// SumUncorrelated returns the sum of independent measurements.
//
// Zero-error inputs are exact constants: unless every input is exact, they
// are taken out of the Minos problem and added to the result with Shift.
//
// Hints distribute the symmetric total √(Σ upᵢ²) (resp. √(Σ loᵢ²))
// proportionally: cᵢ + upᵢ²/√(Σ up²). A zero total leaves the hint at cᵢ.
func SumUncorrelated(list []Measurement, opts ...Option) (Measurement, error) {
	if len(list) == 0 {
		return Measurement{}, measurementErrorf(opSum, ErrEmpty)
	}
	if exact, rest := splitExact(list); len(exact) > 0 && len(rest) > 0 {
		r, err := SumUncorrelated(rest, opts...)
		for _, m := range exact {
			r = r.Shift(m.central)
		}
		return r, err
	}
	o := gatherOptions(opts...)

	ups := make([]float64, len(list))
	los := make([]float64, len(list))
	for i, m := range list {
		ups[i], los[i] = m.errUp, m.errLo
	}
	totUp := floats.Norm(ups, 2)
	totLo := floats.Norm(los, 2)

	upper := make([]float64, len(list))
	lower := make([]float64, len(list))
	for i, m := range list {
		upper[i], lower[i] = m.central, m.central
		if totUp > 0 {
			upper[i] += m.errUp * m.errUp / totUp
		}
		if totLo > 0 {
			lower[i] -= m.errLo * m.errLo / totLo
		}
	}

	return minos(opSum, list, solver.Sum, upper, lower, o)
}

// ProdUncorrelated returns the product of independent measurements.
//
// Every input is normalised to unit central (Normalized), the Minos interval
// of Π xᵢ is computed in that relative space with hints 1 ± relative error,
// and the result is rescaled by Π cᵢ. For a negative product the rescaled
// errors swap. Zero-error inputs are exact factors and are applied the same
// way after the Minos step, unless every input is exact.
//
// Errors:
//   - ErrEmpty, ErrZeroCentral (an uncertain input with a zero central value;
//     an exact zero makes the product exactly zero).
//   - wrapped solver.ErrNotConverged together with the best estimate.
func ProdUncorrelated(list []Measurement, opts ...Option) (Measurement, error) {
	if len(list) == 0 {
		return Measurement{}, measurementErrorf(opProd, ErrEmpty)
	}
	if exact, rest := splitExact(list); len(exact) > 0 && len(rest) > 0 {
		r, err := ProdUncorrelated(rest, opts...)
		k := 1.0
		for _, m := range exact {
			k *= m.central
		}
		return rescale(r, k), err
	}
	o := gatherOptions(opts...)

	prod := 1.0
	norm := make([]Measurement, len(list))
	upper := make([]float64, len(list))
	lower := make([]float64, len(list))
	for i, m := range list {
		n, err := m.Normalized()
		if err != nil {
			return Measurement{}, measurementErrorf(opProd, err)
		}
		prod *= m.central
		norm[i] = n
		upper[i] = n.Upper()
		lower[i] = n.Lower()
	}

	r, err := minos(opProd, norm, solver.Product, upper, lower, o)

	return rescale(r, prod), err
}

// rescale multiplies m by k, swapping the errors when k is negative.
func rescale(m Measurement, k float64) Measurement {
	a := math.Abs(k)
	out := Measurement{central: m.central * k, errUp: m.errUp * a, errLo: m.errLo * a}
	if k < 0 {
		out.errUp, out.errLo = out.errLo, out.errUp
	}

	return out
}

// splitExact separates zero-error items from the rest, keeping order.
func splitExact(list []Measurement) (exact, rest []Measurement) {
	for _, m := range list {
		if m.errUp == 0 && m.errLo == 0 {
			exact = append(exact, m)
		} else {
			rest = append(rest, m)
		}
	}

	return exact, rest
}

// Sum is SumUncorrelated at one sigma with the default NLL.
func Sum(ms ...Measurement) (Measurement, error) { return SumUncorrelated(ms) }

// Prod is ProdUncorrelated at one sigma with the default NLL.
func Prod(ms ...Measurement) (Measurement, error) { return ProdUncorrelated(ms) }

// Plus is Sum(m, other).
func (m Measurement) Plus(other Measurement) (Measurement, error) { return Sum(m, other) }

// Times is Prod(m, other).
func (m Measurement) Times(other Measurement) (Measurement, error) { return Prod(m, other) }

// minos runs stat.MinosND over the joint NLL of list and packages the interval.
func minos(tag string, list []Measurement, g solver.FuncND, upper, lower []float64, o Options) (Measurement, error) {
	nll := o.NLL
	joint := func(x []float64) float64 {
		var s float64
		for i := range list {
			s += nll(x[i], list[i])
		}
		return s
	}
	init := make([]float64, len(list))
	for i, m := range list {
		init[i] = m.central
	}

	iv, err := stat.MinosND(joint, g, init,
		stat.WithConfidence(o.Confidence),
		stat.WithUpperGuess(upper),
		stat.WithLowerGuess(lower),
	)
	out := Measurement{central: iv.Central, errUp: iv.ErrUp(), errLo: iv.ErrLo()}
	if err != nil {
		if errors.Is(err, solver.ErrNotConverged) {
			logger().Debug("combination did not fully converge",
				slog.String("op", tag), slog.Int("inputs", len(list)), slog.String("result", out.String()))
		}
		return out, measurementErrorf(tag, err)
	}

	return out, nil
}
