package solver

import "math"

// dblEpsilon is the spacing of float64 values at 1 (2⁻⁵²).
const dblEpsilon = 2 * MachineEpsilon

// Derivative returns df/dx at x.
//
// Implementation:
//   - 5-point central rule with round-off and truncation error estimates;
//     when truncation dominates, one retry at the error-optimal step.
//   - Starts from h = √AbsEpsilon and halves h while the estimated error
//     exceeds max(AbsEpsilon, |f'|·RelEpsilon) and h > AbsEpsilon.
//
// Complexity: at most ~8 evaluations per step size.
func Derivative(f Func1D, x float64) float64 {
	h := math.Sqrt(AbsEpsilon)
	for {
		result, abserr := centralDeriv(f, x, h)
		if abserr <= math.Max(AbsEpsilon, math.Abs(result)*RelEpsilon) || h <= AbsEpsilon {
			return result
		}
		h /= 2
	}
}

// PartialDerivative returns ∂f/∂x_dim at x. The caller's x is not modified.
func PartialDerivative(f FuncND, x []float64, dim int) float64 {
	work := make([]float64, len(x))
	copy(work, x)
	x0 := x[dim]

	return Derivative(func(v float64) float64 {
		work[dim] = v
		r := f(work)
		work[dim] = x0
		return r
	}, x0)
}

// Gradient returns every partial derivative of f at x.
func Gradient(f FuncND, x []float64) []float64 {
	g := make([]float64, len(x))
	for i := range x {
		g[i] = PartialDerivative(f, x, i)
	}

	return g
}

// centralDeriv evaluates the 5-point rule at step h and returns the
// derivative with its combined error estimate.
func centralDeriv(f Func1D, x, h float64) (float64, float64) {
	r0, round, trunc := centralStep(f, x, h)
	abserr := round + trunc
	if round < trunc && round > 0 && trunc > 0 {
		hOpt := h * math.Cbrt(round/(2*trunc))
		rOpt, roundOpt, truncOpt := centralStep(f, x, hOpt)
		errOpt := roundOpt + truncOpt
		if errOpt < abserr && math.Abs(rOpt-r0) < 4*abserr {
			return rOpt, errOpt
		}
	}

	return r0, abserr
}

func centralStep(f Func1D, x, h float64) (result, round, trunc float64) {
	fm1 := f(x - h)
	fp1 := f(x + h)
	fmh := f(x - h/2)
	fph := f(x + h/2)

	r3 := 0.5 * (fp1 - fm1)
	r5 := (4.0/3.0)*(fph-fmh) - (1.0/3.0)*r3

	e3 := (math.Abs(fp1) + math.Abs(fm1)) * dblEpsilon
	e5 := 2*(math.Abs(fph)+math.Abs(fmh))*dblEpsilon + e3

	dy := math.Max(math.Abs(r3/h), math.Abs(r5/h)) * (math.Abs(x) / h) * dblEpsilon

	return r5 / h, math.Abs(e5/h) + dy, math.Abs((r5 - r3) / h)
}
