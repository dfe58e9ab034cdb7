package stat

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/minos/solver"
)

// defaultStep is the relative simplex step and the relative offset of the
// default root-search seeds.
const defaultStep = 0.01

// Interval is the result of a Minos computation.
// Invariant: Lower ≤ Central ≤ Upper.
type Interval struct {
	Central float64
	Lower   float64
	Upper   float64
}

// ErrUp is Upper − Central.
func (iv Interval) ErrUp() float64 { return iv.Upper - iv.Central }

// ErrLo is Central − Lower.
func (iv Interval) ErrLo() float64 { return iv.Central - iv.Lower }

// String renders "central [lower, upper]".
func (iv Interval) String() string {
	return fmt.Sprintf("%g [%g, %g]", iv.Central, iv.Lower, iv.Upper)
}

// newInterval orders the two bounds and widens them to contain central.
// Central itself is never moved.
func newInterval(central, a, b float64) Interval {
	lo, hi := math.Min(a, b), math.Max(a, b)

	return Interval{Central: central, Lower: math.Min(lo, central), Upper: math.Max(hi, central)}
}

// Minos1D computes the Minos interval of a one-parameter NLL.
//
// Implementation:
//   - Stage 1: central = argmin nll on (lo, hi), starting from guess.
//   - Stage 2: target = nll(central) + DeltaNLLFromConfidence(cl).
//   - Stage 3: solve nll(x) = target on [lo, central] and [central, hi].
//
// Behavior highlights:
//   - A side whose NLL never reaches the target reports the endpoint closest
//     to it together with solver.ErrNoBracket.
//   - Non-convergence does not abort: all stages run and the errors are joined.
//
// Errors: ErrBadConfidence; solver errors wrapped as
// "Minos1D: lower bound: solver: ...".
func Minos1D(nll solver.Func1D, guess, lo, hi, cl float64) (Interval, error) {
	fallback := Interval{Central: guess, Lower: guess, Upper: guess}
	if !validConfidence(cl) {
		return fallback, statErrorf(opMinos1D, ErrBadConfidence)
	}
	delta, err := DeltaNLLFromConfidence(cl)
	if err != nil {
		return fallback, statErrorf(opMinos1D, err)
	}

	var errs []error
	central, err := solver.Minimize1D(nll, guess, lo, hi)
	if err != nil {
		if !errors.Is(err, solver.ErrNotConverged) {
			return Interval{Central: central, Lower: central, Upper: central}, statErrorf(opMinos1D, err)
		}
		errs = append(errs, fmt.Errorf("central: %w", err))
	}

	target := nll(central) + delta
	lower, upper := central, central
	if central > lo {
		if lower, err = solver.Solve1D(nll, target, lo, central); err != nil {
			errs = append(errs, fmt.Errorf("lower bound: %w", err))
		}
	}
	if central < hi {
		if upper, err = solver.Solve1D(nll, target, central, hi); err != nil {
			errs = append(errs, fmt.Errorf("upper bound: %w", err))
		}
	}

	iv := newInterval(central, lower, upper)
	if len(errs) > 0 {
		return iv, statErrorf(opMinos1D, errors.Join(errs...))
	}

	return iv, nil
}

// MinosND computes the Minos interval of the derived quantity g for an
// N-parameter NLL.
//
// Implementation:
//   - Stage 1: x̂ = simplex minimum of nll from init; Central = g(x̂).
//     Steps are 1% of max(|xᵢ|, 1), capped at 1% of the distance to the
//     upper (else lower) guess when that distance is non-zero.
//   - Stage 2: the n+1 equations ∂nll/∂xᵢ − λ·∂g/∂xᵢ = 0 and
//     nll(x) = nll(x̂) + ΔNLL are solved from the upper seed with λ = 1.
//   - Stage 3: the same system is solved from the lower seed with λ set to
//     the negated multiplier of Stage 2 (−1 when unusable).
//   - Bounds are the ordered g values of the two solutions. A bound that
//     lands beyond the central value (by more than AbsEpsilon·max(|g(x̂)|, 1))
//     is reported as ErrWrongSide and collapses onto the central value.
//
// Seeds: the supplied guess, or x̂ ± step; a guess coordinate equal to x̂ᵢ
// is replaced by x̂ᵢ ± stepᵢ so the search never starts at the minimum.
//
// Errors: ErrBadConfidence, ErrDimension, and wrapped solver errors such as
// "MinosND: upper bound: SolveSystem: Iterate: solver: did not converge".
// The returned Interval always holds the best values found.
func MinosND(nll, g solver.FuncND, init []float64, opts ...Option) (Interval, error) {
	o := gatherOptions(opts...)
	n := len(init)
	if n == 0 || (o.UpperGuess != nil && len(o.UpperGuess) != n) || (o.LowerGuess != nil && len(o.LowerGuess) != n) {
		return Interval{}, statErrorf(opMinosND, ErrDimension)
	}
	if !validConfidence(o.Confidence) {
		v := g(init)
		return Interval{Central: v, Lower: v, Upper: v}, statErrorf(opMinosND, ErrBadConfidence)
	}
	delta, err := DeltaNLLFromConfidence(o.Confidence)
	if err != nil {
		v := g(init)
		return Interval{Central: v, Lower: v, Upper: v}, statErrorf(opMinosND, err)
	}

	hint := o.UpperGuess
	if hint == nil {
		hint = o.LowerGuess
	}
	step := simplexStep(init, hint)

	var errs []error
	xmin, err := solver.MinimizeND(nll, init, step)
	if err != nil {
		errs = append(errs, fmt.Errorf("central: %w", err))
	}
	central := g(xmin)
	target := nll(xmin) + delta
	system := lagrangeSystem(nll, g, target, n)

	upSeed := seed(xmin, o.UpperGuess, step, +1)
	upSeed = append(upSeed, 1)
	upRoot, err := solver.SolveSystem(system, upSeed)
	if err != nil {
		errs = append(errs, fmt.Errorf("upper bound: %w", err))
	}

	lambda := -1.0
	if l := -upRoot[n]; finite(l) && l < 0 {
		lambda = l
	}
	loSeed := seed(xmin, o.LowerGuess, step, -1)
	loSeed = append(loSeed, lambda)
	loRoot, err := solver.SolveSystem(system, loSeed)
	if err != nil {
		errs = append(errs, fmt.Errorf("lower bound: %w", err))
	}

	upV, loV := g(upRoot[:n]), g(loRoot[:n])
	slack := solver.AbsEpsilon * math.Max(math.Abs(central), 1)
	if math.Max(upV, loV) < central-slack {
		errs = append(errs, fmt.Errorf("upper bound: %w", ErrWrongSide))
	}
	if math.Min(upV, loV) > central+slack {
		errs = append(errs, fmt.Errorf("lower bound: %w", ErrWrongSide))
	}

	iv := newInterval(central, upV, loV)
	if len(errs) > 0 {
		return iv, statErrorf(opMinosND, errors.Join(errs...))
	}

	return iv, nil
}

// lagrangeSystem builds F(x, λ) for the constrained extremum of g on the
// contour nll = target. The last coordinate of the input is λ.
func lagrangeSystem(nll, g solver.FuncND, target float64, n int) solver.SystemFunc {
	return func(in, out []float64) {
		x := in[:n]
		lambda := in[n]
		for i := 0; i < n; i++ {
			out[i] = solver.PartialDerivative(nll, x, i) - lambda*solver.PartialDerivative(g, x, i)
		}
		out[n] = nll(x) - target
	}
}

// simplexStep returns 1% of max(|xᵢ|, 1), capped at 1% of |hintᵢ − xᵢ| when non-zero.
func simplexStep(x, hint []float64) []float64 {
	step := make([]float64, len(x))
	for i, v := range x {
		s := defaultStep * math.Max(math.Abs(v), 1)
		if hint != nil {
			if d := math.Abs(hint[i] - v); d > 0 {
				s = math.Min(s, defaultStep*d)
			}
		}
		step[i] = s
	}

	return step
}

// seed returns guess (or xmin) with coordinates equal to xmin moved by sign·step.
func seed(xmin, guess, step []float64, sign float64) []float64 {
	out := make([]float64, len(xmin), len(xmin)+1)
	for i := range xmin {
		if guess != nil && guess[i] != xmin[i] {
			out[i] = guess[i]
			continue
		}
		out[i] = xmin[i] + sign*step[i]
	}

	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
