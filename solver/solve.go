package solver

import "math"

// scanPoints is the number of interior samples Minimize1D inspects when the
// supplied guess is not below both endpoints.
const scanPoints = 200

// Solve1D returns x ∈ [lo, hi] with f(x) = y.
//
// Behavior highlights:
//   - An endpoint that already satisfies f = y is returned immediately.
//   - If f(lo)−y and f(hi)−y share a sign, the endpoint with the smaller
//     |f − y| is returned together with ErrNoBracket.
//   - On ErrNotConverged the current Brent estimate is returned.
//
// Errors: ErrBadInterval, ErrNoBracket, ErrNotConverged (all wrapped).
func Solve1D(f Func1D, y, lo, hi float64) (float64, error) {
	if !finite(lo) || !finite(hi) || lo >= hi {
		return lo, solverErrorf(opSolve1D, ErrBadInterval)
	}
	g := func(x float64) float64 { return f(x) - y }

	glo, ghi := g(lo), g(hi)
	switch {
	case glo == 0:
		return lo, nil
	case ghi == 0:
		return hi, nil
	case (glo < 0) == (ghi < 0) || math.IsNaN(glo) || math.IsNaN(ghi):
		if math.Abs(glo) <= math.Abs(ghi) || math.IsNaN(ghi) {
			return lo, solverErrorf(opSolve1D, ErrNoBracket)
		}
		return hi, solverErrorf(opSolve1D, ErrNoBracket)
	}

	s, err := NewBrentRoot(g, lo, hi)
	if err != nil {
		return lo, solverErrorf(opSolve1D, err)
	}
	if _, err = Iterate(s); err != nil {
		return s.Root(), solverErrorf(opSolve1D, err)
	}

	return s.Root(), nil
}

// Minimize1D returns the minimiser of f in (lo, hi).
//
// Behavior highlights:
//   - If guess is not strictly inside (lo, hi) with f(guess) below both
//     endpoint values, a uniform grid of interior points is scanned and its
//     lowest point is used instead.
//   - ErrNoMinimum when no interior point beats both endpoints.
//
// Errors: ErrBadInterval, ErrNoMinimum, ErrNotConverged (all wrapped).
func Minimize1D(f Func1D, guess, lo, hi float64) (float64, error) {
	if !finite(lo) || !finite(hi) || lo >= hi {
		return guess, solverErrorf(opMinimize1D, ErrBadInterval)
	}
	flo, fhi := orInf(f(lo)), orInf(f(hi))

	valid := func(x float64) bool {
		if !(x > lo && x < hi) {
			return false
		}
		fx := orInf(f(x))
		return fx < flo && fx < fhi
	}
	if !valid(guess) {
		best, bestF := math.NaN(), math.Inf(1)
		step := (hi - lo) / (scanPoints + 1)
		for k := 1; k <= scanPoints; k++ {
			x := lo + float64(k)*step
			if fx := orInf(f(x)); fx < bestF {
				best, bestF = x, fx
			}
		}
		if !(bestF < flo && bestF < fhi) {
			if flo <= fhi {
				return lo, solverErrorf(opMinimize1D, ErrNoMinimum)
			}
			return hi, solverErrorf(opMinimize1D, ErrNoMinimum)
		}
		guess = best
	}

	s, err := NewBrentMinimizer(f, guess, lo, hi)
	if err != nil {
		return guess, solverErrorf(opMinimize1D, err)
	}
	if _, err = Iterate(s); err != nil {
		return s.Minimum(), solverErrorf(opMinimize1D, err)
	}

	return s.Minimum(), nil
}

// MinimizeND returns the Nelder–Mead minimiser of f started from x0 with
// initial vertex offsets step. On ErrNotConverged the best vertex is returned.
func MinimizeND(f FuncND, x0, step []float64) ([]float64, error) {
	s, err := NewSimplex(f, x0, step)
	if err != nil {
		return nil, solverErrorf(opMinimizeND, err)
	}
	if _, err = Iterate(s); err != nil {
		return s.Minimum(), solverErrorf(opMinimizeND, err)
	}

	return s.Minimum(), nil
}

// SolveSystem returns x with F(x) = 0 starting from x0. On failure the last
// accepted iterate is returned with the wrapped error.
func SolveSystem(f SystemFunc, x0 []float64) ([]float64, error) {
	s, err := NewMultiRoot(f, x0)
	if err != nil {
		return nil, solverErrorf(opSolveSystem, err)
	}
	if _, err = Iterate(s); err != nil {
		return s.Root(), solverErrorf(opSolveSystem, err)
	}

	return s.Root(), nil
}
