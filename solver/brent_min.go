package solver

import "math"

// golden is (3 − √5)/2, the golden-section fraction.
const golden = 0.3819660

// sqrtDblEpsilon is √(2⁻⁵²), the relative resolution of a parabolic step.
var sqrtDblEpsilon = math.Sqrt(2 * MachineEpsilon)

// bracketWidth is the relative bracket width accepted as converged.
var bracketWidth = 8 * sqrtDblEpsilon

// minStepFloor keeps the step strictly positive when the minimum sits at 0.
const minStepFloor = AbsEpsilon * RelEpsilon / 10

// BrentMinimizer locates a minimum of f inside [lo, hi] given a guess with
// f(guess) < f(lo) and f(guess) < f(hi).
//
// Implementation:
//   - Brent's method: parabolic interpolation through the three best points
//     (z, w, v), with golden-section steps when the parabola is rejected.
//   - The bracket shrinks monotonically around z.
//
// Convergence:
//
//	|hi − lo| < AbsEpsilon·RelEpsilon + 8·√ε·min(|lo|, |hi|).
//
// The smallest step is √ε·|z| and Brent's method only guarantees a bracket
// of four such steps, so a tighter relative width would never be reached.
type BrentMinimizer struct {
	f Func1D

	lo, hi, z float64
	fz        float64

	v, w   float64
	fv, fw float64
	d, e   float64
}

var _ Iterator = (*BrentMinimizer)(nil)

// NewBrentMinimizer initialises the minimiser.
//
// Errors:
//   - ErrBadInterval if lo >= hi, an endpoint is not finite, or guess ∉ (lo, hi).
//   - ErrNoMinimum if f(guess) is not strictly below both f(lo) and f(hi).
func NewBrentMinimizer(f Func1D, guess, lo, hi float64) (*BrentMinimizer, error) {
	if !finite(lo) || !finite(hi) || lo >= hi || !(guess > lo && guess < hi) {
		return nil, solverErrorf(opBrentMin, ErrBadInterval)
	}
	fz := orInf(f(guess))
	if !(fz < orInf(f(lo)) && fz < orInf(f(hi))) {
		return nil, solverErrorf(opBrentMin, ErrNoMinimum)
	}

	v := lo + golden*(hi-lo)
	fv := orInf(f(v))

	return &BrentMinimizer{
		f:  f,
		lo: lo, hi: hi,
		z: guess, fz: fz,
		v: v, w: v,
		fv: fv, fw: fv,
	}, nil
}

// Minimum returns the current best abscissa.
func (s *BrentMinimizer) Minimum() float64 { return s.z }

// Value returns f at Minimum.
func (s *BrentMinimizer) Value() float64 { return s.fz }

// Bracket returns the current enclosing interval.
func (s *BrentMinimizer) Bracket() (lo, hi float64) { return s.lo, s.hi }

// Dim implements Iterator.
func (s *BrentMinimizer) Dim() int { return 1 }

// Converged implements Iterator.
func (s *BrentMinimizer) Converged() bool {
	return math.Abs(s.hi-s.lo) < AbsEpsilon*RelEpsilon+bracketWidth*minAbs(s.lo, s.hi)
}

// Iterate implements Iterator.
func (s *BrentMinimizer) Iterate() error {
	z, fz := s.z, s.fz
	v, w := s.v, s.w
	fv, fw := s.fv, s.fw
	d, e := s.e, s.d

	wLower := z - s.lo
	wUpper := s.hi - z
	tolerance := sqrtDblEpsilon*math.Abs(z) + minStepFloor
	midpoint := 0.5 * (s.lo + s.hi)

	var p, q, r float64
	if math.Abs(e) > tolerance {
		// parabola through z, w, v
		r = (z - w) * (fz - fv)
		q = (z - v) * (fz - fw)
		p = (z-v)*q - (z-w)*r
		q = 2 * (q - r)
		if q > 0 {
			p = -p
		} else {
			q = -q
		}
		r = e
		e = d
	}

	var u float64
	if math.Abs(p) < math.Abs(0.5*q*r) && p < q*wLower && p < q*wUpper {
		t2 := 2 * tolerance
		d = p / q
		u = z + d
		if (u-s.lo) < t2 || (s.hi-u) < t2 {
			if z < midpoint {
				d = tolerance
			} else {
				d = -tolerance
			}
		}
	} else {
		if z < midpoint {
			e = s.hi - z
		} else {
			e = -(z - s.lo)
		}
		d = golden * e
	}

	if math.Abs(d) >= tolerance {
		u = z + d
	} else if d > 0 {
		u = z + tolerance
	} else {
		u = z - tolerance
	}
	s.e, s.d = e, d

	fu := orInf(s.f(u))
	if fu <= fz {
		if u < z {
			s.hi = z
		} else {
			s.lo = z
		}
		s.v, s.fv = w, fw
		s.w, s.fw = z, fz
		s.z, s.fz = u, fu
		return nil
	}

	if u < z {
		s.lo = u
	} else {
		s.hi = u
	}
	if fu <= fw || w == z {
		s.v, s.fv = w, fw
		s.w, s.fw = u, fu
	} else if fu <= fv || v == z || v == w {
		s.v, s.fv = u, fu
	}

	return nil
}
