package solver

import "math"

// BrentRoot finds a root of f on a bracketing interval using the
// Brent–Dekker method.
//
// Implementation:
//   - Keeps a contrapoint c with f(b)·f(c) < 0 and the best estimate b.
//   - Tries inverse quadratic interpolation (secant when only two distinct
//     points exist) and falls back to bisection whenever the interpolated
//     step is not comfortably inside the bracket.
//
// Convergence:
//
//	|hi − lo| < AbsEpsilon + AbsEpsilon·min(|lo|, |hi|), where the min term is
//	zero when the bracket straddles 0.
type BrentRoot struct {
	f Func1D

	a, b, c    float64
	fa, fb, fc float64
	d, e       float64

	lo, hi float64
}

var _ Iterator = (*BrentRoot)(nil)

// NewBrentRoot initialises the solver on [lo, hi].
//
// Errors:
//   - ErrBadInterval if lo >= hi or an endpoint is not finite.
//   - ErrNoBracket if f(lo) and f(hi) have the same sign.
func NewBrentRoot(f Func1D, lo, hi float64) (*BrentRoot, error) {
	if !finite(lo) || !finite(hi) || lo >= hi {
		return nil, solverErrorf(opBrentRoot, ErrBadInterval)
	}

	flo, fhi := f(lo), f(hi)
	if (flo < 0 && fhi < 0) || (flo > 0 && fhi > 0) || math.IsNaN(flo) || math.IsNaN(fhi) {
		return nil, solverErrorf(opBrentRoot, ErrNoBracket)
	}

	return &BrentRoot{
		f: f,
		a: lo, fa: flo,
		b: hi, fb: fhi,
		c: hi, fc: fhi,
		d: hi - lo, e: hi - lo,
		lo: lo, hi: hi,
	}, nil
}

// Root returns the current best estimate.
func (s *BrentRoot) Root() float64 { return s.b }

// Bracket returns the current enclosing interval.
func (s *BrentRoot) Bracket() (lo, hi float64) { return s.lo, s.hi }

// Dim implements Iterator.
func (s *BrentRoot) Dim() int { return 1 }

// Converged implements Iterator.
func (s *BrentRoot) Converged() bool {
	return s.lo == s.hi || math.Abs(s.hi-s.lo) < AbsEpsilon+AbsEpsilon*minAbs(s.lo, s.hi)
}

// Iterate implements Iterator.
func (s *BrentRoot) Iterate() error {
	a, b, c := s.a, s.b, s.c
	fa, fb, fc := s.fa, s.fb, s.fc
	d, e := s.d, s.e

	acEqual := false
	if (fb < 0 && fc < 0) || (fb > 0 && fc > 0) {
		acEqual = true
		c, fc = a, fa
		d, e = b-a, b-a
	}
	if math.Abs(fc) < math.Abs(fb) {
		acEqual = true
		a, b, c = b, c, b
		fa, fb, fc = fb, fc, fb
	}

	tol := 0.5 * 2 * MachineEpsilon * math.Abs(b)
	m := 0.5 * (c - b)

	if fb == 0 {
		s.a, s.b, s.c, s.fa, s.fb, s.fc, s.d, s.e = a, b, c, fa, fb, fc, d, e
		s.lo, s.hi = b, b
		return nil
	}
	if math.Abs(m) <= tol {
		s.a, s.b, s.c, s.fa, s.fb, s.fc, s.d, s.e = a, b, c, fa, fb, fc, d, e
		s.lo, s.hi = math.Min(b, c), math.Max(b, c)
		return nil
	}

	if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
		d, e = m, m // bisection
	} else {
		var p, q, r float64
		sr := fb / fa
		if acEqual {
			p = 2 * m * sr
			q = 1 - sr
		} else {
			q = fa / fc
			r = fb / fc
			p = sr * (2*m*q*(q-r) - (b-a)*(r-1))
			q = (q - 1) * (r - 1) * (sr - 1)
		}
		if p > 0 {
			q = -q
		} else {
			p = -p
		}
		if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
			e = d
			d = p / q
		} else {
			d, e = m, m
		}
	}

	a, fa = b, fb
	if math.Abs(d) > tol {
		b += d
	} else if m > 0 {
		b += tol
	} else {
		b -= tol
	}
	fb = s.f(b)
	if math.IsNaN(fb) {
		return ErrStalled
	}

	s.a, s.b, s.c, s.fa, s.fb, s.fc, s.d, s.e = a, b, c, fa, fb, fc, d, e

	// bracket update uses a local contrapoint; state c is refreshed next step
	if (fb < 0 && fc < 0) || (fb > 0 && fc > 0) {
		c = a
	}
	s.lo, s.hi = math.Min(b, c), math.Max(b, c)

	return nil
}

// minAbs is min(|lo|,|hi|), or 0 when the interval contains zero.
func minAbs(lo, hi float64) float64 {
	if (lo > 0 && hi > 0) || (lo < 0 && hi < 0) {
		return math.Min(math.Abs(lo), math.Abs(hi))
	}

	return 0
}
