package measurement

import (
	"math"

	"github.com/katalvlaran/minos/solver"
)

const (
	// maxRelError caps the ratio between the two errors; the smaller one is inflated.
	maxRelError = 10.0

	// minVariance floors up·lo so zero-error measurements stay well defined.
	minVariance = solver.RelEpsilon * solver.RelEpsilon

	// minNormal is the smallest normal float64 (2⁻¹⁰²²).
	minNormal = 0x1p-1022
)

// NLLFunc is an approximate negative log-likelihood of the true value x
// given a measurement m.
type NLLFunc func(x float64, m Measurement) float64

// AsymmetricNLL is the linear-variance approximation
//
//	NLL(x) = ½·(x − c)² / D(x − c)
//
// with the errors first limited to a ratio of at most 10 and D from
// Denominator. It is exactly Gaussian for symmetric errors. Far on the
// short side, where D underflows, the ratio is formed in log space and
// capped at math.MaxFloat64, so the NLL stays finite.
func AsymmetricNLL(x float64, m Measurement) float64 {
	up := math.Max(m.errUp, m.errLo/maxRelError)
	lo := math.Max(m.errLo, m.errUp/maxRelError)
	t := x - m.central
	if t == 0 {
		return 0
	}

	if d := Denominator(t, up, lo); d >= minNormal {
		return 0.5 * t * t / d
	}
	nll := math.Exp(2*math.Log(math.Abs(t)) - math.Ln2 - logDenominator(t, up, lo))

	return math.Min(nll, math.MaxFloat64)
}

// Denominator is the variance function D(t) of AsymmetricNLL:
//
//	V = max(up·lo, RelEpsilon²),  A = (up − lo)/V,  D(t) = V·(1 + A·t)
//
// Past the splice point s = (−lo − 1/A)/2 on the side of the smaller error,
// D continues as V·(1 + A·s)·exp(b·(t − s)) with b = A/(1 + A·s), so that D
// and D′ are continuous at s. The lo > up case is the mirror image
// D(t; up, lo) = D(−t; lo, up). D is strictly positive everywhere: the
// exponential tail is floored at math.SmallestNonzeroFloat64.
func Denominator(t, up, lo float64) float64 {
	if lo > up {
		return Denominator(-t, lo, up)
	}

	v, a, s, b := splice(up, lo)
	if t < s {
		return math.Max(v*(1+a*s)*math.Exp(b*(t-s)), math.SmallestNonzeroFloat64)
	}

	return v * (1 + a*t)
}

// logDenominator is ln D(t) without the underflow floor.
func logDenominator(t, up, lo float64) float64 {
	if lo > up {
		return logDenominator(-t, lo, up)
	}

	v, a, s, b := splice(up, lo)
	if t < s {
		return math.Log(v*(1+a*s)) + b*(t-s)
	}

	return math.Log(v * (1 + a*t))
}

// splice returns V, A, the splice point s and the tail rate b for up ≥ lo.
// Symmetric errors have no splice point (s = −Inf).
func splice(up, lo float64) (v, a, s, b float64) {
	v = math.Max(up*lo, minVariance)
	a = (up - lo) / v
	if a == 0 {
		return v, 0, math.Inf(-1), 0
	}
	s = (-lo - 1/a) / 2

	return v, a, s, a / (1 + a*s)
}
