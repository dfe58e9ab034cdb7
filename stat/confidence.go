package stat

import (
	"math"
	"sync"

	"github.com/katalvlaran/minos/solver"
)

// maxSigma bounds the sigma search; larger intervals are not representable
// in float64 confidence levels anyway.
const maxSigma = 10

var (
	oneSigma = sync.OnceValue(func() float64 { return ConfidenceLevel(1) })
	twoSigma = sync.OnceValue(func() float64 { return ConfidenceLevel(2) })
)

// OneSigmaLevel is ConfidenceLevel(1) ≈ 0.682689, computed once.
func OneSigmaLevel() float64 { return oneSigma() }

// TwoSigmaLevel is ConfidenceLevel(2) ≈ 0.954500, computed once.
func TwoSigmaLevel() float64 { return twoSigma() }

// NormalCDF is the standard normal cumulative distribution ½(1 + erf(x/√2)).
func NormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// ConfidenceLevel is the probability mass of a standard normal within ±sigma.
func ConfidenceLevel(sigma float64) float64 {
	return NormalCDF(sigma) - NormalCDF(-sigma)
}

// SigmaInterval inverts ConfidenceLevel on [0, 10].
//
// Errors:
//   - ErrBadConfidence if cl ∉ (0, 1).
//   - solver errors (wrapped) if the root search fails.
func SigmaInterval(cl float64) (float64, error) {
	if !validConfidence(cl) {
		return math.NaN(), statErrorf(opSigmaInterval, ErrBadConfidence)
	}
	s, err := solver.Solve1D(ConfidenceLevel, cl, 0, maxSigma)
	if err != nil {
		return s, statErrorf(opSigmaInterval, err)
	}

	return s, nil
}

// DeltaNLLFromSigma is σ²/2.
func DeltaNLLFromSigma(sigma float64) float64 { return sigma * sigma / 2 }

// DeltaNLLFromConfidence is DeltaNLLFromSigma(SigmaInterval(cl)).
func DeltaNLLFromConfidence(cl float64) (float64, error) {
	s, err := SigmaInterval(cl)
	if err != nil {
		return math.NaN(), err
	}

	return DeltaNLLFromSigma(s), nil
}
