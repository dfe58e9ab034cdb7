package efficiency

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/solver"
	"github.com/katalvlaran/minos/stat"
)

// Minos returns the profile-likelihood interval of passed/total.
//
// Implementation:
//   - Interior counts: stat.Minos1D of stat.BinomialNLL on
//     [MachineEpsilon, 1 − MachineEpsilon] starting at passed/total.
//   - passed == 0: central 0, the upper edge solves NLL(ε) = ΔNLL.
//   - passed == total: central 1, the lower edge solves NLL(ε) = ΔNLL.
//
// Errors: ErrBadInput, stat.ErrBadConfidence, wrapped solver errors (the
// Measurement then holds the best estimate).
func Minos(passed, total, cl float64) (measurement.Measurement, error) {
	if err := validate(passed, total, cl); err != nil {
		return measurement.Measurement{}, efficiencyErrorf(opMinos, err)
	}
	nll := stat.BinomialNLL(passed, total)
	lo, hi := solver.MachineEpsilon, 1-solver.MachineEpsilon

	if passed == 0 || passed == total {
		delta, err := stat.DeltaNLLFromConfidence(cl)
		if err != nil {
			return measurement.Measurement{}, efficiencyErrorf(opMinos, err)
		}
		edge, err := solver.Solve1D(nll, delta, lo, hi)
		m := measurement.New(0, edge, 0)
		if passed == total {
			m = measurement.New(1, 0, 1-edge)
		}
		if err != nil {
			return m, efficiencyErrorf(opMinos, err)
		}
		return m, nil
	}

	iv, err := stat.Minos1D(nll, passed/total, lo, hi, cl)
	m := measurement.New(iv.Central, iv.ErrUp(), iv.ErrLo())
	if err != nil {
		return m, efficiencyErrorf(opMinos, err)
	}

	return m, nil
}

// Bayesian returns the posterior interval of the efficiency under a
// Beta(alpha, beta) prior; alpha = beta = 1 is the uniform prior.
//
// The posterior is Beta(passed + alpha, total − passed + beta). The central
// value is its mode (passed + alpha − 1)/(total + alpha + beta − 2), clamped
// into the interval; for posteriors without an interior mode the boundary
// (or the mean when neither shape exceeds 1) is used.
//
// Errors: ErrBadInput (also for non-positive alpha or beta), ErrBadMethod,
// stat.ErrBadConfidence, wrapped solver errors from the shortest-interval
// search.
func Bayesian(passed, total, cl float64, method Method, alpha, beta float64) (measurement.Measurement, error) {
	if err := validate(passed, total, cl); err != nil {
		return measurement.Measurement{}, efficiencyErrorf(opBayesian, err)
	}
	if !(alpha > 0 && beta > 0) || math.IsInf(alpha, 0) || math.IsInf(beta, 0) {
		return measurement.Measurement{}, efficiencyErrorf(opBayesian, ErrBadInput)
	}
	post := distuv.Beta{Alpha: passed + alpha, Beta: total - passed + beta}

	var (
		lower, upper float64
		err          error
	)
	switch method {
	case ShortestInterval:
		lower, upper, err = shortestInterval(post, cl)
	case CentralInterval:
		lower, upper = centralInterval(post, cl)
	default:
		return measurement.Measurement{}, efficiencyErrorf(opBayesian, ErrBadMethod)
	}

	central := math.Max(lower, math.Min(mode(post), upper))
	m := measurement.New(central, upper-central, central-lower)
	if err != nil {
		return m, efficiencyErrorf(opBayesian, err)
	}

	return m, nil
}

// ClopperPearson returns the exact frequentist interval around passed/total:
//
//	lower = B⁻¹(α/2; passed, total − passed + 1)      (0 when passed == 0)
//	upper = B⁻¹(1 − α/2; passed + 1, total − passed)  (1 when passed == total)
//
// with α = 1 − cl.
func ClopperPearson(passed, total, cl float64) (measurement.Measurement, error) {
	if err := validate(passed, total, cl); err != nil {
		return measurement.Measurement{}, efficiencyErrorf(opClopperPearson, err)
	}
	alpha := 1 - cl
	central := passed / total

	lower := 0.0
	if passed > 0 {
		lower = distuv.Beta{Alpha: passed, Beta: total - passed + 1}.Quantile(alpha / 2)
	}
	upper := 1.0
	if passed < total {
		upper = distuv.Beta{Alpha: passed + 1, Beta: total - passed}.Quantile(1 - alpha/2)
	}

	return measurement.New(central, upper-central, central-lower), nil
}

// Lazy returns ε ± SigmaInterval(cl)·√(ε(1−ε)/total) with ε = passed/total.
// The error vanishes at ε = 0 and ε = 1.
func Lazy(passed, total, cl float64) (measurement.Measurement, error) {
	if err := validate(passed, total, cl); err != nil {
		return measurement.Measurement{}, efficiencyErrorf(opLazy, err)
	}
	s, err := stat.SigmaInterval(cl)
	if err != nil {
		return measurement.Measurement{}, efficiencyErrorf(opLazy, err)
	}
	eps := passed / total

	return measurement.NewSymmetric(eps, s*math.Sqrt(eps*(1-eps)/total)), nil
}

func validate(passed, total, cl float64) error {
	if !finite(passed) || !finite(total) || total <= 0 || passed < 0 || passed > total {
		return ErrBadInput
	}
	if !(cl > 0 && cl < 1) {
		return stat.ErrBadConfidence
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
