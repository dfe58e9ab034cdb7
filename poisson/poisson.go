package poisson

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/solver"
	"github.com/katalvlaran/minos/stat"
)

// Minos returns the profile-likelihood interval of the Poisson mean.
//
// Implementation:
//   - obs == 0 yields the exact zero Measurement.
//   - otherwise stat.Minos1D of stat.PoissonNLL(obs) on
//     [MachineEpsilon, obs + obs² + 1], starting at obs.
//
// Errors: ErrBadInput, stat.ErrBadConfidence, wrapped solver errors (the
// Measurement then holds the best estimate).
func Minos(obs, cl float64) (measurement.Measurement, error) {
	if err := validate(obs, cl); err != nil {
		return measurement.Measurement{}, poissonErrorf(opMinos, err)
	}
	if obs == 0 {
		return measurement.Measurement{}, nil
	}

	iv, err := stat.Minos1D(stat.PoissonNLL(obs), obs, solver.MachineEpsilon, obs+obs*obs+1, cl)
	m := measurement.New(iv.Central, iv.ErrUp(), iv.ErrLo())
	if err != nil {
		return m, poissonErrorf(opMinos, err)
	}

	return m, nil
}

// Lazy returns obs ± √obs·SigmaInterval(cl).
func Lazy(obs, cl float64) (measurement.Measurement, error) {
	if err := validate(obs, cl); err != nil {
		return measurement.Measurement{}, poissonErrorf(opLazy, err)
	}
	s, err := stat.SigmaInterval(cl)
	if err != nil {
		return measurement.Measurement{}, poissonErrorf(opLazy, err)
	}

	return measurement.NewSymmetric(obs, s*math.Sqrt(obs)), nil
}

// CMSStatCom returns the Garwood interval for obs at level cl:
//
//	lower = Γ⁻¹(α/2; obs, 1)        (0 when obs == 0)
//	upper = Γ⁻¹(1 − α/2; obs + 1, 1)
//
// with α = 1 − cl. The central value is obs itself.
func CMSStatCom(obs, cl float64) (measurement.Measurement, error) {
	if err := validate(obs, cl); err != nil {
		return measurement.Measurement{}, poissonErrorf(opCMSStatCom, err)
	}
	alpha := 1 - cl

	lower := 0.0
	if obs > 0 {
		lower = distuv.Gamma{Alpha: obs, Beta: 1}.Quantile(alpha / 2)
	}
	upper := distuv.Gamma{Alpha: obs + 1, Beta: 1}.Quantile(1 - alpha/2)

	return measurement.New(obs, upper-obs, obs-lower), nil
}

func validate(obs, cl float64) error {
	if math.IsNaN(obs) || math.IsInf(obs, 0) || obs < 0 {
		return ErrBadInput
	}
	if !(cl > 0 && cl < 1) {
		return stat.ErrBadConfidence
	}

	return nil
}
