package poisson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/poisson"
	"github.com/katalvlaran/minos/stat"
)

func TestMinos_Zero(t *testing.T) {
	m, err := poisson.Minos(0, stat.OneSigmaLevel())
	require.NoError(t, err)
	assert.Equal(t, measurement.Measurement{}, m)
}

func TestMinos_LikelihoodContour(t *testing.T) {
	for _, obs := range []float64{1, 4, 20, 25, 100} {
		m, err := poisson.Minos(obs, stat.OneSigmaLevel())
		require.NoError(t, err, "obs=%v", obs)

		nll := stat.PoissonNLL(obs)
		assert.InDelta(t, obs, m.Central(), 5e-7*obs, "central at obs=%v", obs)
		assert.InDelta(t, nll(m.Central())+0.5, nll(m.Upper()), 1e-6, "upper contour at obs=%v", obs)
		assert.InDelta(t, nll(m.Central())+0.5, nll(m.Lower()), 1e-6, "lower contour at obs=%v", obs)
		assert.Greater(t, m.ErrUp(), m.ErrLo(), "right-skewed at obs=%v", obs)
	}
}

func TestMinos_ApproachesSqrtN(t *testing.T) {
	m, err := poisson.Minos(1e4, stat.OneSigmaLevel())
	require.NoError(t, err)
	assert.InEpsilon(t, 100.0, m.AvgErr(), 1e-3)
}

func TestLazy(t *testing.T) {
	m, err := poisson.Lazy(9, stat.OneSigmaLevel())
	require.NoError(t, err)
	assert.Equal(t, 9.0, m.Central())
	assert.InDelta(t, 3.0, m.ErrUp(), 1e-6)
	assert.InDelta(t, 3.0, m.ErrLo(), 1e-6)

	m, err = poisson.Lazy(9, stat.TwoSigmaLevel())
	require.NoError(t, err)
	assert.InDelta(t, 6.0, m.ErrUp(), 1e-6)
}

func TestCMSStatCom(t *testing.T) {
	cl := stat.OneSigmaLevel()
	alpha := 1 - cl

	// n = 0: the upper edge of Γ(1, 1) is −ln(α/2).
	m, err := poisson.CMSStatCom(0, cl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Central())
	assert.Equal(t, 0.0, m.ErrLo())
	assert.InDelta(t, -math.Log(alpha/2), m.ErrUp(), 1e-6)

	// n = 1: lower edge −ln(1 − α/2), upper edge 3.300 from the usual tables.
	m, err = poisson.CMSStatCom(1, cl)
	require.NoError(t, err)
	assert.InDelta(t, 1+math.Log(1-alpha/2), m.ErrLo(), 1e-6)
	assert.InDelta(t, 2.300, m.ErrUp(), 1e-3)
}

func TestBadInput(t *testing.T) {
	builders := map[string]func(float64, float64) (measurement.Measurement, error){
		"Minos":      poisson.Minos,
		"Lazy":       poisson.Lazy,
		"CMSStatCom": poisson.CMSStatCom,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			_, err := build(-1, stat.OneSigmaLevel())
			require.ErrorIs(t, err, poisson.ErrBadInput)
			_, err = build(math.NaN(), stat.OneSigmaLevel())
			require.ErrorIs(t, err, poisson.ErrBadInput)
			_, err = build(3, 1)
			require.ErrorIs(t, err, stat.ErrBadConfidence)
		})
	}
}
