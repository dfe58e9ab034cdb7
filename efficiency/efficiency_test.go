package efficiency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/minos/efficiency"
	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/stat"
)

func TestMinos_Interior(t *testing.T) {
	m, err := efficiency.Minos(5, 10, stat.OneSigmaLevel())
	require.NoError(t, err)

	nll := stat.BinomialNLL(5, 10)
	assert.InDelta(t, 0.5, m.Central(), 1e-5)
	assert.InDelta(t, nll(0.5)+0.5, nll(m.Upper()), 1e-6)
	assert.InDelta(t, nll(0.5)+0.5, nll(m.Lower()), 1e-6)
	assert.InDelta(t, m.ErrUp(), m.ErrLo(), 1e-5, "symmetric at ε = 1/2")
}

func TestMinos_Boundaries(t *testing.T) {
	cl := stat.OneSigmaLevel()

	none, err := efficiency.Minos(0, 10, cl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, none.Central())
	assert.Equal(t, 0.0, none.ErrLo())
	assert.InDelta(t, 1-math.Exp(-0.05), none.ErrUp(), 1e-7)

	all, err := efficiency.Minos(10, 10, cl)
	require.NoError(t, err)
	assert.Equal(t, 1.0, all.Central())
	assert.Equal(t, 0.0, all.ErrUp())
	assert.InDelta(t, 1-math.Exp(-0.05), all.ErrLo(), 1e-7)
}

func TestClopperPearson(t *testing.T) {
	m, err := efficiency.ClopperPearson(0, 10, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.ErrLo())
	assert.InDelta(t, 1-math.Pow(0.025, 0.1), m.ErrUp(), 1e-7)

	m, err = efficiency.ClopperPearson(10, 10, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.ErrUp())
	assert.InDelta(t, 1-math.Pow(0.025, 0.1), m.ErrLo(), 1e-7)

	m, err = efficiency.ClopperPearson(5, 10, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.1871, m.Lower(), 1e-4)
	assert.InDelta(t, 0.8129, m.Upper(), 1e-4)
}

func TestLazy(t *testing.T) {
	m, err := efficiency.Lazy(5, 10, stat.OneSigmaLevel())
	require.NoError(t, err)
	assertSymmetric(t, measurement.NewSymmetric(0.5, math.Sqrt(0.025)), m)

	m, err = efficiency.Lazy(0, 10, stat.OneSigmaLevel())
	require.NoError(t, err)
	assertSymmetric(t, measurement.Measurement{}, m)
}

func assertSymmetric(t *testing.T, want, got measurement.Measurement) {
	t.Helper()
	assert.InDelta(t, want.Central(), got.Central(), 1e-9)
	assert.InDelta(t, want.ErrUp(), got.ErrUp(), 1e-6)
	assert.InDelta(t, want.ErrLo(), got.ErrLo(), 1e-6)
}

func TestBadInput(t *testing.T) {
	cl := stat.OneSigmaLevel()
	for _, in := range [][2]float64{{-1, 10}, {11, 10}, {0, 0}, {1, math.NaN()}, {math.Inf(1), math.Inf(1)}} {
		_, err := efficiency.Minos(in[0], in[1], cl)
		require.ErrorIs(t, err, efficiency.ErrBadInput, "Minos%v", in)
		_, err = efficiency.ClopperPearson(in[0], in[1], cl)
		require.ErrorIs(t, err, efficiency.ErrBadInput, "ClopperPearson%v", in)
		_, err = efficiency.Lazy(in[0], in[1], cl)
		require.ErrorIs(t, err, efficiency.ErrBadInput, "Lazy%v", in)
		_, err = efficiency.Bayesian(in[0], in[1], cl, efficiency.ShortestInterval, 1, 1)
		require.ErrorIs(t, err, efficiency.ErrBadInput, "Bayesian%v", in)
	}

	_, err := efficiency.Minos(1, 2, 0)
	require.ErrorIs(t, err, stat.ErrBadConfidence)
	_, err = efficiency.Bayesian(1, 2, cl, efficiency.CentralInterval, 0, 1)
	require.ErrorIs(t, err, efficiency.ErrBadInput)
	_, err = efficiency.Bayesian(1, 2, cl, efficiency.Method(7), 1, 1)
	require.ErrorIs(t, err, efficiency.ErrBadMethod)
}

func TestParseMethod(t *testing.T) {
	for _, m := range []efficiency.Method{efficiency.ShortestInterval, efficiency.CentralInterval} {
		got, err := efficiency.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := efficiency.ParseMethod(" Central ")
	require.NoError(t, err)
	assert.Equal(t, efficiency.CentralInterval, got)

	_, err = efficiency.ParseMethod("widest")
	require.ErrorIs(t, err, efficiency.ErrBadMethod)
	assert.Equal(t, "Method(7)", efficiency.Method(7).String())
}

// BayesianSuite checks the posterior intervals against closed forms and the
// defining properties of the shortest interval.
type BayesianSuite struct {
	suite.Suite
	cl float64
}

func (s *BayesianSuite) SetupTest() { s.cl = 0.95 }

// For Beta(1, b) the quantile is 1 − (1 − q)^(1/b).
func betaOneQuantile(q, b float64) float64 { return 1 - math.Pow(1-q, 1/b) }

func (s *BayesianSuite) TestCentralNoPass() {
	m, err := efficiency.Bayesian(0, 10, s.cl, efficiency.CentralInterval, 1, 1)
	s.Require().NoError(err)

	lo, hi := betaOneQuantile(0.025, 11), betaOneQuantile(0.975, 11)
	s.InDelta(lo, m.Lower(), 1e-7)
	s.InDelta(hi, m.Upper(), 1e-7)
	s.InDelta(lo, m.Central(), 1e-12, "mode 0 is clamped into the interval")
}

func (s *BayesianSuite) TestShortestNoPass() {
	m, err := efficiency.Bayesian(0, 10, s.cl, efficiency.ShortestInterval, 1, 1)
	s.Require().NoError(err)
	s.Equal(0.0, m.Central())
	s.Equal(0.0, m.ErrLo())
	s.InDelta(betaOneQuantile(s.cl, 11), m.ErrUp(), 1e-7)
}

func (s *BayesianSuite) TestShortestSymmetric() {
	shortest, err := efficiency.Bayesian(5, 10, s.cl, efficiency.ShortestInterval, 1, 1)
	s.Require().NoError(err)
	central, err := efficiency.Bayesian(5, 10, s.cl, efficiency.CentralInterval, 1, 1)
	s.Require().NoError(err)

	s.InDelta(0.5, shortest.Central(), 1e-12)
	s.InDelta(shortest.ErrUp(), shortest.ErrLo(), 1e-7)
	s.InDelta(central.ErrUp(), shortest.ErrUp(), 1e-12)
}

func (s *BayesianSuite) TestShortestSkewed() {
	const passed, total = 2.0, 10.0
	post := distuv.Beta{Alpha: passed + 1, Beta: total - passed + 1}

	shortest, err := efficiency.Bayesian(passed, total, s.cl, efficiency.ShortestInterval, 1, 1)
	s.Require().NoError(err)
	central, err := efficiency.Bayesian(passed, total, s.cl, efficiency.CentralInterval, 1, 1)
	s.Require().NoError(err)

	s.InDelta(0.2, shortest.Central(), 1e-12, "posterior mode")
	s.InDelta(s.cl, post.CDF(shortest.Upper())-post.CDF(shortest.Lower()), 1e-6, "coverage")
	s.InEpsilon(post.Prob(shortest.Lower()), post.Prob(shortest.Upper()), 1e-3, "equal density at the edges")
	s.Less(shortest.Upper()-shortest.Lower(), central.Upper()-central.Lower())
}

func (s *BayesianSuite) TestPriorShiftsMode() {
	m, err := efficiency.Bayesian(2, 10, s.cl, efficiency.CentralInterval, 2, 2)
	s.Require().NoError(err)
	s.InDelta(3.0/12.0, m.Central(), 1e-12)
}

func TestBayesianSuite(t *testing.T) {
	suite.Run(t, new(BayesianSuite))
}
