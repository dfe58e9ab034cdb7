package measurement_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minos/measurement"
)

// captureLogs routes package warnings into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	measurement.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { measurement.SetLogger(nil) })

	return &buf
}

func assertMeasurement(t *testing.T, want, got measurement.Measurement, delta float64) {
	t.Helper()
	assert.InDelta(t, want.Central(), got.Central(), delta, "central of %v", got)
	assert.InDelta(t, want.ErrUp(), got.ErrUp(), delta, "up of %v", got)
	assert.InDelta(t, want.ErrLo(), got.ErrLo(), delta, "lo of %v", got)
}

func TestNew_FlipsNegativeErrors(t *testing.T) {
	logs := captureLogs(t)

	m := measurement.New(1, -2, -3)
	assert.Equal(t, 2.0, m.ErrUp())
	assert.Equal(t, 3.0, m.ErrLo())
	assert.Contains(t, logs.String(), "negative upper error")
	assert.Contains(t, logs.String(), "negative lower error")

	logs.Reset()
	_ = measurement.New(1, 2, 3)
	assert.Empty(t, logs.String())
}

func TestAccessors(t *testing.T) {
	m := measurement.New(-4, 2, 1)
	assert.Equal(t, -4.0, m.Central())
	assert.Equal(t, 1.5, m.AvgErr())
	assert.Equal(t, 0.5, m.RelErrUp())
	assert.Equal(t, 0.25, m.RelErrLo())
	assert.Equal(t, 0.375, m.RelAvgErr())
	assert.Equal(t, -2.0, m.Upper())
	assert.Equal(t, -5.0, m.Lower())
	assert.Equal(t, "-4 +2 -1", m.String())

	s := measurement.NewSymmetric(3, 0.5)
	assert.Equal(t, s.ErrUp(), s.ErrLo())
	assert.Equal(t, measurement.Measurement{}, measurement.New(0, 0, 0))
}

func TestNormalized(t *testing.T) {
	n, err := measurement.New(4, 2, 1).Normalized()
	require.NoError(t, err)
	assert.Equal(t, measurement.New(1, 0.5, 0.25), n)

	n, err = measurement.New(-4, 2, 1).Normalized()
	require.NoError(t, err)
	assert.Equal(t, measurement.New(1, 0.25, 0.5), n, "negative central swaps errors")

	_, err = measurement.New(0, 1, 1).Normalized()
	require.ErrorIs(t, err, measurement.ErrZeroCentral)
}

func TestScalarArithmetic(t *testing.T) {
	// exact, no tolerance
	assert.Equal(t, measurement.New(30, 6, 6), measurement.New(10, 2, 2).Scale(3))
	assert.Equal(t, measurement.New(-20, 4, 2), measurement.New(10, 2, 1).Scale(-2))
	assert.Equal(t, measurement.New(12, 2, 1), measurement.New(10, 2, 1).Shift(2))
	assert.Equal(t, measurement.New(7, 1, 2), measurement.ScalarSub(10, measurement.New(3, 2, 1)))

	d, err := measurement.New(10, 2, 1).Divide(-2)
	require.NoError(t, err)
	assert.Equal(t, measurement.New(-5, 1, 0.5), d)
	_, err = measurement.New(10, 2, 1).Divide(0)
	require.ErrorIs(t, err, measurement.ErrZeroDivisor)

	q, err := measurement.ScalarDiv(2, measurement.New(4, 1, 0.5))
	require.NoError(t, err)
	assert.Equal(t, measurement.New(0.5, 0.125, 0.0625), q)
	_, err = measurement.ScalarDiv(2, measurement.New(0, 1, 1))
	require.ErrorIs(t, err, measurement.ErrZeroCentral)
}

func TestDenominator(t *testing.T) {
	// symmetric errors: constant variance
	for _, x := range []float64{-100, -1, 0, 1, 100} {
		assert.Equal(t, 1.0, measurement.Denominator(x, 1, 1))
	}

	// splice point for up=2, lo=1: V=2, A=0.5, s=(−1−2)/2=−1.5
	const s, h = -1.5, 1e-7
	left := measurement.Denominator(s-h, 2, 1)
	right := measurement.Denominator(s+h, 2, 1)
	assert.InDelta(t, left, right, 1e-6, "continuous at the splice point")
	slopeL := (measurement.Denominator(s, 2, 1) - measurement.Denominator(s-1e-4, 2, 1)) / 1e-4
	slopeR := (measurement.Denominator(s+1e-4, 2, 1) - measurement.Denominator(s, 2, 1)) / 1e-4
	assert.InDelta(t, slopeL, slopeR, 1e-3, "derivative continuous at the splice point")
	assert.InDelta(t, 1.0, slopeR, 1e-3, "linear slope V·A")

	for _, x := range []float64{-1e3, -50, -4, -2, 0, 2, 50} {
		assert.Greater(t, measurement.Denominator(x, 2, 1), 0.0, "positive at %v", x)
		assert.Equal(t, measurement.Denominator(-x, 2, 1), measurement.Denominator(x, 1, 2), "mirror at %v", x)
	}

	// zero errors hit the variance floor
	assert.Equal(t, 1e-12, measurement.Denominator(0.5, 0, 0))
}

func TestAsymmetricNLL(t *testing.T) {
	g := measurement.New(5, 2, 2)
	assert.InDelta(t, 0.5, measurement.AsymmetricNLL(7, g), 1e-15)
	assert.InDelta(t, 0.5, measurement.AsymmetricNLL(3, g), 1e-15)
	assert.Equal(t, 0.0, measurement.AsymmetricNLL(5, g))

	// the model reproduces both one-sigma edges exactly
	for _, m := range []measurement.Measurement{
		measurement.New(10, 3, 1),
		measurement.New(10, 1, 3),
		measurement.New(-2, 0.4, 0.7),
	} {
		assert.InDelta(t, 0.5, measurement.AsymmetricNLL(m.Upper(), m), 1e-12, "upper edge of %v", m)
		assert.InDelta(t, 0.5, measurement.AsymmetricNLL(m.Lower(), m), 1e-12, "lower edge of %v", m)
	}

	// ratio cap inflates the smaller error to a tenth of the larger one
	capped := measurement.New(0, 100, 1)
	assert.InDelta(t, 0.5, measurement.AsymmetricNLL(-10, capped), 1e-12)

	// finite and positive far on the short side
	v := measurement.AsymmetricNLL(-50, measurement.New(0, 3, 1))
	assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	assert.Greater(t, v, 0.5)

	// the exponential tail underflows D; the NLL still grows and stays finite
	far := measurement.New(0, 2, 1)
	assert.Equal(t, math.SmallestNonzeroFloat64, measurement.Denominator(-1e4, 2, 1))
	prev := measurement.AsymmetricNLL(-50, far)
	for _, x := range []float64{-400, -1e3, -1e6} {
		v := measurement.AsymmetricNLL(x, far)
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "finite at %v", x)
		assert.GreaterOrEqual(t, v, prev, "non-decreasing at %v", x)
		prev = v
	}
}
