package measurement

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for auto-correction warnings.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) { pkgLogger.Store(l) }

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}

	return slog.Default()
}

// Measurement is an immutable value with asymmetric uncertainties.
// The zero value is 0 +0 -0.
type Measurement struct {
	central float64
	errUp   float64
	errLo   float64
}

// New builds a Measurement. Negative errors are flipped to their absolute
// value and a warning is logged; New never fails.
func New(central, errUp, errLo float64) Measurement {
	if errUp < 0 {
		logger().Warn("negative upper error, assuming flipped sign",
			slog.Float64("central", central), slog.Float64("up", errUp), slog.Float64("lo", errLo))
		errUp = -errUp
	}
	if errLo < 0 {
		logger().Warn("negative lower error, assuming flipped sign",
			slog.Float64("central", central), slog.Float64("up", errUp), slog.Float64("lo", errLo))
		errLo = -errLo
	}

	return Measurement{central: central, errUp: errUp, errLo: errLo}
}

// NewSymmetric is New(central, err, err).
func NewSymmetric(central, err float64) Measurement { return New(central, err, err) }

// Central returns the central value.
func (m Measurement) Central() float64 { return m.central }

// ErrUp returns the absolute upper error.
func (m Measurement) ErrUp() float64 { return m.errUp }

// ErrLo returns the absolute lower error.
func (m Measurement) ErrLo() float64 { return m.errLo }

// AvgErr is the mean of both errors.
func (m Measurement) AvgErr() float64 { return (m.errUp + m.errLo) / 2 }

// RelErrUp is ErrUp/|Central| (±Inf or NaN for a zero central).
func (m Measurement) RelErrUp() float64 { return m.errUp / math.Abs(m.central) }

// RelErrLo is ErrLo/|Central|.
func (m Measurement) RelErrLo() float64 { return m.errLo / math.Abs(m.central) }

// RelAvgErr is the mean of both relative errors.
func (m Measurement) RelAvgErr() float64 { return (m.RelErrUp() + m.RelErrLo()) / 2 }

// Upper is Central + ErrUp.
func (m Measurement) Upper() float64 { return m.central + m.errUp }

// Lower is Central − ErrLo.
func (m Measurement) Lower() float64 { return m.central - m.errLo }

// Normalized returns m/Central as a unit-central measurement. For a
// negative central the errors swap, since dividing flips direction.
//
// Errors:
//   - ErrZeroCentral if Central is 0.
func (m Measurement) Normalized() (Measurement, error) {
	if m.central == 0 {
		return Measurement{}, measurementErrorf(opNormalized, ErrZeroCentral)
	}
	if m.central < 0 {
		return Measurement{central: 1, errUp: m.RelErrLo(), errLo: m.RelErrUp()}, nil
	}

	return Measurement{central: 1, errUp: m.RelErrUp(), errLo: m.RelErrLo()}, nil
}

// String renders "c +up -lo" with %g verbs.
func (m Measurement) String() string {
	return fmt.Sprintf("%g +%g -%g", m.central, m.errUp, m.errLo)
}
