package measurement

import "math"

// Closed-form arithmetic between a Measurement and a plain number.
// None of these involve a solver and all results are exact in float64.

// Scale multiplies the central value by f and both errors by |f|.
// The errors are not swapped for negative f.
func (m Measurement) Scale(f float64) Measurement {
	a := math.Abs(f)
	return Measurement{central: m.central * f, errUp: m.errUp * a, errLo: m.errLo * a}
}

// Shift adds c to the central value.
func (m Measurement) Shift(c float64) Measurement {
	return Measurement{central: m.central + c, errUp: m.errUp, errLo: m.errLo}
}

// Divide divides the central value by f and both errors by |f|.
//
// Errors:
//   - ErrZeroDivisor if f is 0.
func (m Measurement) Divide(f float64) (Measurement, error) {
	if f == 0 {
		return Measurement{}, measurementErrorf(opDivide, ErrZeroDivisor)
	}
	a := math.Abs(f)

	return Measurement{central: m.central / f, errUp: m.errUp / a, errLo: m.errLo / a}, nil
}

// ScalarSub returns y − m: the central value is y − Central and the errors swap.
func ScalarSub(y float64, m Measurement) Measurement {
	return Measurement{central: y - m.central, errUp: m.errLo, errLo: m.errUp}
}

// ScalarDiv returns y / m with the first-order relative-error reciprocal:
// central y/c, errors |y/c|·(up/|c|) and |y/c|·(lo/|c|).
//
// Errors:
//   - ErrZeroCentral if m.Central() is 0.
func ScalarDiv(y float64, m Measurement) (Measurement, error) {
	if m.central == 0 {
		return Measurement{}, measurementErrorf(opScalarDiv, ErrZeroCentral)
	}
	c := y / m.central
	a := math.Abs(c)

	return Measurement{central: c, errUp: a * m.RelErrUp(), errLo: a * m.RelErrLo()}, nil
}
