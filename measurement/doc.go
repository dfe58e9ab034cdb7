// Package measurement provides Measurement, a value with an asymmetric
// uncertainty (central, upper error, lower error), and the arithmetic that
// propagates such uncertainties.
//
// Two propagation paths exist:
//
//	Closed form (exact, no solver):
//	  Scale, Shift, Divide, ScalarSub, ScalarDiv.
//
//	Profile likelihood (Minos, via package stat):
//	  SumUncorrelated, ProdUncorrelated, EvaluateUncorrelated and the
//	  Sum, Prod, Plus, Times conveniences. Each input contributes an
//	  approximate NLL (AsymmetricNLL by default) to a joint NLL; the interval
//	  of the derived quantity is read off the ΔNLL contour.
//
// The two paths are not guaranteed to agree numerically: ScalarDiv uses a
// first-order relative-error reciprocal, while Prod of a Measurement with a
// zero-error one runs the full likelihood machinery.
//
// Errors:
//
//	Likelihood-based functions return (Measurement, error). When the error
//	wraps solver.ErrNotConverged the Measurement still carries the best
//	estimate, so callers may log and continue. Other errors (empty input,
//	zero centrals in products) come with a zero Measurement.
//
// Logging:
//
//	Auto-corrections (negative errors flipped by New) are reported through
//	log/slog. SetLogger replaces the package logger; the default is
//	slog.Default().
package measurement
