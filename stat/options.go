// Package stat: functional configuration for MinosND.
//
// Design goals:
//   - Deterministic behavior: no global state beyond the lazily computed
//     one-sigma level used as the default.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package stat

import "fmt"

// Option mutates MinosND options.
type Option func(*Options)

// Options configures MinosND. Build it with DefaultOptions and With* helpers.
type Options struct {
	// Confidence is the interval level in (0, 1). Default OneSigmaLevel().
	Confidence float64

	// UpperGuess seeds the root search for the upper extremum of g. Nil means x̂ + step.
	UpperGuess []float64

	// LowerGuess seeds the root search for the lower extremum of g. Nil means x̂ − step.
	LowerGuess []float64
}

// DefaultOptions returns the one-sigma configuration with no guesses.
func DefaultOptions() Options {
	return Options{Confidence: OneSigmaLevel()}
}

// WithConfidence sets the confidence level.
// Panics if cl is not in (0, 1).
func WithConfidence(cl float64) Option {
	if !validConfidence(cl) {
		panic(fmt.Sprintf("stat: WithConfidence(%v): %v", cl, ErrBadConfidence))
	}

	return func(o *Options) { o.Confidence = cl }
}

// WithUpperGuess seeds the upper-bound search. The slice is copied.
func WithUpperGuess(x []float64) Option {
	cp := append([]float64(nil), x...)
	return func(o *Options) { o.UpperGuess = cp }
}

// WithLowerGuess seeds the lower-bound search. The slice is copied.
func WithLowerGuess(x []float64) Option {
	cp := append([]float64(nil), x...)
	return func(o *Options) { o.LowerGuess = cp }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validConfidence(cl float64) bool { return cl > 0 && cl < 1 }
