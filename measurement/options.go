// Package measurement: functional configuration for the likelihood-based
// combinations.
//
// Defaults:
//   - Confidence: stat.OneSigmaLevel()
//   - NLL:        AsymmetricNLL

package measurement

import (
	"fmt"

	"github.com/katalvlaran/minos/stat"
)

// Option mutates combination Options.
type Option func(*Options)

// Options configures SumUncorrelated, ProdUncorrelated and EvaluateUncorrelated.
type Options struct {
	Confidence float64
	NLL        NLLFunc
}

// DefaultOptions returns the one-sigma, AsymmetricNLL configuration.
func DefaultOptions() Options {
	return Options{Confidence: stat.OneSigmaLevel(), NLL: AsymmetricNLL}
}

// WithConfidence sets the confidence level. Panics if cl ∉ (0, 1).
func WithConfidence(cl float64) Option {
	if !(cl > 0 && cl < 1) {
		panic(fmt.Sprintf("measurement: WithConfidence(%v): %v", cl, stat.ErrBadConfidence))
	}

	return func(o *Options) { o.Confidence = cl }
}

// WithNLL replaces the per-measurement NLL model. Panics on nil.
func WithNLL(fn NLLFunc) Option {
	if fn == nil {
		panic("measurement: WithNLL(nil)")
	}

	return func(o *Options) { o.NLL = fn }
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
