package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/solver"
	"github.com/katalvlaran/minos/stat"
)

// Result is one evaluated combination.
type Result struct {
	Name  string                  `json:"name"`
	Op    Op                      `json:"op"`
	Value measurement.Measurement `json:"value"`

	// Warning carries a non-convergence report; Value is then the best
	// estimate the solver reached.
	Warning error `json:"-"`
}

// Evaluate runs every combination in document order at d.Confidence.
//
// Behavior highlights:
//   - inputs resolve against the measurements and the results of earlier
//     combinations.
//   - solver non-convergence does not stop evaluation; it is attached to the
//     Result as Warning.
//
// A zero Confidence means one sigma.
//
// Errors: ErrUnknownInput, ErrDuplicateName, stat.ErrBadConfidence, and
// measurement errors such as measurement.ErrZeroCentral for a product over
// a zero central value.
func (d *Document) Evaluate() ([]Result, error) {
	cl := d.Confidence
	if cl == 0 {
		cl = stat.OneSigmaLevel()
	}
	if !(cl > 0 && cl < 1) {
		return nil, configErrorf(opEvaluate, stat.ErrBadConfidence)
	}

	scope := make(map[string]measurement.Measurement, len(d.Measurements)+len(d.Combinations))
	for name, m := range d.Measurements {
		scope[name] = m
	}

	results := make([]Result, 0, len(d.Combinations))
	for _, c := range d.Combinations {
		if _, taken := scope[c.Name]; taken {
			return results, configErrorf(opEvaluate, fmt.Errorf("%w: %s", ErrDuplicateName, c.Name))
		}
		list := make([]measurement.Measurement, len(c.Inputs))
		for i, in := range c.Inputs {
			m, ok := scope[in]
			if !ok {
				return results, configErrorf(opEvaluate, fmt.Errorf("%w: %s (in %s)", ErrUnknownInput, in, c.Name))
			}
			list[i] = m
		}

		r := Result{Name: c.Name, Op: c.Op}
		var err error
		switch c.Op {
		case OpSum:
			r.Value, err = measurement.SumUncorrelated(list, measurement.WithConfidence(cl))
		case OpProd:
			r.Value, err = measurement.ProdUncorrelated(list, measurement.WithConfidence(cl))
		default:
			err = fmt.Errorf("%w: op %q", ErrSchema, c.Op)
		}
		if err != nil {
			if !errors.Is(err, solver.ErrNotConverged) {
				return results, configErrorf(opEvaluate, fmt.Errorf("%s: %w", c.Name, err))
			}
			r.Warning = err
		}

		scope[c.Name] = r.Value
		results = append(results, r)
	}

	return results, nil
}
