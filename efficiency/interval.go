package efficiency

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/minos/solver"
)

// Method selects how Bayesian turns the posterior into an interval.
type Method int

const (
	// ShortestInterval is the narrowest interval holding cl of the posterior.
	ShortestInterval Method = iota

	// CentralInterval leaves (1 − cl)/2 of the posterior on each side.
	CentralInterval
)

// String returns "shortest" or "central".
func (m Method) String() string {
	switch m {
	case ShortestInterval:
		return "shortest"
	case CentralInterval:
		return "central"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod is the inverse of Method.String (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shortest":
		return ShortestInterval, nil
	case "central":
		return CentralInterval, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadMethod, s)
}

func centralInterval(post distuv.Beta, cl float64) (float64, float64) {
	return post.Quantile((1 - cl) / 2), post.Quantile((1 + cl) / 2)
}

// shortestInterval minimises Q(x + cl) − Q(x) over the lower tail mass
// x ∈ [0, 1 − cl], Q being the posterior quantile.
//
// Shortcuts:
//   - symmetric posterior: the central interval.
//   - Alpha ≤ 1 (density peaks at 0): [0, Q(cl)].
//   - Beta ≤ 1 (density peaks at 1): [Q(1 − cl), 1].
func shortestInterval(post distuv.Beta, cl float64) (float64, float64, error) {
	switch {
	case post.Alpha == post.Beta:
		lo, hi := centralInterval(post, cl)
		return lo, hi, nil
	case post.Alpha <= 1:
		return 0, post.Quantile(cl), nil
	case post.Beta <= 1:
		return post.Quantile(1 - cl), 1, nil
	}

	quantile := func(p float64) float64 { return post.Quantile(math.Max(0, math.Min(p, 1))) }
	width := func(x float64) float64 { return quantile(x+cl) - quantile(x) }

	x, err := solver.Minimize1D(width, (1-cl)/2, 0, 1-cl)
	if err != nil && errors.Is(err, solver.ErrNoMinimum) {
		err = nil
	}

	return quantile(x), quantile(x + cl), err
}

// mode is the posterior mode, falling back to the boundary the density
// diverges at, or to the mean when both shapes are at most 1.
func mode(post distuv.Beta) float64 {
	a, b := post.Alpha, post.Beta
	switch {
	case a > 1 && b > 1:
		return (a - 1) / (a + b - 2)
	case a <= 1 && b > 1:
		return 0
	case b <= 1 && a > 1:
		return 1
	default:
		return a / (a + b)
	}
}
