package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Nelder–Mead coefficients.
const (
	reflectCoef  = 1.0
	expandCoef   = 2.0
	contractCoef = 0.5
	shrinkCoef   = 0.5
)

// Simplex minimises f over ℝⁿ with the Nelder–Mead downhill simplex.
//
// Implementation:
//   - Stage 1: vertices x₀ and x₀ + stepᵢ·eᵢ.
//   - Stage 2: each step replaces the worst vertex by a reflected, expanded
//     or contracted point, or shrinks the whole simplex toward the best one.
//
// Convergence:
//
//	mean Euclidean distance of the vertices to their centroid < AbsEpsilon.
//
// Notes:
//   - NaN values are treated as +Inf so that invalid regions are rejected.
type Simplex struct {
	f    FuncND
	n    int
	x    [][]float64
	fx   []float64
	size float64

	// scratch
	centroid, trial, trial2 []float64
}

var _ Iterator = (*Simplex)(nil)

// NewSimplex builds the initial simplex around x0.
//
// Errors:
//   - ErrDimension if x0 is empty or len(step) != len(x0).
func NewSimplex(f FuncND, x0, step []float64) (*Simplex, error) {
	n := len(x0)
	if n == 0 || len(step) != n {
		return nil, solverErrorf(opSimplex, ErrDimension)
	}

	s := &Simplex{
		f:        f,
		n:        n,
		x:        make([][]float64, n+1),
		fx:       make([]float64, n+1),
		centroid: make([]float64, n),
		trial:    make([]float64, n),
		trial2:   make([]float64, n),
	}
	for i := 0; i <= n; i++ {
		s.x[i] = make([]float64, n)
		copy(s.x[i], x0)
		if i > 0 {
			s.x[i][i-1] += step[i-1]
		}
		s.fx[i] = orInf(f(s.x[i]))
	}
	s.size = s.computeSize()

	return s, nil
}

// Minimum returns a copy of the best vertex.
func (s *Simplex) Minimum() []float64 {
	best := s.best()
	out := make([]float64, s.n)
	copy(out, s.x[best])

	return out
}

// Value returns f at Minimum.
func (s *Simplex) Value() float64 { return s.fx[s.best()] }

// Size returns the mean vertex distance to the centroid.
func (s *Simplex) Size() float64 { return s.size }

// Dim implements Iterator.
func (s *Simplex) Dim() int { return s.n }

// Converged implements Iterator.
func (s *Simplex) Converged() bool { return s.size < AbsEpsilon }

// Iterate implements Iterator.
func (s *Simplex) Iterate() error {
	lo, hi, next := s.rank()

	// centroid of all vertices except the worst
	for j := range s.centroid {
		s.centroid[j] = 0
	}
	for i := range s.x {
		if i != hi {
			floats.Add(s.centroid, s.x[i])
		}
	}
	floats.Scale(1/float64(s.n), s.centroid)

	fr := s.along(s.trial, s.x[hi], reflectCoef)
	switch {
	case fr < s.fx[lo]:
		fe := s.along(s.trial2, s.x[hi], expandCoef)
		if fe < fr {
			s.replace(hi, s.trial2, fe)
		} else {
			s.replace(hi, s.trial, fr)
		}
	case fr < s.fx[next]:
		s.replace(hi, s.trial, fr)
	case fr < s.fx[hi]:
		// outside contraction
		fc := s.along(s.trial2, s.x[hi], reflectCoef*contractCoef)
		if fc <= fr {
			s.replace(hi, s.trial2, fc)
		} else {
			s.shrink(lo)
		}
	default:
		// inside contraction
		fc := s.along(s.trial2, s.x[hi], -contractCoef)
		if fc < s.fx[hi] {
			s.replace(hi, s.trial2, fc)
		} else {
			s.shrink(lo)
		}
	}
	s.size = s.computeSize()

	return nil
}

// along writes dst = c + coef·(c − worst) and returns f(dst).
func (s *Simplex) along(dst, worst []float64, coef float64) float64 {
	floats.SubTo(dst, s.centroid, worst)
	floats.Scale(coef, dst)
	floats.Add(dst, s.centroid)

	return orInf(s.f(dst))
}

func (s *Simplex) replace(i int, pt []float64, v float64) {
	copy(s.x[i], pt)
	s.fx[i] = v
}

// shrink moves every vertex halfway toward the best one.
func (s *Simplex) shrink(best int) {
	for i := range s.x {
		if i == best {
			continue
		}
		for j := range s.x[i] {
			s.x[i][j] = s.x[best][j] + shrinkCoef*(s.x[i][j]-s.x[best][j])
		}
		s.fx[i] = orInf(s.f(s.x[i]))
	}
}

// rank returns the indices of the best, worst and second-worst vertices.
func (s *Simplex) rank() (lo, hi, next int) {
	lo, hi = 0, 0
	for i, v := range s.fx {
		if v < s.fx[lo] {
			lo = i
		}
		if v > s.fx[hi] {
			hi = i
		}
	}
	if hi == lo {
		hi = len(s.fx) - 1
		if lo == hi {
			hi = 0
		}
	}
	next = lo
	for i, v := range s.fx {
		if i != hi && v >= s.fx[next] {
			next = i
		}
	}

	return lo, hi, next
}

func (s *Simplex) best() int {
	lo := 0
	for i, v := range s.fx {
		if v < s.fx[lo] {
			lo = i
		}
	}

	return lo
}

func (s *Simplex) computeSize() float64 {
	c := make([]float64, s.n)
	for i := range s.x {
		floats.Add(c, s.x[i])
	}
	floats.Scale(1/float64(len(s.x)), c)

	var sum float64
	for i := range s.x {
		sum += floats.Distance(s.x[i], c, 2)
	}
	size := sum / float64(len(s.x))
	if math.IsNaN(size) {
		return math.Inf(1)
	}

	return size
}
