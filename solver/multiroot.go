package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/minos/matrix"
)

const (
	// jacobianStep is the relative central-difference step for the Jacobian.
	jacobianStep = 1e-5
	// maxBacktrack bounds the number of step halvings in the line search.
	maxBacktrack = 30
	// armijo is the sufficient-decrease constant of the line search.
	armijo = 1e-4
)

// MultiRoot solves F(x) = 0 for a square system with damped Newton steps.
//
// Implementation:
//   - Stage 1: Jacobian J by central differences, hⱼ = 1e-5·max(|xⱼ|, 1).
//   - Stage 2: Newton direction δ from J·δ = −F via pivoted LU (package
//     matrix). A singular J falls back to the Cauchy step along −JᵀF.
//   - Stage 3: backtracking line search on ½‖F‖² with the Armijo condition.
//
// Convergence:
//
//	Σ|Fᵢ| < AbsEpsilon, or the last Newton step satisfies
//	|δᵢ| < AbsEpsilon + RelEpsilon·|xᵢ| for every i.
//
// The step test matters for stiff systems (near-zero variances), where the
// residual floor set by float64 spacing sits far above AbsEpsilon.
type MultiRoot struct {
	f  SystemFunc
	n  int
	x  []float64
	fx []float64
	dx []float64

	stepped bool

	jac        *matrix.Dense
	col        []float64
	xt, ft, fm []float64
}

var _ Iterator = (*MultiRoot)(nil)

// NewMultiRoot evaluates F at x0 and prepares the workspace.
//
// Errors:
//   - ErrDimension if x0 is empty.
func NewMultiRoot(f SystemFunc, x0 []float64) (*MultiRoot, error) {
	n := len(x0)
	if n == 0 {
		return nil, solverErrorf(opMultiRoot, ErrDimension)
	}
	jac, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, solverErrorf(opMultiRoot, err)
	}

	s := &MultiRoot{
		f:   f,
		n:   n,
		x:   append([]float64(nil), x0...),
		fx:  make([]float64, n),
		dx:  make([]float64, n),
		jac: jac,
		col: make([]float64, n),
		xt:  make([]float64, n),
		ft:  make([]float64, n),
		fm:  make([]float64, n),
	}
	f(s.x, s.fx)

	return s, nil
}

// Root returns a copy of the current iterate.
func (s *MultiRoot) Root() []float64 { return append([]float64(nil), s.x...) }

// Residual returns a copy of F at Root.
func (s *MultiRoot) Residual() []float64 { return append([]float64(nil), s.fx...) }

// Dim implements Iterator.
func (s *MultiRoot) Dim() int { return s.n }

// Converged implements Iterator.
func (s *MultiRoot) Converged() bool {
	if floats.Norm(s.fx, 1) < AbsEpsilon {
		return true
	}
	if !s.stepped {
		return false
	}
	for i, d := range s.dx {
		if math.Abs(d) >= AbsEpsilon+RelEpsilon*math.Abs(s.x[i]) {
			return false
		}
	}

	return true
}

// Iterate implements Iterator.
func (s *MultiRoot) Iterate() error {
	if !allFinite(s.fx) {
		return ErrStalled
	}
	if err := s.jacobian(); err != nil {
		return err
	}

	neg := make([]float64, s.n)
	floats.ScaleTo(neg, -1, s.fx)
	delta, err := matrix.SolveLinear(s.jac, neg)
	if err != nil || !allFinite(delta) {
		delta, err = s.cauchy()
		if err != nil {
			return err
		}
	}
	copy(s.dx, delta)
	s.stepped = true

	phi0 := 0.5 * floats.Dot(s.fx, s.fx)
	t := 1.0
	for k := 0; k < maxBacktrack; k++ {
		floats.AddScaledTo(s.xt, s.x, t, delta)
		s.f(s.xt, s.ft)
		if allFinite(s.ft) && 0.5*floats.Dot(s.ft, s.ft) <= phi0*(1-2*armijo*t) {
			copy(s.x, s.xt)
			copy(s.fx, s.ft)
			return nil
		}
		t *= 0.5
	}
	if s.Converged() {
		return nil
	}

	return ErrStalled
}

// jacobian fills s.jac column by column with central differences of F around s.x.
func (s *MultiRoot) jacobian() error {
	copy(s.xt, s.x)
	for j := 0; j < s.n; j++ {
		h := jacobianStep * math.Max(math.Abs(s.x[j]), 1)
		s.xt[j] = s.x[j] + h
		s.f(s.xt, s.ft)
		s.xt[j] = s.x[j] - h
		s.f(s.xt, s.fm)
		s.xt[j] = s.x[j]
		for i := 0; i < s.n; i++ {
			s.col[i] = (s.ft[i] - s.fm[i]) / (2 * h)
		}
		if err := s.jac.SetCol(j, s.col); err != nil {
			return err
		}
	}

	return nil
}

// cauchy returns the steepest-descent step −α·JᵀF minimising ‖F + J·δ‖.
func (s *MultiRoot) cauchy() ([]float64, error) {
	g, err := matrix.MatTVec(s.jac, s.fx)
	if err != nil {
		return nil, err
	}
	jg, err := matrix.MatVec(s.jac, g)
	if err != nil {
		return nil, err
	}
	den := floats.Dot(jg, jg)
	if den == 0 || !finite(den) {
		return nil, ErrStalled
	}
	floats.Scale(-floats.Dot(g, g)/den, g)

	return g, nil
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if !finite(x) {
			return false
		}
	}

	return true
}
