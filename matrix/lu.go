// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting and linear solve.
//
// Purpose:
//   - Factor a square A as P·A = L·U (Doolittle, unit lower L) in one packed buffer.
//   - Solve A·x = b for the Newton steps of the N-D root finder.
//
// Determinism:
//   - Pivot choice is the first row with the largest |value| in the column,
//     so identical inputs always produce identical permutations.

package matrix

import "math"

// pivotFloor is the absolute magnitude under which a pivot is treated as zero.
const pivotFloor = 1e-300

// LUFactor holds a packed LU factorization of an n×n matrix.
//   - lu stores U on and above the diagonal and the multipliers of L below it.
//   - perm maps factored row i to original row perm[i].
type LUFactor struct {
	n    int
	lu   []float64
	perm []int
	sign float64
}

// LU factors a square matrix with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate non-nil, square, finite.
//   - Stage 2: For each column k pick the pivot row with maximal |a[i][k]|, i ≥ k,
//     swap rows, then eliminate below the pivot storing multipliers in place.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf from validation.
//   - ErrSingular when the best pivot of a column has magnitude below pivotFloor.
//
// Complexity: Time O(n³), Space O(n²).
func LU(a *Dense) (*LUFactor, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateFinite(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := a.r
	f := &LUFactor{
		n:    n,
		lu:   make([]float64, n*n),
		perm: make([]int, n),
		sign: 1,
	}
	copy(f.lu, a.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	var i, j, k, p int
	var maxAbs, v, pivot, mult float64
	for k = 0; k < n; k++ {
		p = k
		maxAbs = math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			v = math.Abs(f.lu[i*n+k])
			if v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs < pivotFloor {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		pivot = f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			mult = f.lu[i*n+k] / pivot
			f.lu[i*n+k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= mult * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Det returns the determinant of the factored matrix.
func (f *LUFactor) Det() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Solve returns x with A·x = b. The factor is not modified and may be reused.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch when b does not have n entries.
//
// Complexity: Time O(n²), Space O(n).
func (f *LUFactor) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := f.n
	x := make([]float64, n)
	var i, j int
	var sum float64
	// forward: L·y = P·b
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j = 0; j < i; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// backward: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// SolveLinear is a convenience wrapper: LU(a) followed by Solve(b).
func SolveLinear(a *Dense, b []float64) ([]float64, error) {
	f, err := LU(a)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
