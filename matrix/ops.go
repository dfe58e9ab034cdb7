// SPDX-License-Identifier: MIT

package matrix

// MatVec returns y = A·x.
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrDimensionMismatch if len(x) != a.Cols().
//
// Complexity: Time O(r·c), Space O(r).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, a.r)
	var i, j, base int
	var sum float64
	for i = 0; i < a.r; i++ {
		base = i * a.c
		sum = 0
		for j = 0; j < a.c; j++ {
			sum += a.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// MatTVec returns y = Aᵀ·x without materializing the transpose.
func MatTVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, a.c)
	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * a.c
		for j = 0; j < a.c; j++ {
			y[j] += a.data[base+j] * x[i]
		}
	}

	return y, nil
}
