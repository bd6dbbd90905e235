// SPDX-License-Identifier: MIT

// Package matrix - direct solve by Doolittle LU factorisation.
//
// Purpose:
//   - LU: A = L·U with unit-diagonal L, no pivoting.
//   - SolveLU: forward/back substitution for one right-hand side.
//   - Solve: LU + SolveLU in one call.
//
// No row pivoting: a zero pivot is reported as ErrSingular.

package matrix

import "fmt"

const (
	opLU      = "LU"
	opSolveLU = "SolveLU"
	opSolve   = "Solve"
)

// LU factorises a square m into unit lower-triangular L and upper-triangular U.
//
// Implementation:
//   - Stage 1: validate m is square and finite.
//   - Stage 2: copy m into flat row-major buffers.
//   - Stage 3: for each pivot i, fill U row i (columns >= i) and L column i
//     (rows > i) from the already computed rows and columns.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular (zero pivot).
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, *Dense, error) {
	// Stage 1: Validate
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()

	// Stage 2: Prepare
	a, err := NewSquare(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if d, ok := m.(*Dense); ok {
		copy(a.data, d.data)
	} else {
		var v float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opLU, err)
				}
				a.data[i*n+j] = v
			}
		}
	}
	if err = ValidateFinite(a.data); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	L, _ := NewSquare(n)
	U, _ := NewSquare(n)
	l, u, src := L.data, U.data, a.data

	// Stage 3: Execute
	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		l[i*n+i] = 1
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l[i*n+k] * u[k*n+j]
			}
			u[i*n+j] = src[i*n+j] - sum
		}
		pivot := u[i*n+i]
		if pivot == 0 {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l[j*n+k] * u[k*n+i]
			}
			l[j*n+i] = (src[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// SolveLU solves L·U·x = b given factors from LU.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: Time O(n²), Space O(n).
func SolveLU(L, U *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(L); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if err := ValidateSameShape(L, U); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	n := L.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	// forward: L·y = b
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= L.data[i*n+k] * y[k]
		}
		y[i] = sum / L.data[i*n+i]
	}
	// backward: U·x = y
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= U.data[i*n+k] * x[k]
		}
		d := U.data[i*n+i]
		if d == 0 {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		x[i] = sum / d
	}

	return x, nil
}

// Solve returns x with m·x = b via LU.
func Solve(m Matrix, b []float64) ([]float64, error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := SolveLU(L, U, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
