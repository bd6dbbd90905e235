// SPDX-License-Identifier: MIT

// Package matrix - vector kernels used by iterative solvers.
//
// Purpose:
//   - MatVec: y = A·x with a *Dense fast-path.
//   - Norm2 / Dot / MaxAbsDiff: deterministic sequential reductions.
//
// Determinism:
//   - Fixed i→j loop order; results are reproducible bit-for-bit.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMatVec     = "MatVec"
	opDot        = "Dot"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps an error with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Dot returns Σ a[i]*b[i].
// Errors: ErrNilMatrix for nil input, ErrDimensionMismatch for different lengths.
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(a, len(b)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if b == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// Norm2 returns the Euclidean norm of x. An empty or nil vector has norm 0.
func Norm2(x []float64) float64 {
	acc := ZeroSum
	for _, v := range x {
		acc += v * v
	}

	return math.Sqrt(acc)
}

// MaxAbsDiff returns max |a[k]-b[k]| over the flat buffers of two same-shape Dense values.
// It is the sequential reference for parallel convergence checks.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opMaxAbsDiff, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	best := 0.0
	for k, v := range a.data {
		if d := math.Abs(v - b.data[k]); d > best {
			best = d
		}
	}

	return best, nil
}
