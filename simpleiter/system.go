// SPDX-License-Identifier: MIT

package simpleiter

import (
	"fmt"

	"github.com/katalvlaran/heatgrid/matrix"
)

// System is the linear system A·x = b with square A.
type System struct {
	A *matrix.Dense
	B []float64
}

// NewSystem returns the n×n benchmark system: A[i][i] = 2, A[i][j] = 1
// otherwise, b[i] = n+1. Its exact solution is x = 1.
// Complexity: O(n²).
func NewSystem(n int) (System, error) {
	if n < 1 {
		return System{}, fmt.Errorf("NewSystem(%d): %w", n, ErrInvalidSize)
	}
	a, err := matrix.NewSquare(n)
	if err != nil {
		return System{}, fmt.Errorf("NewSystem: %w", err)
	}
	d := a.Data()
	for i := range d {
		d[i] = 1
	}
	for i := 0; i < n; i++ {
		d[i*n+i] = 2
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = float64(n + 1)
	}

	return System{A: a, B: b}, nil
}

// Size returns the number of unknowns.
func (s System) Size() int { return len(s.B) }

// Validate checks that A is square and matches len(B), and that both are finite.
func (s System) Validate() error {
	if err := matrix.ValidateSquare(s.A); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(s.B, s.A.Rows()); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(s.B); err != nil {
		return err
	}

	return matrix.ValidateFinite(s.A.Data())
}

// SolveDirect returns the exact solution by LU factorisation, the reference
// the iteration is measured against.
// Complexity: O(n³).
func (s System) SolveDirect() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("SolveDirect: %w", err)
	}
	x, err := matrix.Solve(s.A, s.B)
	if err != nil {
		return nil, fmt.Errorf("SolveDirect: %w", err)
	}

	return x, nil
}
