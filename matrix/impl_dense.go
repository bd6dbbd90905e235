// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Back grids and linear systems with one contiguous buffer, offset i*cols + j.
//   - Keep the public surface panic-free: At/Set return sentinel errors.
//   - Hand the flat buffer (Data) to stencil and mat-vec kernels in other packages.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom/Clone: O(r*c); At/Set/Data: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf tags err with the method and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // reject NaN/Inf in Set and NewDenseFrom
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows or cols is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewSquare creates an n×n zero matrix, the shape every grid uses.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewDenseFrom copies values (row-major, len == rows*cols) into a new Dense.
//
// Implementation:
//   - Stage 1: allocate via NewDense (shape check).
//   - Stage 2: check the length, then every value against the numeric policy.
//   - Stage 3: copy; values is not retained.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
func NewDenseFrom(rows, cols int, values []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	for k, v := range values {
		if m.validateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col), or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrNaNInf for NaN/±Inf.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Data returns the flat row-major backing slice (len == Rows()*Cols()).
// Writes through it are visible in m and skip the numeric policy; kernels
// that index as i*Cols()+j use it instead of At/Set.
func (m *Dense) Data() []float64 { return m.data }

// Clone returns a deep copy with the same numeric policy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Equal reports the same shape and bit-identical values. Two NaNs with the
// same payload compare equal; +0 and -0 do not.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if math.Float64bits(v) != math.Float64bits(other.data[k]) {
			return false
		}
	}

	return true
}

// String renders one bracketed, comma-separated row per line. For
// diagnostics only.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%g", v))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
