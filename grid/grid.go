// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/heatgrid/matrix"
)

// MinSize is the smallest meaningful side length: one interior cell.
const MinSize = 3

// Grid is a square N×N scalar field stored row-major in a matrix.Dense.
// Cell (r, c) lives at offset r*N + c of Data().
type Grid struct {
	n int
	m *matrix.Dense
}

// New allocates an n×n grid filled with zeros.
//
// Errors:
//   - ErrGridTooSmall if n < MinSize.
func New(n int) (*Grid, error) {
	if n < MinSize {
		return nil, fmt.Errorf("New(%d): %w", n, ErrGridTooSmall)
	}
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", n, err)
	}

	return &Grid{n: n, m: m}, nil
}

// FromDense wraps an existing square Dense without copying.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrGridTooSmall.
func FromDense(m *matrix.Dense) (*Grid, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	if m.Rows() < MinSize {
		return nil, fmt.Errorf("FromDense: %w", ErrGridTooSmall)
	}

	return &Grid{n: m.Rows(), m: m}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// Index returns the flat row-major offset of (r, c). No bounds check.
func (g *Grid) Index(r, c int) int { return r*g.n + c }

// At returns the value at (r, c); see matrix.Dense.At for errors.
func (g *Grid) At(r, c int) (float64, error) { return g.m.At(r, c) }

// Set stores v at (r, c); see matrix.Dense.Set for errors.
func (g *Grid) Set(r, c int, v float64) error { return g.m.Set(r, c, v) }

// Data exposes the flat row-major buffer (len N*N) for stencil kernels.
func (g *Grid) Data() []float64 { return g.m.Data() }

// Dense returns the underlying storage.
func (g *Grid) Dense() *matrix.Dense { return g.m }

// IsInterior reports whether (r, c) is off every edge.
func (g *Grid) IsInterior(r, c int) bool {
	return r >= 1 && r <= g.n-2 && c >= 1 && c <= g.n-2
}

// IsBoundary reports whether (r, c) is in bounds and on an edge.
func (g *Grid) IsBoundary(r, c int) bool {
	if r < 0 || r >= g.n || c < 0 || c >= g.n {
		return false
	}

	return !g.IsInterior(r, c)
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, m: g.m.Clone().(*matrix.Dense)}
}

// Equal reports bit-identical contents and equal size.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}

	return g.m.Equal(other.m)
}

// BoundaryEqual reports whether both grids hold bit-identical values on every
// edge cell. Interior cells are ignored.
func (g *Grid) BoundaryEqual(other *Grid) bool {
	if other == nil || other.n != g.n {
		return false
	}
	a, b := g.Data(), other.Data()
	n := g.n
	last := (n - 1) * n
	for i := 0; i < n; i++ {
		// top row, bottom row, left column, right column
		if a[i] != b[i] || a[last+i] != b[last+i] {
			return false
		}
		if a[i*n] != b[i*n] || a[i*n+n-1] != b[i*n+n-1] {
			return false
		}
	}

	return true
}

// String renders the grid through matrix.Dense.String.
func (g *Grid) String() string { return g.m.String() }

// ValidatePair checks that a and b are non-nil grids of the same size.
//
// Errors:
//   - ErrNilGrid, ErrSizeMismatch.
func ValidatePair(a, b *Grid) error {
	if a == nil || b == nil {
		return ErrNilGrid
	}
	if a.n != b.n {
		return fmt.Errorf("%d vs %d: %w", a.n, b.n, ErrSizeMismatch)
	}

	return nil
}
