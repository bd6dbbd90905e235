// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatgrid/grid"
	"github.com/katalvlaran/heatgrid/parallel"
)

// relax writes, for every interior cell of next, the average of its four
// neighbours in prev. Rows [1, N-1) are split across the pool; each worker owns
// a disjoint band of next and only reads prev. Edges of next are never written.
func relax(pool *parallel.Pool, prev, next *grid.Grid) {
	n := prev.Size()
	src, dst := prev.Data(), next.Data()

	pool.For(1, n-1, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			base := r * n
			up, down := base-n, base+n
			for c := 1; c < n-1; c++ {
				dst[base+c] = 0.25 * (src[base+c+1] + src[base+c-1] + src[up+c] + src[down+c])
			}
		}
	})
}

// maxDiff returns max |a-b| over interior cells, reduced per row band.
// A NaN difference yields +Inf.
func maxDiff(pool *parallel.Pool, a, b *grid.Grid) float64 {
	n := a.Size()
	x, y := a.Data(), b.Data()

	return pool.MaxReduce(1, n-1, func(lo, hi int) float64 {
		local := 0.0
		for r := lo; r < hi; r++ {
			base := r * n
			for c := 1; c < n-1; c++ {
				d := math.Abs(x[base+c] - y[base+c])
				if math.IsNaN(d) {
					// Overflowed cells (Inf-Inf) never count as settled.
					return math.Inf(1)
				}
				if d > local {
					local = d
				}
			}
		}
		return local
	})
}

// Relax performs one Jacobi sweep from prev into next using pool.
// prev is read-only; only the interior of next is written.
//
// Errors:
//   - grid.ErrNilGrid, grid.ErrSizeMismatch; parallel.ErrInvalidWorkers for a nil pool.
func Relax(pool *parallel.Pool, prev, next *grid.Grid) error {
	if pool == nil {
		return fmt.Errorf("Relax: %w", parallel.ErrInvalidWorkers)
	}
	if err := grid.ValidatePair(prev, next); err != nil {
		return fmt.Errorf("Relax: %w", err)
	}
	relax(pool, prev, next)

	return nil
}

// MaxDiff returns the largest absolute per-cell difference between the
// interiors of a and b. The result does not depend on the worker count.
//
// Errors:
//   - grid.ErrNilGrid, grid.ErrSizeMismatch; parallel.ErrInvalidWorkers for a nil pool.
func MaxDiff(pool *parallel.Pool, a, b *grid.Grid) (float64, error) {
	if pool == nil {
		return 0, fmt.Errorf("MaxDiff: %w", parallel.ErrInvalidWorkers)
	}
	if err := grid.ValidatePair(a, b); err != nil {
		return 0, fmt.Errorf("MaxDiff: %w", err)
	}

	return maxDiff(pool, a, b), nil
}
