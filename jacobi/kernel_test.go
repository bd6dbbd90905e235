package jacobi_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heatgrid/grid"
	"github.com/katalvlaran/heatgrid/jacobi"
	"github.com/katalvlaran/heatgrid/matrix"
	"github.com/katalvlaran/heatgrid/parallel"
	"github.com/stretchr/testify/require"
)

// filledGrid returns an n×n grid with default boundary and a deterministic,
// non-harmonic interior.
func filledGrid(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n)
	require.NoError(t, err)
	grid.InitBoundary(g, grid.DefaultCorners())
	for r := 1; r < n-1; r++ {
		for c := 1; c < n-1; c++ {
			require.NoError(t, g.Set(r, c, float64((r*7+c*13)%11)))
		}
	}
	return g
}

// referenceSweep is the textbook four-neighbour average via At.
func referenceSweep(t *testing.T, prev *grid.Grid) *grid.Grid {
	t.Helper()
	n := prev.Size()
	next := prev.Clone()
	at := func(r, c int) float64 {
		v, err := prev.At(r, c)
		require.NoError(t, err)
		return v
	}
	for r := 1; r < n-1; r++ {
		for c := 1; c < n-1; c++ {
			v := 0.25 * (at(r, c+1) + at(r, c-1) + at(r-1, c) + at(r+1, c))
			require.NoError(t, next.Set(r, c, v))
		}
	}
	return next
}

func TestRelax_MatchesReference(t *testing.T) {
	for _, w := range []int{1, 2, 5} {
		pool, err := parallel.New(w)
		require.NoError(t, err)

		prev := filledGrid(t, 9)
		next, err := grid.New(9)
		require.NoError(t, err)
		grid.InitBoundary(next, grid.DefaultCorners())

		require.NoError(t, jacobi.Relax(pool, prev, next))
		require.True(t, referenceSweep(t, prev).Equal(next), "workers=%d", w)
		require.True(t, prev.BoundaryEqual(next))
	}
}

func TestRelax_DoesNotTouchEdges(t *testing.T) {
	prev := filledGrid(t, 6)
	next, err := grid.New(6)
	require.NoError(t, err)
	// next edges deliberately differ from prev edges
	grid.InitBoundary(next, grid.Corners{TopLeft: -1, TopRight: -1, BottomRight: -1, BottomLeft: -1})
	want := next.Clone()

	require.NoError(t, jacobi.Relax(parallel.Sequential(), prev, next))
	require.True(t, want.BoundaryEqual(next))
}

func TestRelax_Errors(t *testing.T) {
	a := filledGrid(t, 5)
	b := filledGrid(t, 6)

	require.ErrorIs(t, jacobi.Relax(nil, a, a.Clone()), parallel.ErrInvalidWorkers)
	require.ErrorIs(t, jacobi.Relax(parallel.Sequential(), nil, a), grid.ErrNilGrid)
	require.ErrorIs(t, jacobi.Relax(parallel.Sequential(), a, b), grid.ErrSizeMismatch)
}

func TestMaxDiff(t *testing.T) {
	a := filledGrid(t, 7)
	b := a.Clone()

	d, err := jacobi.MaxDiff(parallel.Default(), a, b)
	require.NoError(t, err)
	require.Zero(t, d)

	require.NoError(t, b.Set(3, 4, 100))
	require.NoError(t, b.Set(5, 1, -2.5))
	v, _ := a.At(3, 4)
	want := math.Abs(100 - v)
	for _, w := range []int{1, 3, 16} {
		pool, err := parallel.New(w)
		require.NoError(t, err)
		d, err = jacobi.MaxDiff(pool, a, b)
		require.NoError(t, err)
		require.Equal(t, want, d, "workers=%d", w)
	}

	// edges agree, so the whole-buffer sequential reference must match
	ref, err := matrix.MaxAbsDiff(a.Dense(), b.Dense())
	require.NoError(t, err)
	require.Equal(t, ref, d)
}

func TestMaxDiff_IgnoresEdges(t *testing.T) {
	a := filledGrid(t, 5)
	b := a.Clone()
	require.NoError(t, b.Set(0, 2, 1e9))
	require.NoError(t, b.Set(4, 4, -1e9))

	d, err := jacobi.MaxDiff(parallel.Sequential(), a, b)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestMaxDiff_Errors(t *testing.T) {
	a := filledGrid(t, 5)
	_, err := jacobi.MaxDiff(nil, a, a)
	require.ErrorIs(t, err, parallel.ErrInvalidWorkers)
	_, err = jacobi.MaxDiff(parallel.Sequential(), a, nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	_, err = jacobi.MaxDiff(parallel.Sequential(), a, filledGrid(t, 4))
	require.ErrorIs(t, err, grid.ErrSizeMismatch)
}

func TestMaxDiff_NaNReadsAsUnsettled(t *testing.T) {
	a := filledGrid(t, 9)
	b := a.Clone()
	a.Data()[a.Index(4, 4)] = math.Inf(1)
	b.Data()[b.Index(4, 4)] = math.Inf(1)

	for _, w := range []int{1, 4} {
		pool, err := parallel.New(w)
		require.NoError(t, err)
		d, err := jacobi.MaxDiff(pool, a, b)
		require.NoError(t, err)
		require.True(t, math.IsInf(d, 1), "workers=%d", w)
	}
}
