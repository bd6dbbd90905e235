// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/heatgrid/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the At-based fallback.
type hide struct{ matrix.Matrix }

func TestMatVec_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	x := []float64{1, 0, -1}

	fast, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)

	require.Equal(t, []float64{-2, -2}, fast)
	require.Equal(t, fast, slow)
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewSquare(2)
	require.NoError(t, err)

	_, err = matrix.MatVec(nil, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDotAndNorm2(t *testing.T) {
	t.Parallel()

	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Equal(t, 5.0, matrix.Norm2([]float64{3, 4}))
	require.Equal(t, 0.0, matrix.Norm2(nil))
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(2, 2, []float64{1, 2.5, 1, 4})
	require.NoError(t, err)

	got, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	c, err := matrix.NewDense(1, 4)
	require.NoError(t, err)
	_, err = matrix.MaxAbsDiff(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MaxAbsDiff(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
