package matrix_test

import (
	"testing"

	"github.com/katalvlaran/heatgrid/matrix"
	"github.com/stretchr/testify/require"
)

func TestLU_Reconstructs(t *testing.T) {
	a, err := matrix.NewDenseFrom(3, 3, []float64{
		4, 3, 2,
		2, 1, 3,
		3, 2, 1,
	})
	require.NoError(t, err)

	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		d, _ := L.At(i, i)
		require.Equal(t, 1.0, d, "unit diagonal")
		for j := i + 1; j < 3; j++ {
			v, _ := L.At(i, j)
			require.Zero(t, v, "L upper part")
			w, _ := U.At(j, i)
			require.Zero(t, w, "U lower part")
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				l, _ := L.At(i, k)
				u, _ := U.At(k, j)
				sum += l * u
			}
			want, _ := a.At(i, j)
			require.InDelta(t, want, sum, 1e-12)
		}
	}
}

func TestSolve(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 2, []float64{2, 1, 1, 3})
	require.NoError(t, err)

	x, err := matrix.Solve(a, []float64{3, 5})
	require.NoError(t, err)
	require.InDelta(t, 0.8, x[0], 1e-12)
	require.InDelta(t, 1.4, x[1], 1e-12)

	// interface fallback path
	x, err = matrix.Solve(hide{a}, []float64{3, 5})
	require.NoError(t, err)
	require.InDelta(t, 0.8, x[0], 1e-12)
}

func TestLU_Errors(t *testing.T) {
	_, _, err := matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	_, _, err = matrix.LU(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sing, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 4})
	_, _, err = matrix.LU(sing)
	require.ErrorIs(t, err, matrix.ErrSingular)

	z, _ := matrix.NewSquare(2)
	_, err = matrix.Solve(z, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrSingular)

	id, _ := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 1})
	L, U, err := matrix.LU(id)
	require.NoError(t, err)
	_, err = matrix.SolveLU(L, U, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SolveLU(L, nil, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
