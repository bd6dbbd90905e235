package gridio_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/heatgrid/grid"
	"github.com/katalvlaran/heatgrid/gridio"
	"github.com/katalvlaran/heatgrid/jacobi"
	"github.com/katalvlaran/heatgrid/matrix"
	"github.com/stretchr/testify/require"
)

func TestWrite_SmallFixedCase(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	grid.InitBoundary(g, grid.DefaultCorners())
	require.NoError(t, g.Set(1, 1, 20))

	var buf bytes.Buffer
	require.NoError(t, gridio.Write(&buf, g))
	want := "" +
		"   10.0000   15.0000   20.0000\n" +
		"   15.0000   20.0000   25.0000\n" +
		"   20.0000   25.0000   30.0000\n"
	require.Equal(t, want, buf.String())
}

func TestWrite_NilGrid(t *testing.T) {
	require.ErrorIs(t, gridio.Write(&bytes.Buffer{}, nil), grid.ErrNilGrid)
	require.ErrorIs(t, gridio.Dump(&bytes.Buffer{}, nil), grid.ErrNilGrid)
}

// TestRoundTrip_SolvedGrid: values survive the artefact to 4 decimals.
func TestRoundTrip_SolvedGrid(t *testing.T) {
	s, err := jacobi.New(
		jacobi.WithSize(17),
		jacobi.WithTolerance(0),
		jacobi.WithMaxIterations(250),
		jacobi.WithCheckInterval(50),
	)
	require.NoError(t, err)
	res := s.Solve(context.Background())

	path := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, gridio.WriteFile(path, res.Grid))

	back, err := gridio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, res.Grid.Size(), back.Size())
	want, got := res.Grid.Data(), back.Data()
	for i := range want {
		require.InDelta(t, want[i], got[i], 5e-5, "cell %d", i)
	}
}

func TestRead_AcceptsLooseWhitespace(t *testing.T) {
	in := "\n1 2 3\n\t4   5 6  \n\n7 8 9.5\n\n"
	g, err := gridio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9.5}, g.Data())
}

func TestRead_Malformed(t *testing.T) {
	cases := map[string]string{
		"Empty":      "",
		"Ragged":     "1 2 3\n4 5\n7 8 9\n",
		"NonSquare":  "1 2 3\n4 5 6\n",
		"TooSmall":   "1 2\n3 4\n",
		"NotANumber": "1 2 3\n4 x 6\n7 8 9\n",
		"Glued":      "1 2 3\n4 5 6\n7 8 9 10\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gridio.Read(strings.NewReader(in))
			require.ErrorIs(t, err, gridio.ErrMalformed)
		})
	}
}

func TestRead_RejectsNonFinite(t *testing.T) {
	_, err := gridio.Read(strings.NewReader("1 2 3\n4 NaN 6\n7 8 9\n"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := gridio.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	grid.InitBoundary(g, grid.Corners{TopLeft: 0, TopRight: 1, BottomRight: 2, BottomLeft: 1})
	require.NoError(t, g.Set(1, 1, 0.125))

	var buf bytes.Buffer
	require.NoError(t, gridio.Dump(&buf, g))
	require.Equal(t, "0 0.5 1\n0.5 0.125 1.5\n1 1.5 2\n", buf.String())
}
