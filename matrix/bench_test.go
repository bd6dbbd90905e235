// Package matrix_test provides benchmarks for the matrix kernels, using
// deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/heatgrid/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkF float64
)

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// fillDenseRand fills m with values in [-1, 1) and adds n to the diagonal
// of square matrices so LU never meets a zero pivot.
func fillDenseRand(b *testing.B, m *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := m.Data()
	for i := range d {
		d[i] = rng.Float64()*2 - 1
	}
	if m.Rows() == m.Cols() {
		n := m.Rows()
		for i := 0; i < n; i++ {
			d[i*n+i] += float64(n)
		}
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			x := make([]float64, n)
			for i := range x {
				x[i] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkMaxAbsDiff(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1)
			fillDenseRand(b, B, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.MaxAbsDiff(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, U, err := matrix.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF, _ = U.At(0, 0)
			}
		})
	}
}
