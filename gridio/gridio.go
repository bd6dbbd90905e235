// SPDX-License-Identifier: MIT

package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/heatgrid/grid"
	"github.com/katalvlaran/heatgrid/matrix"
)

// CellFormat is the per-value verb of the artefact.
const CellFormat = "%10.4f"

// maxLine bounds a single artefact row; 16 MiB fits N in the millions.
const maxLine = 16 << 20

// Write renders g as N lines of N CellFormat values.
// Complexity: O(N²).
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	n := g.Size()
	d := g.Data()
	for r := 0; r < n; r++ {
		row := d[r*n : r*n+n]
		for _, v := range row {
			if _, err := fmt.Fprintf(bw, CellFormat, v); err != nil {
				return fmt.Errorf("gridio.Write: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("gridio.Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridio.Write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes g to it.
func WriteFile(path string, g *grid.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio.WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gridio.WriteFile: %w", cerr)
		}
	}()

	return Write(f, g)
}

// Read parses an artefact into a new grid. Blank lines are skipped.
//
// Errors:
//   - ErrMalformed for non-numeric fields, ragged rows, a row count different
//     from the column count, or N < grid.MinSize.
//   - matrix.ErrNaNInf for NaN or ±Inf values.
func Read(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		values []float64
		cols   int
		rows   int
	)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(fields)
			values = make([]float64, 0, cols*cols)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("gridio.Read: line %d has %d values, want %d: %w", line, len(fields), cols, ErrMalformed)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("gridio.Read: line %d: %q: %w", line, f, ErrMalformed)
			}
			values = append(values, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio.Read: %w", err)
	}
	if rows != cols || rows < grid.MinSize {
		return nil, fmt.Errorf("gridio.Read: %dx%d grid: %w", rows, cols, ErrMalformed)
	}

	m, err := matrix.NewDenseFrom(rows, cols, values)
	if err != nil {
		return nil, fmt.Errorf("gridio.Read: %w", err)
	}

	return grid.FromDense(m)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio.ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Dump prints g as N lines of space-separated %g values.
func Dump(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	n := g.Size()
	d := g.Data()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(d[r*n+c], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
