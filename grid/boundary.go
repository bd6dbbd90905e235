// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/heatgrid/matrix"
)

// Default corner temperatures, clockwise from the top-left.
const (
	DefaultTopLeft     = 10.0
	DefaultTopRight    = 20.0
	DefaultBottomRight = 30.0
	DefaultBottomLeft  = 20.0
)

// Corners holds the four fixed corner values, clockwise from the top-left.
type Corners struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// DefaultCorners returns {10, 20, 30, 20}.
func DefaultCorners() Corners {
	return Corners{
		TopLeft:     DefaultTopLeft,
		TopRight:    DefaultTopRight,
		BottomRight: DefaultBottomRight,
		BottomLeft:  DefaultBottomLeft,
	}
}

// Validate rejects NaN and ±Inf corner values with matrix.ErrNaNInf.
func (c Corners) Validate() error {
	if err := matrix.ValidateFinite(c.Slice()); err != nil {
		return fmt.Errorf("Corners.Validate: %w", err)
	}

	return nil
}

// Slice returns the corners as [TL, TR, BR, BL].
func (c Corners) Slice() []float64 {
	return []float64{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// CornersFromSlice builds Corners from [TL, TR, BR, BL].
//
// Errors:
//   - matrix.ErrDimensionMismatch if len(v) != 4.
//   - matrix.ErrNaNInf if a value is not finite.
func CornersFromSlice(v []float64) (Corners, error) {
	if err := matrix.ValidateVecLen(v, 4); err != nil {
		return Corners{}, fmt.Errorf("CornersFromSlice: %w", err)
	}
	c := Corners{TopLeft: v[0], TopRight: v[1], BottomRight: v[2], BottomLeft: v[3]}

	return c, c.Validate()
}

// lerp returns start + i*(end-start)/(n-1), the value at offset i along an
// edge of n cells.
func lerp(start, end float64, i, n int) float64 {
	return start + float64(i)*(end-start)/float64(n-1)
}

// InitBoundary fixes the four corners of g and fills each edge by linear
// interpolation between its endpoint corners:
//
//	top row       TopLeft    → TopRight     (left to right)
//	bottom row    BottomLeft → BottomRight  (left to right)
//	left column   TopLeft    → BottomLeft   (top to bottom)
//	right column  TopRight   → BottomRight  (top to bottom)
//
// Interior cells are not touched. Corner values are assumed finite
// (see Corners.Validate).
// Complexity: O(N).
func InitBoundary(g *Grid, c Corners) {
	n := g.n
	d := g.Data()
	last := (n - 1) * n

	d[0] = c.TopLeft
	d[n-1] = c.TopRight
	d[last+n-1] = c.BottomRight
	d[last] = c.BottomLeft

	for i := 1; i < n-1; i++ {
		d[i] = lerp(c.TopLeft, c.TopRight, i, n)
		d[last+i] = lerp(c.BottomLeft, c.BottomRight, i, n)
		d[i*n] = lerp(c.TopLeft, c.BottomLeft, i, n)
		d[i*n+n-1] = lerp(c.TopRight, c.BottomRight, i, n)
	}
}

// InteriorSeed fills the interior of a boundary-initialised grid before the
// first relaxation sweep.
type InteriorSeed func(g *Grid, c Corners)

// SeedZero leaves the interior at zero.
func SeedZero(g *Grid, _ Corners) {
	d := g.Data()
	n := g.n
	for r := 1; r < n-1; r++ {
		row := d[r*n+1 : r*n+n-1]
		for k := range row {
			row[k] = 0
		}
	}
}

// SeedBilinear fills the interior with the bilinear blend of the corners.
// A bilinear field is discrete-harmonic and agrees with InitBoundary on every
// edge, so it is the fixed point of the four-neighbour average up to rounding.
func SeedBilinear(g *Grid, c Corners) {
	d := g.Data()
	n := g.n
	den := float64(n - 1)
	for r := 1; r < n-1; r++ {
		y := float64(r) / den
		left := c.TopLeft + y*(c.BottomLeft-c.TopLeft)
		right := c.TopRight + y*(c.BottomRight-c.TopRight)
		for col := 1; col < n-1; col++ {
			x := float64(col) / den
			d[r*n+col] = left + x*(right-left)
		}
	}
}

// SeedByName resolves "zero" or "bilinear".
func SeedByName(name string) (InteriorSeed, bool) {
	switch name {
	case "", "zero":
		return SeedZero, true
	case "bilinear":
		return SeedBilinear, true
	}

	return nil, false
}
