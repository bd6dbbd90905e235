// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrGridTooSmall is returned when the side length is below MinSize.
	ErrGridTooSmall = errors.New("grid: side length must be >= 3")

	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrSizeMismatch indicates two grids of different side lengths.
	ErrSizeMismatch = errors.New("grid: size mismatch")
)
