// SPDX-License-Identifier: MIT
// Package jacobi: sentinel error set.
// Only parameter validation can fail; the iteration itself never returns an
// error. Callers match these with errors.Is.

package jacobi

import "errors"

var (
	// ErrInvalidSize is returned when the grid side is below grid.MinSize.
	ErrInvalidSize = errors.New("jacobi: grid size must be >= 3")

	// ErrInvalidTolerance is returned for a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("jacobi: tolerance must be finite and >= 0")

	// ErrInvalidMaxIterations is returned when the iteration budget is below 1.
	ErrInvalidMaxIterations = errors.New("jacobi: max iterations must be >= 1")

	// ErrInvalidCheckInterval is returned when the check interval is below 1.
	ErrInvalidCheckInterval = errors.New("jacobi: check interval must be >= 1")

	// ErrInvalidWorkers is returned when the worker count is below 1.
	ErrInvalidWorkers = errors.New("jacobi: workers must be >= 1")
)
