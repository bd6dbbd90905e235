// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidCorners indicates a corner list that is not four finite numbers.
	ErrInvalidCorners = errors.New("config: corners must be four finite numbers")

	// ErrInvalidAccuracy indicates an accuracy that is not a positive finite number.
	ErrInvalidAccuracy = errors.New("config: accuracy must be a positive finite number")

	// ErrUnknownSeed indicates a seed name other than "zero" or "bilinear".
	ErrUnknownSeed = errors.New("config: unknown interior seed")

	// ErrInvalidPrintMax indicates a negative print threshold.
	ErrInvalidPrintMax = errors.New("config: print-max must be >= 0")

	// ErrInvalidWorkers indicates a negative worker count (0 means all CPUs).
	ErrInvalidWorkers = errors.New("config: workers must be >= 0")
)
