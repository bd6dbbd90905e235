// SPDX-License-Identifier: MIT

package simpleiter

import "errors"

var (
	// ErrZeroRHS is returned when ‖b‖₂ == 0 (the relative residual is undefined).
	ErrZeroRHS = errors.New("simpleiter: right-hand side has zero norm")

	// ErrInvalidTau indicates a step that is not a finite positive number.
	ErrInvalidTau = errors.New("simpleiter: tau must be finite and > 0")

	// ErrInvalidEpsilon indicates a stopping threshold that is not finite and > 0.
	ErrInvalidEpsilon = errors.New("simpleiter: epsilon must be finite and > 0")

	// ErrInvalidMaxIterations indicates an iteration budget below 1.
	ErrInvalidMaxIterations = errors.New("simpleiter: max iterations must be >= 1")

	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("simpleiter: workers must be >= 1")

	// ErrInvalidSize indicates a system dimension below 1.
	ErrInvalidSize = errors.New("simpleiter: system size must be >= 1")
)
