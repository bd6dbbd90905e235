// SPDX-License-Identifier: MIT

package history

import "errors"

var (
	// ErrPathRequired is returned by Open for an empty database path.
	ErrPathRequired = errors.New("history: storage path is required")

	// ErrNotConfigured is returned by methods on a nil or closed Store.
	ErrNotConfigured = errors.New("history: storage is not configured")

	// ErrInvalidRun is returned by Record for a run that cannot be stored.
	ErrInvalidRun = errors.New("history: invalid run")

	// ErrInvalidLimit is returned by List for a limit below 1.
	ErrInvalidLimit = errors.New("history: limit must be >= 1")

	// ErrNotFound is returned by Get for an unknown id.
	ErrNotFound = errors.New("history: run not found")
)
