// SPDX-License-Identifier: MIT

// Package jacobi: functional configuration for the solver.
// This file defines:
//   - documented defaults (constants),
//   - Params, the immutable value a Solver runs with,
//   - Option / WithX setters,
//   - Params.Validate, the single place where parameters are checked.
//
// Design goals:
//   - No global state: everything a solve needs travels in Params.
//   - Setters never fail; New validates the assembled Params once and returns
//     sentinel errors, so invalid user input never panics.

package jacobi

import (
	"fmt"
	"math"
	"runtime"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/heatgrid/grid"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the grid side used when none is given.
	DefaultSize = 1024

	// DefaultTolerance is the stopping threshold on the max per-cell change.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the configured iteration budget.
	DefaultMaxIterations = 1_000_000

	// DefaultCheckInterval is the number of sweeps between convergence checks.
	// A check costs about as much as a sweep, so it is amortized.
	DefaultCheckInterval = 10_000

	// HardIterationCap bounds every solve regardless of MaxIterations.
	HardIterationCap = 10_000_000
)

// Params is the immutable solve configuration.
type Params struct {
	Size          int          // grid side N (>= 3)
	Tolerance     float64      // stop when the checked error is <= Tolerance
	MaxIterations int          // iteration budget, further capped by HardIterationCap
	CheckInterval int          // sweeps between convergence checks
	Corners       grid.Corners // fixed corner values
	Workers       int          // degree of parallelism for sweeps and reductions
}

// DefaultParams returns the documented defaults; Workers is runtime.NumCPU().
func DefaultParams() Params {
	return Params{
		Size:          DefaultSize,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		CheckInterval: DefaultCheckInterval,
		Corners:       grid.DefaultCorners(),
		Workers:       runtime.NumCPU(),
	}
}

// IterationLimit returns min(MaxIterations, HardIterationCap).
func (p Params) IterationLimit() int {
	if p.MaxIterations > HardIterationCap {
		return HardIterationCap
	}

	return p.MaxIterations
}

// Validate checks every field and returns the first violation.
//
// Errors (in check order):
//   - ErrInvalidSize, ErrInvalidTolerance, ErrInvalidMaxIterations,
//     ErrInvalidCheckInterval, matrix.ErrNaNInf (corners), ErrInvalidWorkers.
func (p Params) Validate() error {
	if p.Size < grid.MinSize {
		return fmt.Errorf("size %d: %w", p.Size, ErrInvalidSize)
	}
	if math.IsNaN(p.Tolerance) || math.IsInf(p.Tolerance, 0) || p.Tolerance < 0 {
		return fmt.Errorf("tolerance %g: %w", p.Tolerance, ErrInvalidTolerance)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("max iterations %d: %w", p.MaxIterations, ErrInvalidMaxIterations)
	}
	if p.CheckInterval < 1 {
		return fmt.Errorf("check interval %d: %w", p.CheckInterval, ErrInvalidCheckInterval)
	}
	if err := p.Corners.Validate(); err != nil {
		return err
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d: %w", p.Workers, ErrInvalidWorkers)
	}

	return nil
}

// ---------- Public option type (functional) ----------

// Option mutates solver configuration before validation.
type Option func(*options)

// options is the mutable assembly area behind Option.
type options struct {
	params   Params
	seed     grid.InteriorSeed
	progress func(State)
	tracing  trace.TracerProvider // nil → otel global provider
}

func defaultOptions() options {
	return options{
		params: DefaultParams(),
		seed:   grid.SeedZero,
	}
}

// WithParams replaces all numeric parameters at once (e.g. from a config layer).
func WithParams(p Params) Option { return func(o *options) { o.params = p } }

// WithSize sets the grid side N.
func WithSize(n int) Option { return func(o *options) { o.params.Size = n } }

// WithTolerance sets the stopping threshold. Zero means "stop only at an exact
// fixed point".
func WithTolerance(tol float64) Option { return func(o *options) { o.params.Tolerance = tol } }

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(k int) Option { return func(o *options) { o.params.MaxIterations = k } }

// WithCheckInterval sets how many sweeps run between convergence checks.
func WithCheckInterval(k int) Option { return func(o *options) { o.params.CheckInterval = k } }

// WithCorners sets the four fixed corner values.
func WithCorners(c grid.Corners) Option { return func(o *options) { o.params.Corners = c } }

// WithWorkers sets the degree of parallelism. 1 runs every sweep inline.
func WithWorkers(w int) Option { return func(o *options) { o.params.Workers = w } }

// WithSeed chooses the interior start state (grid.SeedZero by default).
// A nil seed keeps the default.
func WithSeed(seed grid.InteriorSeed) Option {
	return func(o *options) {
		if seed != nil {
			o.seed = seed
		}
	}
}

// WithProgress registers fn to be called after every convergence check with
// the iteration count and the freshly measured error. fn runs on the solving
// goroutine and the next sweep waits for it; hand slow work (network
// publishing) to another goroutine, e.g. through a monitor.Feed.
func WithProgress(fn func(State)) Option { return func(o *options) { o.progress = fn } }

// WithTracerProvider routes solve spans to tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracing = tp }
}
