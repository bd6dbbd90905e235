// SPDX-License-Identifier: MIT

package simpleiter

import (
	"fmt"
	"math"
	"runtime"

	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTau is the fixed step τ.
	DefaultTau = 1e-4
	// DefaultEpsilon is the relative-residual stopping threshold ε.
	DefaultEpsilon = 1e-5
	// DefaultMaxIterations bounds a solve that neither converges nor diverges.
	DefaultMaxIterations = 1_000_000
)

// Params configures a Solver.
type Params struct {
	Tau           float64
	Epsilon       float64
	MaxIterations int
	Workers       int
}

// DefaultParams returns τ = 1e-4, ε = 1e-5, 1e6 iterations, NumCPU workers.
func DefaultParams() Params {
	return Params{
		Tau:           DefaultTau,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Workers:       runtime.NumCPU(),
	}
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Validate returns the first invalid field as a sentinel error.
func (p Params) Validate() error {
	if !finitePositive(p.Tau) {
		return fmt.Errorf("tau %g: %w", p.Tau, ErrInvalidTau)
	}
	if !finitePositive(p.Epsilon) {
		return fmt.Errorf("epsilon %g: %w", p.Epsilon, ErrInvalidEpsilon)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("max iterations %d: %w", p.MaxIterations, ErrInvalidMaxIterations)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d: %w", p.Workers, ErrInvalidWorkers)
	}

	return nil
}

// Option configures a Solver.
type Option func(*options)

type options struct {
	params  Params
	tracing trace.TracerProvider
}

// WithTau sets the step τ.
func WithTau(tau float64) Option { return func(o *options) { o.params.Tau = tau } }

// WithEpsilon sets the relative-residual threshold ε.
func WithEpsilon(eps float64) Option { return func(o *options) { o.params.Epsilon = eps } }

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(k int) Option { return func(o *options) { o.params.MaxIterations = k } }

// WithWorkers sets the degree of parallelism.
func WithWorkers(w int) Option { return func(o *options) { o.params.Workers = w } }

// WithTracerProvider routes solve spans to tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracing = tp }
}
