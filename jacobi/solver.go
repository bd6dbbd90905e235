// SPDX-License-Identifier: MIT

package jacobi

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/heatgrid/grid"
	"github.com/katalvlaran/heatgrid/parallel"
)

const tracerName = "github.com/katalvlaran/heatgrid/jacobi"

// Status is the driver state. Converged and IterationCap are terminal.
type Status int

const (
	// StatusRunning is the state while sweeps are still being performed.
	StatusRunning Status = iota
	// StatusConverged means a check observed Error <= Tolerance.
	StatusConverged
	// StatusIterationCap means the iteration limit was hit first.
	StatusIterationCap
)

// String returns a stable lowercase name, used in logs and the run history.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusConverged:
		return "converged"
	case StatusIterationCap:
		return "iteration-cap"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// State is the mutable solve state: the number of completed sweeps and the
// error measured at the most recent check (+Inf before the first check).
type State struct {
	Iteration int
	Error     float64
}

// Result is returned by Solve once a terminal status is reached.
type Result struct {
	// Grid holds the most recently computed field.
	Grid *grid.Grid
	// Previous holds the field one sweep older; its edges equal Grid's.
	Previous *grid.Grid

	Status     Status
	Iterations int
	Error      float64
	Elapsed    time.Duration
	Params     Params
}

// Converged reports Status == StatusConverged.
func (r Result) Converged() bool { return r.Status == StatusConverged }

// Solver runs Jacobi relaxation for one immutable Params value.
// A Solver may be reused; every Solve allocates its own buffers.
type Solver struct {
	params   Params
	pool     *parallel.Pool
	seed     grid.InteriorSeed
	progress func(State)
	tracer   trace.Tracer
}

// New assembles options over DefaultParams and validates the result.
//
// Errors:
//   - see Params.Validate.
func New(opts ...Option) (*Solver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.params.Validate(); err != nil {
		return nil, fmt.Errorf("jacobi.New: %w", err)
	}
	pool, err := parallel.New(o.params.Workers)
	if err != nil {
		return nil, fmt.Errorf("jacobi.New: %w", err)
	}

	tp := o.tracing
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Solver{
		params:   o.params,
		pool:     pool,
		seed:     o.seed,
		progress: o.progress,
		tracer:   tp.Tracer(tracerName),
	}, nil
}

// Params returns a copy of the validated parameters.
func (s *Solver) Params() Params { return s.params }

// newBuffers allocates both grids and initialises them identically.
func (s *Solver) newBuffers() (prev, next *grid.Grid, err error) {
	n := s.params.Size
	if prev, err = grid.New(n); err != nil {
		return nil, nil, err
	}
	if next, err = grid.New(n); err != nil {
		return nil, nil, err
	}
	for _, g := range []*grid.Grid{prev, next} {
		grid.InitBoundary(g, s.params.Corners)
		s.seed(g, s.params.Corners)
	}

	return prev, next, nil
}

// Solve iterates until a check observes Error <= Tolerance or the iteration
// limit is reached.
//
// Loop (per pass):
//   - Stage 1: sweep prev → next.
//   - Stage 2: Iteration++.
//   - Stage 3: every CheckInterval sweeps, Error = max interior |next - prev|
//     and the progress observer fires.
//   - Stage 4: swap the buffer handles.
//   - Stage 5: stop on Error <= Tolerance, else on Iteration >= IterationLimit.
//
// ctx only carries trace context: a solve cannot be cancelled and always
// yields a Result.
func (s *Solver) Solve(ctx context.Context) Result {
	p := s.params
	_, span := s.tracer.Start(ctx, "jacobi.solve", trace.WithAttributes(
		attribute.Int("grid.size", p.Size),
		attribute.Float64("solve.tolerance", p.Tolerance),
		attribute.Int("solve.max_iterations", p.MaxIterations),
		attribute.Int("solve.check_interval", p.CheckInterval),
		attribute.Int("solve.workers", s.pool.Workers()),
	))
	defer span.End()

	prev, next, err := s.newBuffers()
	if err != nil {
		// Size was validated by New.
		panic(fmt.Sprintf("jacobi: buffer allocation: %v", err))
	}

	state := State{Error: math.Inf(1)}
	limit := p.IterationLimit()
	status := StatusRunning
	start := time.Now()

	for status == StatusRunning {
		relax(s.pool, prev, next)
		state.Iteration++

		if state.Iteration%p.CheckInterval == 0 {
			state.Error = maxDiff(s.pool, next, prev)
			span.AddEvent("convergence.check", trace.WithAttributes(
				attribute.Int("iteration", state.Iteration),
				attribute.Float64("error", state.Error),
			))
			if s.progress != nil {
				s.progress(state)
			}
		}

		prev, next = next, prev

		switch {
		case state.Error <= p.Tolerance:
			status = StatusConverged
		case state.Iteration >= limit:
			status = StatusIterationCap
		}
	}

	res := Result{
		Grid:       prev,
		Previous:   next,
		Status:     status,
		Iterations: state.Iteration,
		Error:      state.Error,
		Elapsed:    time.Since(start),
		Params:     p,
	}
	span.SetAttributes(
		attribute.String("solve.status", status.String()),
		attribute.Int("solve.iterations", res.Iterations),
		attribute.Float64("solve.error", res.Error),
	)

	return res
}
