// SPDX-License-Identifier: MIT

package simpleiter

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/heatgrid/matrix"
	"github.com/katalvlaran/heatgrid/parallel"
)

const tracerName = "github.com/katalvlaran/heatgrid/simpleiter"

// Status is the terminal state of a solve.
type Status int

const (
	// StatusConverged means the relative residual ‖c‖/‖b‖ dropped below ε.
	StatusConverged Status = iota + 1
	// StatusDiverged means ‖c‖ grew between two consecutive evaluations.
	StatusDiverged
	// StatusIterationCap means MaxIterations updates ran without either.
	StatusIterationCap
)

// String returns a stable lowercase name, used in logs and span attributes.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusDiverged:
		return "diverged"
	case StatusIterationCap:
		return "iteration-cap"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// Result of a solve. Residual is ‖A·x − b‖₂ / ‖b‖₂ at the last evaluation;
// Iterations counts updates of X.
type Result struct {
	X          []float64
	Status     Status
	Iterations int
	Residual   float64
	Elapsed    time.Duration
}

// Solver runs the simple iteration with fixed Params.
type Solver struct {
	params Params
	pool   *parallel.Pool
	tracer trace.Tracer
}

// New validates the options over DefaultParams.
func New(opts ...Option) (*Solver, error) {
	o := options{params: DefaultParams()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.params.Validate(); err != nil {
		return nil, fmt.Errorf("simpleiter.New: %w", err)
	}
	pool, err := parallel.New(o.params.Workers)
	if err != nil {
		return nil, fmt.Errorf("simpleiter.New: %w", err)
	}
	tp := o.tracing
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Solver{params: o.params, pool: pool, tracer: tp.Tracer(tracerName)}, nil
}

// Params returns the validated parameters.
func (s *Solver) Params() Params { return s.params }

// residual writes c = A·x − b and returns ‖c‖₂².
func (s *Solver) residual(a []float64, b, x, c []float64) float64 {
	n := len(b)

	return s.pool.SumReduce(0, n, func(lo, hi int) float64 {
		local := 0.0
		for i := lo; i < hi; i++ {
			row := a[i*n : i*n+n]
			acc := 0.0
			for j, v := range row {
				acc += v * x[j]
			}
			ci := acc - b[i]
			c[i] = ci
			local += ci * ci
		}
		return local
	})
}

// Solve iterates from x = 0 until a stopping rule fires.
//
// Errors:
//   - System.Validate failures (matrix sentinels).
//   - ErrZeroRHS if ‖b‖₂ == 0.
//
// Stopping on divergence or on the iteration cap is reported through
// Result.Status, not as an error.
func (s *Solver) Solve(ctx context.Context, sys System) (Result, error) {
	if err := sys.Validate(); err != nil {
		return Result{}, fmt.Errorf("simpleiter.Solve: %w", err)
	}
	bNorm := matrix.Norm2(sys.B)
	if bNorm == 0 {
		return Result{}, ErrZeroRHS
	}

	n := sys.Size()
	p := s.params
	_, span := s.tracer.Start(ctx, "simpleiter.solve", trace.WithAttributes(
		attribute.Int("system.size", n),
		attribute.Float64("solve.tau", p.Tau),
		attribute.Float64("solve.epsilon", p.Epsilon),
		attribute.Int("solve.workers", p.Workers),
	))
	defer span.End()

	a := sys.A.Data()
	x := make([]float64, n)
	c := make([]float64, n)
	start := time.Now()

	var (
		status   Status
		rel      float64
		prevNorm float64
		k        int
	)
	for {
		norm := math.Sqrt(s.residual(a, sys.B, x, c))
		rel = norm / bNorm
		if rel < p.Epsilon {
			status = StatusConverged
			break
		}
		if k > 0 && norm > prevNorm {
			status = StatusDiverged
			span.AddEvent("divergence", trace.WithAttributes(
				attribute.Int("iteration", k),
				attribute.Float64("residual.norm", norm),
				attribute.Float64("residual.previous", prevNorm),
			))
			break
		}
		if k == p.MaxIterations {
			status = StatusIterationCap
			break
		}
		prevNorm = norm

		tau := p.Tau
		s.pool.For(0, n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				x[i] -= tau * c[i]
			}
		})
		k++
	}

	res := Result{X: x, Status: status, Iterations: k, Residual: rel, Elapsed: time.Since(start)}
	span.SetAttributes(
		attribute.String("solve.status", status.String()),
		attribute.Int("solve.iterations", k),
		attribute.Float64("solve.residual", rel),
	)
	if status == StatusDiverged {
		span.SetStatus(codes.Error, "diverged")
	}

	return res, nil
}
