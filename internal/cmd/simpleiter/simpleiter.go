// Package simpleiter parses simpleiter flags and solves the benchmark system
// A·x = b by fixed-step simple iteration.
package simpleiter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/heatgrid/config"
	"github.com/katalvlaran/heatgrid/simpleiter"
	"github.com/katalvlaran/heatgrid/telemetry"
)

// ServiceName identifies the command in traces and logs.
const ServiceName = "simpleiter"

const defaultOTelShutdownTimeout = 5 * time.Second

var (
	// ErrInvalidSize is returned for a system size below 1.
	ErrInvalidSize = errors.New("simpleiter: size must be >= 1")
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("simpleiter: workers must be >= 0")
	// ErrTooManyArgs is returned for more than two positional arguments.
	ErrTooManyArgs = errors.New("simpleiter: expected at most [N [workers]]")
)

// Config holds simpleiter command configuration.
type Config struct {
	Size       int     `env:"HEATGRID_SIMPLE_SIZE" envDefault:"1000"`
	Tau        float64 `env:"HEATGRID_SIMPLE_TAU" envDefault:"1e-4"`
	Epsilon    float64 `env:"HEATGRID_SIMPLE_EPSILON" envDefault:"1e-5"`
	Iterations int     `env:"HEATGRID_SIMPLE_ITERATIONS" envDefault:"1000000"`
	Workers    int     `env:"HEATGRID_SIMPLE_WORKERS" envDefault:"0"` // 0: runtime.NumCPU()
	Direct     bool    `env:"HEATGRID_SIMPLE_DIRECT"`
}

// ParseConfig loads env defaults, applies flags from args, then the optional
// positional N and workers, and validates the result.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Size, "n", cfg.Size, "number of unknowns N")
	fs.Float64Var(&cfg.Tau, "tau", cfg.Tau, "fixed step τ")
	fs.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "stop when ‖Ax-b‖/‖b‖ < epsilon")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iteration budget")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = number of CPUs)")
	fs.BoolVar(&cfg.Direct, "direct", cfg.Direct, "also solve by LU and report the difference")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return Config{}, ErrTooManyArgs
	}
	for i, dst := range []*int{&cfg.Size, &cfg.Workers} {
		if i >= len(rest) {
			break
		}
		v, err := strconv.Atoi(rest[i])
		if err != nil {
			return Config{}, fmt.Errorf("argument %d %q: %w", i+1, rest[i], err)
		}
		*dst = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the size, the worker count and the solver parameters.
func (cfg Config) Validate() error {
	if cfg.Size < 1 {
		return fmt.Errorf("size %d: %w", cfg.Size, ErrInvalidSize)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers %d: %w", cfg.Workers, ErrInvalidWorkers)
	}

	return cfg.Params().Validate()
}

// Params maps the config onto solver parameters. Workers 0 becomes
// runtime.NumCPU().
func (cfg Config) Params() simpleiter.Params {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return simpleiter.Params{
		Tau:           cfg.Tau,
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.Iterations,
		Workers:       workers,
	}
}

// Usage writes a usage message for fs to w.
func Usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags] [N [workers]]\n\nSolves the N×N system A·x = b (A[i][i] = 2, A[i][j] = 1, b[i] = N+1)\nby x ← x − τ(Ax − b). Every flag can also be set through HEATGRID_SIMPLE_<NAME>.\n\nFlags:\n", fs.Name())
	prev := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(prev)
}

// Run executes the simpleiter command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	shutdown, err := telemetry.Setup(ctx, ServiceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultOTelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", ServiceName, err)
		}
	}()

	p := cfg.Params()
	sys, err := simpleiter.NewSystem(cfg.Size)
	if err != nil {
		return err
	}
	solver, err := simpleiter.New(
		simpleiter.WithTau(p.Tau),
		simpleiter.WithEpsilon(p.Epsilon),
		simpleiter.WithMaxIterations(p.MaxIterations),
		simpleiter.WithWorkers(p.Workers),
	)
	if err != nil {
		return err
	}

	n := int64(cfg.Size)
	fmt.Fprintf(errOut, "system: %s x %s, workers: %d, tau: %g, epsilon: %g\n",
		humanize.Comma(n), humanize.Comma(n), p.Workers, p.Tau, p.Epsilon)

	res, err := solver.Solve(ctx, sys)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "time: %s residual: %g iterations: %s status: %s\n",
		res.Elapsed.Round(time.Microsecond), res.Residual, humanize.Comma(int64(res.Iterations)), res.Status)
	fmt.Fprintf(out, "max |x-1|: %g\n", maxDeviation(res.X, nil))

	if cfg.Direct {
		x, err := sys.SolveDirect()
		if err != nil {
			return fmt.Errorf("direct solve: %w", err)
		}
		fmt.Fprintf(out, "direct: max |x-x_lu|: %g\n", maxDeviation(res.X, x))
	}

	return nil
}

// maxDeviation returns max |x[i] - ref[i]|; a nil ref stands for all ones,
// the exact solution of the benchmark system.
func maxDeviation(x, ref []float64) float64 {
	worst := 0.0
	for i, v := range x {
		want := 1.0
		if ref != nil {
			want = ref[i]
		}
		worst = math.Max(worst, math.Abs(v-want))
	}

	return worst
}
