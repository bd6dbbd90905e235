// SPDX-License-Identifier: MIT

// Package config loads heatgrid settings: environment variables first
// (HEATGRID_*), then command-line flags on top.
package config

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/heatgrid/grid"
	"github.com/katalvlaran/heatgrid/jacobi"
)

// Config holds every CLI setting.
type Config struct {
	Size          int       `env:"HEATGRID_SIZE" envDefault:"1024"`
	Accuracy      float64   `env:"HEATGRID_ACCURACY" envDefault:"1e-6"`
	Iterations    int       `env:"HEATGRID_ITERATIONS" envDefault:"1000000"`
	CheckInterval int       `env:"HEATGRID_CHECK_INTERVAL" envDefault:"10000"`
	Workers       int       `env:"HEATGRID_WORKERS" envDefault:"0"` // 0: runtime.NumCPU()
	Corners       []float64 `env:"HEATGRID_CORNERS" envDefault:"10,20,30,20" envSeparator:","`
	Seed          string    `env:"HEATGRID_SEED" envDefault:"zero"`
	Output        string    `env:"HEATGRID_OUTPUT" envDefault:"matrix.txt"` // "" skips the artefact
	PrintMax      int       `env:"HEATGRID_PRINT_MAX" envDefault:"13"`
	HistoryDB     string    `env:"HEATGRID_HISTORY_DB"`
	MonitorAddr   string    `env:"HEATGRID_MONITOR_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// floatList is a flag.Value for comma-separated floats.
type floatList struct {
	dst *[]float64
}

func (f floatList) String() string {
	if f.dst == nil {
		return ""
	}
	parts := make([]string, len(*f.dst))
	for i, v := range *f.dst {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func (f floatList) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("%q: %w", part, ErrInvalidCorners)
		}
		out = append(out, v)
	}
	*f.dst = out

	return nil
}

// Register binds cfg's fields to flags on fs, using the current values as
// defaults.
func (cfg *Config) Register(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Size, "size", cfg.Size, "grid side N (>= 3)")
	fs.Float64Var(&cfg.Accuracy, "accuracy", cfg.Accuracy, "stop when the max per-cell change is <= accuracy")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iteration budget (hard cap 10000000)")
	fs.IntVar(&cfg.CheckInterval, "check-interval", cfg.CheckInterval, "sweeps between convergence checks")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = number of CPUs)")
	fs.Var(floatList{dst: &cfg.Corners}, "corners", "corner values TL,TR,BR,BL")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "interior start: zero or bilinear")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "text artefact path (empty to skip)")
	fs.IntVar(&cfg.PrintMax, "print-max", cfg.PrintMax, "print grids with N <= print-max to stdout")
	fs.StringVar(&cfg.HistoryDB, "history", cfg.HistoryDB, "SQLite run history path (empty to disable)")
	fs.StringVar(&cfg.MonitorAddr, "monitor-addr", cfg.MonitorAddr, "WebSocket progress address, e.g. :8080 (empty to disable)")
}

// Parse loads env defaults into a Config, then applies flags from args and
// validates the result. flag.ErrHelp is returned unchanged for -h/-help.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Register(fs)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// CornerValues converts the corner list.
func (cfg Config) CornerValues() (grid.Corners, error) {
	if len(cfg.Corners) != 4 {
		return grid.Corners{}, fmt.Errorf("got %d values: %w", len(cfg.Corners), ErrInvalidCorners)
	}
	c, err := grid.CornersFromSlice(cfg.Corners)
	if err != nil {
		return grid.Corners{}, fmt.Errorf("%v: %w", err, ErrInvalidCorners)
	}

	return c, nil
}

// SeedFunc resolves the interior seed name.
func (cfg Config) SeedFunc() (grid.InteriorSeed, error) {
	seed, ok := grid.SeedByName(cfg.Seed)
	if !ok {
		return nil, fmt.Errorf("%q: %w", cfg.Seed, ErrUnknownSeed)
	}

	return seed, nil
}

// JacobiParams maps the config onto solver parameters. Workers 0 becomes
// runtime.NumCPU().
func (cfg Config) JacobiParams() (jacobi.Params, error) {
	if cfg.Workers < 0 {
		return jacobi.Params{}, fmt.Errorf("workers %d: %w", cfg.Workers, ErrInvalidWorkers)
	}
	corners, err := cfg.CornerValues()
	if err != nil {
		return jacobi.Params{}, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return jacobi.Params{
		Size:          cfg.Size,
		Tolerance:     cfg.Accuracy,
		MaxIterations: cfg.Iterations,
		CheckInterval: cfg.CheckInterval,
		Corners:       corners,
		Workers:       workers,
	}, nil
}

// Validate checks every setting; solver parameters report jacobi sentinels.
// Accuracy must be strictly positive here, although the solver itself
// accepts 0.
func (cfg Config) Validate() error {
	if !(cfg.Accuracy > 0) || math.IsInf(cfg.Accuracy, 1) {
		return fmt.Errorf("accuracy %g: %w", cfg.Accuracy, ErrInvalidAccuracy)
	}
	p, err := cfg.JacobiParams()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.SeedFunc(); err != nil {
		return err
	}
	if cfg.PrintMax < 0 {
		return fmt.Errorf("print-max %d: %w", cfg.PrintMax, ErrInvalidPrintMax)
	}

	return nil
}
