// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/heatgrid/history/migrations"
	"github.com/katalvlaran/heatgrid/jacobi"
)

// Run is one stored solve summary.
type Run struct {
	ID            int64
	Size          int
	Tolerance     float64
	MaxIterations int
	CheckInterval int
	Workers       int
	Seed          string
	Status        string
	Iterations    int
	// Error is the last measured change; +Inf when no check ran.
	Error     float64
	Elapsed   time.Duration
	CreatedAt time.Time
}

// FromResult summarises a finished solve. seed names the interior seed used.
func FromResult(res jacobi.Result, seed string) Run {
	return Run{
		Size:          res.Params.Size,
		Tolerance:     res.Params.Tolerance,
		MaxIterations: res.Params.MaxIterations,
		CheckInterval: res.Params.CheckInterval,
		Workers:       res.Params.Workers,
		Seed:          seed,
		Status:        res.Status.String(),
		Iterations:    res.Iterations,
		Error:         res.Error,
		Elapsed:       res.Elapsed,
	}
}

// dsnPragmas are applied by the modernc driver to every new connection.
const dsnPragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Store persists run summaries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the SQLite database at path and applies
// the embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}
	dsn := filepath.Clean(path) + dsnPragmas
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle. Closing a nil Store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

func (r Run) validate() error {
	switch {
	case r.Size < 3:
		return fmt.Errorf("size %d: %w", r.Size, ErrInvalidRun)
	case strings.TrimSpace(r.Status) == "":
		return fmt.Errorf("status is required: %w", ErrInvalidRun)
	case r.Iterations < 0:
		return fmt.Errorf("iterations %d: %w", r.Iterations, ErrInvalidRun)
	case math.IsNaN(r.Error) || math.IsNaN(r.Tolerance):
		return fmt.Errorf("NaN error or tolerance: %w", ErrInvalidRun)
	}

	return nil
}

// nullableError stores +Inf ("never measured") as NULL.
func nullableError(v float64) sql.NullFloat64 {
	if math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: v, Valid: true}
}

// Record inserts run and returns its id. A zero CreatedAt is set to now and
// an empty Seed to "zero".
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, ErrNotConfigured
	}
	if err := run.validate(); err != nil {
		return 0, err
	}
	createdAt := run.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	seed := strings.TrimSpace(run.Seed)
	if seed == "" {
		seed = "zero"
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO runs (
		   size, tolerance, max_iterations, check_interval, workers,
		   seed, status, iterations, error, elapsed_ns, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Size,
		run.Tolerance,
		run.MaxIterations,
		run.CheckInterval,
		run.Workers,
		seed,
		run.Status,
		run.Iterations,
		nullableError(run.Error),
		run.Elapsed.Nanoseconds(),
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}

	return id, nil
}

const selectRun = `SELECT id, size, tolerance, max_iterations, check_interval, workers,
        seed, status, iterations, error, elapsed_ns, created_at
   FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run       Run
		errValue  sql.NullFloat64
		elapsed   int64
		createdAt int64
	)
	if err := row.Scan(
		&run.ID,
		&run.Size,
		&run.Tolerance,
		&run.MaxIterations,
		&run.CheckInterval,
		&run.Workers,
		&run.Seed,
		&run.Status,
		&run.Iterations,
		&errValue,
		&elapsed,
		&createdAt,
	); err != nil {
		return Run{}, err
	}
	run.Error = math.Inf(1)
	if errValue.Valid {
		run.Error = errValue.Float64
	}
	run.Elapsed = time.Duration(elapsed)
	run.CreatedAt = fromMillis(createdAt)

	return run, nil
}

// Get returns the run with the given id.
func (s *Store) Get(ctx context.Context, id int64) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Run{}, ErrNotConfigured
	}
	run, err := scanRun(s.sqlDB.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, fmt.Errorf("get run: %w", err)
	}

	return run, nil
}

// List returns at most limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, ErrNotConfigured
	}
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.sqlDB.QueryContext(ctx, selectRun+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return runs, nil
}
