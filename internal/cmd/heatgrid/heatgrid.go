// Package heatgrid parses heatgrid flags and runs one solve.
package heatgrid

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatgrid/config"
	"github.com/katalvlaran/heatgrid/gridio"
	"github.com/katalvlaran/heatgrid/history"
	"github.com/katalvlaran/heatgrid/jacobi"
	"github.com/katalvlaran/heatgrid/monitor"
	"github.com/katalvlaran/heatgrid/telemetry"
)

// ServiceName identifies the command in traces and logs.
const ServiceName = "heatgrid"

const defaultOTelShutdownTimeout = 5 * time.Second

// monitorQueue is the number of progress events buffered for slow clients.
const monitorQueue = 64

// ErrListWithoutHistory is returned when -list-runs is given without -history.
var ErrListWithoutHistory = errors.New("heatgrid: -list-runs requires -history")

// Config holds heatgrid command configuration.
type Config struct {
	config.Config
	// ListRuns > 0 prints the newest runs from the history and exits.
	ListRuns int
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.IntVar(&cfg.ListRuns, "list-runs", 0, "print the newest n runs from -history and exit")
	base, err := config.Parse(fs, args)
	if err != nil {
		return Config{}, err
	}
	cfg.Config = base
	if cfg.ListRuns > 0 && cfg.HistoryDB == "" {
		return Config{}, ErrListWithoutHistory
	}

	return cfg, nil
}

// Usage writes a usage message for fs to w.
func Usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags]\n\nSolves the 2-D Laplace equation on an N×N grid by Jacobi relaxation.\nEvery flag can also be set through HEATGRID_<NAME>.\n\nFlags:\n", fs.Name())
	prev := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(prev)
}

// Run executes the heatgrid command.
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

	if cfg.ListRuns > 0 {
		return listRuns(ctx, cfg, out)
	}

	return solve(ctx, cfg, out, errOut)
}

func solve(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	params, err := cfg.JacobiParams()
	if err != nil {
		return err
	}
	seed, err := cfg.SeedFunc()
	if err != nil {
		return err
	}

	var feed *monitor.Feed
	progress := func(st jacobi.State) {
		fmt.Fprintf(out, "iteration: %d error: %g\n", st.Iteration, st.Error)
		if feed != nil {
			feed.Offer(monitor.Event{
				Type:      monitor.TypeProgress,
				Iteration: st.Iteration,
				Error:     st.Error,
				Status:    jacobi.StatusRunning.String(),
			})
		}
	}

	solver, err := jacobi.New(jacobi.WithParams(params), jacobi.WithSeed(seed), jacobi.WithProgress(progress))
	if err != nil {
		return err
	}

	hub, ln := openMonitor(cfg.MonitorAddr, errOut)
	if hub != nil {
		feed = monitor.NewFeed(hub, monitorQueue)
	}

	n := int64(params.Size)
	fmt.Fprintf(errOut, "grid: %s x %s (%s cells), workers: %d, seed: %s\n",
		humanize.Comma(n), humanize.Comma(n), humanize.Comma(n*n), params.Workers, cfg.Seed)

	var res jacobi.Result
	g, gctx := errgroup.WithContext(ctx)
	serveCtx, stopServe := context.WithCancel(gctx)
	defer stopServe()

	if hub != nil {
		srv := monitor.NewServer(cfg.MonitorAddr, hub)
		g.Go(func() error {
			// Serve errors are logged; they never fail the run.
			if err := monitor.Serve(serveCtx, srv, ln, hub); err != nil {
				log.Printf("monitor stopped: %v", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer stopServe()
		res = solver.Solve(gctx)
		if hub != nil {
			feed.Close()
			_, _ = hub.Publish(monitor.Event{
				Type:      monitor.TypeDone,
				Iteration: res.Iterations,
				Error:     res.Error,
				Status:    res.Status.String(),
			})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(out, "time: %s error: %g iterations: %s status: %s\n",
		res.Elapsed.Round(time.Microsecond), res.Error, humanize.Comma(int64(res.Iterations)), res.Status)

	if params.Size <= cfg.PrintMax {
		if err := gridio.Dump(out, res.Grid); err != nil {
			return fmt.Errorf("dump grid: %w", err)
		}
	}

	if cfg.Output != "" {
		if err := gridio.WriteFile(cfg.Output, res.Grid); err != nil {
			return err
		}
		if info, err := os.Stat(cfg.Output); err == nil {
			fmt.Fprintf(errOut, "artefact: %s (%s)\n", cfg.Output, humanize.Bytes(uint64(info.Size())))
		}
	}

	if cfg.HistoryDB != "" {
		id, err := recordRun(ctx, cfg, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(errOut, "history: run #%d recorded in %s\n", id, cfg.HistoryDB)
	}

	return nil
}

// openMonitor binds addr for the progress monitor. An empty addr disables it;
// a bind failure is reported on errOut and the solve runs without a monitor.
func openMonitor(addr string, errOut io.Writer) (*monitor.Hub, net.Listener) {
	if addr == "" {
		return nil, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("monitor disabled: %v", err)
		fmt.Fprintf(errOut, "monitor: disabled: %v\n", err)
		return nil, nil
	}
	log.Printf("monitor listening on %s%s", ln.Addr(), monitor.Path)

	return monitor.NewHub(), ln
}

func recordRun(ctx context.Context, cfg Config, res jacobi.Result) (int64, error) {
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return 0, fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	return store.Record(ctx, history.FromResult(res, cfg.Seed))
}

func listRuns(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	runs, err := store.List(ctx, cfg.ListRuns)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(out, "#%d  %s  N=%s  %s  iterations=%s  error=%g  time=%s\n",
			r.ID,
			humanize.Time(r.CreatedAt),
			humanize.Comma(int64(r.Size)),
			r.Status,
			humanize.Comma(int64(r.Iterations)),
			r.Error,
			r.Elapsed.Round(time.Microsecond),
		)
	}

	return nil
}
