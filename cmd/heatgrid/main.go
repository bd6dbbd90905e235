// Package main runs the heatgrid Jacobi solver from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	heatgridcmd "github.com/katalvlaran/heatgrid/internal/cmd/heatgrid"
)

func main() {
	log.SetPrefix("[HEATGRID] ")

	fs := flag.NewFlagSet("heatgrid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := heatgridcmd.ParseConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		heatgridcmd.Usage(os.Stdout, fs)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "heatgrid: %v\n\n", err)
		heatgridcmd.Usage(os.Stderr, fs)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := heatgridcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("run: %v", err)
	}
}
