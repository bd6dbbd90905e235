// Package main runs the simple-iteration linear solver from the command line.
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

	simpleitercmd "github.com/katalvlaran/heatgrid/internal/cmd/simpleiter"
)

func main() {
	log.SetPrefix("[SIMPLEITER] ")

	fs := flag.NewFlagSet("simpleiter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := simpleitercmd.ParseConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		simpleitercmd.Usage(os.Stdout, fs)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "simpleiter: %v\n\n", err)
		simpleitercmd.Usage(os.Stderr, fs)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := simpleitercmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("run: %v", err)
	}
}
