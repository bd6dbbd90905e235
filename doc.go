// Package heatgrid approximates the steady-state temperature field of a square
// plate whose four corners are held at fixed temperatures, by Jacobi
// relaxation of the 2-D Laplace equation.
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/      row-major Dense storage, validators, vector kernels, LU solve
//	parallel/    row-band partitioning, barrier-synchronised For and reductions
//	grid/        N×N field, corner interpolation, interior seeds
//	jacobi/      relaxation sweep, convergence check, iteration driver
//	simpleiter/  fixed-step simple iteration for dense linear systems
//	gridio/      text artefact writer/reader, terminal dump
//	history/     SQLite log of finished solves
//	monitor/     WebSocket progress stream
//	telemetry/   OpenTelemetry tracer setup
//	config/      HEATGRID_* environment + flag loading
//
// The commands live in cmd/heatgrid and cmd/simpleiter:
//
//	heatgrid -size 512 -accuracy 1e-6 -check-interval 1000 -output matrix.txt
//	simpleiter -tau 1e-4 1000 8
//
// heatgrid prints a progress line per convergence check and a summary line,
// then writes the final grid as N lines of "%10.4f" values.
package heatgrid
