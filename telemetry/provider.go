// SPDX-License-Identifier: MIT

// Package telemetry installs the OpenTelemetry tracer provider used by the
// solver spans.
package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Environment variables read by Setup.
const (
	EnvEndpoint = "HEATGRID_OTEL_ENDPOINT"
	EnvEnabled  = "HEATGRID_OTEL_ENABLED"
)

// Options selects the exporter. An empty Endpoint or Disabled yields a no-op.
type Options struct {
	ServiceName string
	Endpoint    string
	Disabled    bool
}

// Setup initialises tracing for serviceName from HEATGRID_OTEL_ENDPOINT and
// HEATGRID_OTEL_ENABLED. Tracing is opt-in: with no endpoint, or with
// HEATGRID_OTEL_ENABLED=false, Setup returns a no-op shutdown function and no
// global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	return SetupWith(ctx, Options{
		ServiceName: serviceName,
		Endpoint:    os.Getenv(EnvEndpoint),
		Disabled:    strings.EqualFold(os.Getenv(EnvEnabled), "false"),
	})
}

// SetupWith is Setup with explicit options.
func SetupWith(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if opts.Disabled || strings.TrimSpace(opts.Endpoint) == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(opts.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
