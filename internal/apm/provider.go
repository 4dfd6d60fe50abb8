package apm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TraceProvider owns the lifecycle of a configured tracer provider.
type TraceProvider interface {
	Shutdown(ctx context.Context) error
}

type consoleTraceProvider struct {
	tp *sdktrace.TracerProvider
}

// NewConsoleTraceProvider installs a provider that pretty-prints spans
// to stdout and registers it globally. Meant for the CLI and local
// debugging; library consumers install their own provider.
func NewConsoleTraceProvider() (TraceProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return &consoleTraceProvider{tp}, nil
}

func (p *consoleTraceProvider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

type emptyTraceProvider struct{}

// NewEmptyTraceProvider returns a no-op provider; spans go to the otel
// default (a no-op tracer).
func NewEmptyTraceProvider() TraceProvider {
	return emptyTraceProvider{}
}

func (emptyTraceProvider) Shutdown(context.Context) error {
	return nil
}
