// Package telemetry exports the spans of one assistant-inspect run.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Options selects what the exported spans carry and how they are printed.
type Options struct {
	ServiceName string

	// RunID becomes service.instance.id so spans can be joined with the log
	// lines of the same invocation.
	RunID string

	// Pretty indents each span. Otherwise every span is one JSON line.
	Pretty bool
}

// InitTracer installs a global tracer provider that writes each span to w as
// soon as it ends. The returned function flushes and stops it.
func InitTracer(opts Options, w io.Writer, logger *slog.Logger) (func(context.Context) error, error) {
	exportOpts := []stdouttrace.Option{stdouttrace.WithWriter(w)}
	if opts.Pretty {
		exportOpts = append(exportOpts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(exportOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create span exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes("", resourceAttributes(opts)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	// A run inspects a handful of payloads and exits; spans are written
	// in order without batching.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	logger.Debug("OpenTelemetry initialized",
		slog.String("service", opts.ServiceName),
		slog.Bool("pretty", opts.Pretty),
	)

	return tp.Shutdown, nil
}

func resourceAttributes(opts Options) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(buildVersion()),
	}
	if opts.RunID != "" {
		attrs = append(attrs, semconv.ServiceInstanceID(opts.RunID))
	}
	return attrs
}

// buildVersion is the module version of the running binary, "(devel)" for
// local builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
