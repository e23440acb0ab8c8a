package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
)

func initTestTracer(t *testing.T, opts Options) (*bytes.Buffer, func(context.Context) error) {
	t.Helper()

	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shutdown, err := InitTracer(opts, &buf, logger)
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	return &buf, shutdown
}

func TestInitTracer(t *testing.T) {
	buf, shutdown := initTestTracer(t, Options{ServiceName: "inspect-test", RunID: "run-42", Pretty: true})

	_, span := otel.Tracer("telemetry_test").Start(context.Background(), "decode-payload")
	span.End()

	// Spans are written when they end, before shutdown.
	out := buf.String()
	if !strings.Contains(out, "decode-payload") {
		t.Errorf("exported spans = %q, want the span name", out)
	}

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}

	out = buf.String()
	for _, want := range []string{"inspect-test", "service.instance.id", "run-42", "service.version"} {
		if !strings.Contains(out, want) {
			t.Errorf("exported spans missing %q:\n%s", want, out)
		}
	}
}

func TestInitTracer_Compact(t *testing.T) {
	buf, shutdown := initTestTracer(t, Options{ServiceName: "inspect-test"})

	tracer := otel.Tracer("telemetry_test")
	for _, name := range []string{"first", "second"} {
		_, span := tracer.Start(context.Background(), name)
		span.End()
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want one per span:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{"first", "second"} {
		var span struct{ Name string }
		if err := json.Unmarshal([]byte(lines[i]), &span); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if span.Name != want {
			t.Errorf("line %d Name = %q, want %q", i, span.Name, want)
		}
	}
	if strings.Contains(buf.String(), "service.instance.id") {
		t.Errorf("exported spans carry service.instance.id without a run id:\n%s", buf.String())
	}
}

func TestBuildVersion(t *testing.T) {
	if buildVersion() == "" {
		t.Error("buildVersion() = \"\", want a version or (devel)")
	}
}
