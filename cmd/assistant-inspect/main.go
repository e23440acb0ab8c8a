package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tjfontaine/watson-assistant/internal/config"
	"github.com/tjfontaine/watson-assistant/internal/inspect"
	"github.com/tjfontaine/watson-assistant/internal/telemetry"
)

var (
	app        = kingpin.New("assistant-inspect", "Decode captured Watson Assistant v2 payloads and report their variants.")
	configPath = app.Flag("config", "Config file (default "+config.DefaultPath+" when present).").Short('c').String()
	kind       = app.Flag("kind", "Payload kind: auto, message, stateless-message, stream, stateless-stream, logs, skill, environment, provider.").Short('k').String()
	format     = app.Flag("format", "Output format: table, json, yaml.").Short('f').String()
	showRaw    = app.Flag("raw", "Show the raw JSON of members with an unknown tag.").Bool()
	traceSpans = app.Flag("trace", "Print OpenTelemetry spans to stderr.").Bool()
	files      = app.Arg("file", "Payload files; stdin when none or -.").Strings()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assistant-inspect: %v\n", err)
		return 2
	}
	if *kind != "" {
		cfg.Output.Kind = *kind
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *showRaw {
		cfg.Output.ShowRaw = true
	}
	if *traceSpans {
		cfg.Trace.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "assistant-inspect: invalid configuration: %v\n", err)
		return 2
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "assistant-inspect: invalid configuration: %v\n", err)
		return 2
	}

	// Reports go to stdout, logs and spans to stderr.
	runID := uuid.NewString()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("run_id", runID))
	slog.SetDefault(logger)

	if cfg.Trace.Enabled {
		shutdown, err := telemetry.InitTracer(telemetry.Options{
			ServiceName: cfg.Trace.ServiceName,
			RunID:       runID,
			Pretty:      cfg.Trace.Pretty,
		}, os.Stderr, logger)
		if err != nil {
			logger.Error("failed to initialize tracer", slog.String("error", err.Error()))
			return 2
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
			}
		}()
	}

	sources, err := inspect.ReadSources(*files, os.Stdin)
	if err != nil {
		logger.Error("failed to read payloads", slog.String("error", err.Error()))
		return 2
	}

	ctx := context.Background()
	in := inspect.New(logger, inspect.Options{ShowRaw: cfg.Output.ShowRaw})

	reports := make([]*inspect.Report, 0, len(sources))
	failed := 0
	for _, src := range sources {
		r := in.Inspect(ctx, src, inspect.Kind(cfg.Output.Kind))
		if r.Failed() {
			failed++
		}
		reports = append(reports, r)
	}

	if err := inspect.Render(os.Stdout, inspect.Format(cfg.Output.Format), reports); err != nil {
		logger.Error("failed to render reports", slog.String("error", err.Error()))
		return 2
	}

	if failed > 0 {
		logger.Info("some payloads failed to decode", slog.Int("failed", failed), slog.Int("total", len(sources)))
		return 1
	}
	return 0
}
