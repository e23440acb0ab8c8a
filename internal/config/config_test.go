package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Output.Kind != "auto" {
			t.Errorf("Load() kind = %v, want auto", cfg.Output.Kind)
		}
		if cfg.Output.Format != "table" {
			t.Errorf("Load() format = %v, want table", cfg.Output.Format)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Load() log level = %v, want info", cfg.Log.Level)
		}
		if cfg.Trace.Enabled {
			t.Errorf("Load() trace enabled = true, want false")
		}
		if cfg.Trace.ServiceName != "assistant-inspect" {
			t.Errorf("Load() service name = %v, want assistant-inspect", cfg.Trace.ServiceName)
		}
		if !cfg.Trace.Pretty {
			t.Errorf("Load() trace pretty = false, want true")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := writeConfig(t, "output:\n  kind: logs\n  show_raw: true\ntrace:\n  enabled: true\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Output.Kind != "logs" {
			t.Errorf("Load() kind = %v, want logs", cfg.Output.Kind)
		}
		if !cfg.Output.ShowRaw {
			t.Errorf("Load() show_raw = false, want true")
		}
		if !cfg.Trace.Enabled {
			t.Errorf("Load() trace enabled = false, want true")
		}
		if cfg.Output.Format != "table" {
			t.Errorf("Load() format = %v, want the table default", cfg.Output.Format)
		}
	})

	t.Run("env var override", func(t *testing.T) {
		path := writeConfig(t, "output:\n  format: yaml\n")
		t.Setenv("INSPECT_OUTPUT__FORMAT", "json")
		t.Setenv("INSPECT_LOG__LEVEL", "debug")
		t.Setenv("INSPECT_TRACE__PRETTY", "false")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Output.Format != "json" {
			t.Errorf("Load() format = %v, want json", cfg.Output.Format)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Load() log level = %v, want debug", cfg.Log.Level)
		}
		if cfg.Trace.Pretty {
			t.Errorf("Load() trace pretty = true, want false from the environment")
		}
	})

	t.Run("dotenv", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("INSPECT_OUTPUT__KIND=provider\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Unsetenv("INSPECT_OUTPUT__KIND") })

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Output.Kind != "provider" {
			t.Errorf("Load() kind = %v, want provider", cfg.Output.Kind)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Errorf("Load() error = nil, want an error for a missing explicit file")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		output  OutputConfig
		wantErr bool
	}{
		{"defaults", OutputConfig{Kind: "auto", Format: "table"}, false},
		{"stateless stream yaml", OutputConfig{Kind: "stateless-stream", Format: "yaml"}, false},
		{"unknown kind", OutputConfig{Kind: "workspace", Format: "json"}, true},
		{"unknown format", OutputConfig{Kind: "message", Format: "csv"}, true},
		{"empty format", OutputConfig{Kind: "message"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Output: tt.output}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Log: LogConfig{Level: tt.level}}
			got, err := cfg.SlogLevel()
			if (err != nil) != tt.wantErr {
				t.Fatalf("SlogLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assistant-inspect.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
