// Package config loads the assistant-inspect configuration from a YAML file,
// a .env file and INSPECT_ environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tjfontaine/watson-assistant/internal/inspect"
)

// DefaultPath is read when no config file is given. It may be absent.
const DefaultPath = "assistant-inspect.yaml"

const envPrefix = "INSPECT_"

type Config struct {
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
	Trace  TraceConfig  `koanf:"trace"`
}

type OutputConfig struct {
	Kind    string `koanf:"kind"`
	Format  string `koanf:"format"`
	ShowRaw bool   `koanf:"show_raw"` // include the raw JSON of unknown members
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type TraceConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name"`
	Pretty      bool   `koanf:"pretty"` // indent spans instead of one JSON line each
}

// Load reads path (DefaultPath when empty), then .env, then the environment.
// INSPECT_OUTPUT__FORMAT=json sets output.format.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("output.kind") {
		k.Set("output.kind", string(inspect.KindAuto))
	}
	if !k.Exists("output.format") {
		k.Set("output.format", string(inspect.FormatTable))
	}
	if !k.Exists("log.level") {
		k.Set("log.level", "info")
	}
	if !k.Exists("trace.service_name") {
		k.Set("trace.service_name", "assistant-inspect")
	}
	if !k.Exists("trace.pretty") {
		k.Set("trace.pretty", true)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	return validation.ValidateStruct(&c.Output,
		validation.Field(&c.Output.Kind, validation.Required, validation.In(stringsOf(inspect.Kinds())...)),
		validation.Field(&c.Output.Format, validation.Required, validation.In(stringsOf(inspect.Formats())...)),
	)
}

// SlogLevel parses Log.Level (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func stringsOf[S ~string](values []S) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
