// Package config loads pathjson command-line configuration from a
// layered stack of sources, cheapest-to-override first: a config file,
// then PATHJSON_-prefixed environment variables, then explicit CLI
// flags — the same three-source koanf pipeline inngest's own
// cmd/internal/config package builds, trimmed to the handful of
// settings this tool actually has.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the resolved set of run-time settings for the pathjson
// command-line tool.
type Config struct {
	Patterns  []string `koanf:"patterns"`
	ChunkSize int      `koanf:"chunk-size"`
	LogLevel  string   `koanf:"log-level"`
	LogFormat string   `koanf:"log-format"`
}

const envPrefix = "PATHJSON_"

// Load reads path (if non-empty) as a JSON or YAML config file, then
// overlays PATHJSON_-prefixed environment variables, and returns the
// merged result. CLI flags are applied by the caller afterward, as the
// highest-priority layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, any) {
		configKey := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, envPrefix), "_", "-"))
		if configKey == "patterns" && strings.Contains(value, ",") {
			return configKey, strings.Split(value, ",")
		}
		return configKey, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := &Config{ChunkSize: 4096, LogLevel: "info", LogFormat: "dev"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unrecognized config file extension: %s", path)
	}
}

// DefaultPath returns the first of the standard search locations that
// exists, or "" if none do: ./pathjson.yaml, ./pathjson.yml,
// ./pathjson.json, then $HOME/.config/pathjson/config.yaml.
func DefaultPath() string {
	candidates := []string{"pathjson.yaml", "pathjson.yml", "pathjson.json"}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "pathjson", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
