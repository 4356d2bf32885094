package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	pj "github.com/jacoelho-labs/pathjson"
	"github.com/jacoelho-labs/pathjson/cmd/pathjson/internal/config"
	"github.com/jacoelho-labs/pathjson/perrors"
	"github.com/jacoelho-labs/pathjson/source"
)

// runCommand streams a file (or stdin) through an Engine built from
// --pattern flags and prints each matched (path, value) pair as one
// line of NDJSON.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "parse a JSON document and print values matching one or more patterns",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "pattern", Aliases: []string{"p"}, Usage: "JSONPath-style pattern; repeatable"},
			&cli.IntFlag{Name: "chunk-size", Usage: "bytes read per chunk when streaming a file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return err
			}
			patternStrs := cmd.StringSlice("pattern")
			if len(patternStrs) == 0 {
				patternStrs = cfg.Patterns
			}
			patterns, err := pj.NewPatterns(patternStrs)
			if err != nil {
				return err
			}

			chunkSize := cfg.ChunkSize
			if cmd.IsSet("chunk-size") {
				chunkSize = cmd.Int("chunk-size")
			}

			sessionID := uuid.NewString()
			logger := newLogger(cmd, cfg).With("session_id", sessionID)

			in, closeFn, err := openInput(cmd.Args().First())
			if err != nil {
				return err
			}
			defer closeFn()

			enc := json.NewEncoder(os.Stdout)
			eng := pj.NewEngine(patterns, func(path string, v pj.Value) {
				_ = enc.Encode(struct {
					Path  string `json:"path"`
					Value any    `json:"value"`
				}{Path: path, Value: v})
			}, pj.WithLogger(logger))

			if err := source.PushReader(ctx, eng, in, chunkSize); err != nil {
				if kind, ok := perrors.Of(err); ok {
					return fmt.Errorf("%s: %w", kind, err)
				}
				return err
			}
			return nil
		},
	}
}

func configPath(cmd *cli.Command) string {
	if p := cmd.Root().String("config"); p != "" {
		return p
	}
	return config.DefaultPath()
}

func newLogger(cmd *cli.Command, cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel
	if cmd.Root().IsSet("log-level") {
		level = cmd.Root().String("log-level")
	}
	format := cfg.LogFormat
	if cmd.Root().IsSet("log-format") {
		format = cmd.Root().String("log-format")
	}
	return pj.NewLogger(pj.HandlerKind(format), parseLevel(level), os.Stderr)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openInput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
