package pathjson

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// HandlerKind selects a slog.Handler implementation for NewLogger,
// mirroring the JSON/text/dev three-way switch inngest's logger package
// drives off an environment variable — simplified here to the handful
// of levels this package actually logs at (Debug for a matched value,
// Error for a parse failure).
type HandlerKind string

const (
	HandlerDev  HandlerKind = "dev"
	HandlerJSON HandlerKind = "json"
	HandlerText HandlerKind = "text"
)

// NewLogger builds a *slog.Logger writing to w at the given kind and
// level. HandlerDev uses tint for readable, colorized terminal output
// during local runs of the command-line tool; HandlerJSON and
// HandlerText are meant for production log collection.
func NewLogger(kind HandlerKind, level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	switch kind {
	case HandlerJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	case HandlerText:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	default:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "[15:04:05.000]",
		}))
	}
}
