package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns the process logger writing to stdout.
func New(env, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, env, level)
}

// NewWithWriter logs JSON in production and text elsewhere. level ("debug",
// "info", "warn", "error") overrides the per-environment default; an
// unparsable level is ignored.
func NewWithWriter(w io.Writer, env, level string) *slog.Logger {
	prod := env == "prod" || env == "production"

	opts := &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true}
	if prod {
		opts.Level = slog.LevelInfo
	}
	if level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err == nil {
			opts.Level = l
		}
	}

	var handler slog.Handler
	if prod {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "home-insurance")
}
