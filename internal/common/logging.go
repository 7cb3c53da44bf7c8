package common

import (
	"io"
	"log/slog"
)

// NewLogger returns the JSON logger every command writes to stderr.
// quiet keeps errors only; verbose adds debug output.
func NewLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case quiet:
		logLevel = slog.LevelError
	case verbose:
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
