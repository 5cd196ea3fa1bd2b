package cli

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the diagnostic logger. --verbose forces debug level;
// otherwise log_level from config applies, defaulting to warn.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	} else {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "debug":
			lvl = slog.LevelDebug
		case "info":
			lvl = slog.LevelInfo
		case "error":
			lvl = slog.LevelError
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
