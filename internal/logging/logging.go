// Package logging configures the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// TimeFormat is the timestamp layout of log lines.
const TimeFormat = time.TimeOnly

// Level returns the minimum level for the given verbosity.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// New creates a tint logger writing to w. Colors are enabled only when w is
// a terminal.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      Level(verbose),
		TimeFormat: TimeFormat,
		NoColor:    !isTerminal(w),
	}))
}

// Setup creates a logger with New and installs it as the slog default.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	logger := New(w, verbose)
	slog.SetDefault(logger)

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
