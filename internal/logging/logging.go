// Package logging builds the process logger: log/slog on a tint handler,
// colored when stderr is a terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog.Level.
// The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Options configures New.
type Options struct {
	// Level is shared so it can be raised after the config is loaded.
	Level *slog.LevelVar

	// NoColor forces plain output. Colors are also off when the writer is
	// not a terminal.
	NoColor bool

	// NoTime drops timestamps, e.g. under systemd which adds its own.
	NoTime bool
}

// New returns a logger writing to stderr.
func New(opts Options) *slog.Logger {
	noColor := opts.NoColor || !isatty.IsTerminal(os.Stderr.Fd())
	return newLogger(colorable.NewColorable(os.Stderr), noColor, opts)
}

// NewWriter returns a logger writing uncolored to w.
func NewWriter(w io.Writer, opts Options) *slog.Logger {
	return newLogger(w, true, opts)
}

func newLogger(w io.Writer, noColor bool, opts Options) *slog.Logger {
	var level slog.Leveler = slog.LevelInfo
	if opts.Level != nil {
		level = opts.Level
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if opts.NoTime && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return dropEmpty(a)
		},
	}))
}

// dropEmpty removes attributes carrying a zero value.
func dropEmpty(a slog.Attr) slog.Attr {
	skip := false
	switch t := a.Value.Any().(type) {
	case string:
		skip = t == ""
	case time.Duration:
		skip = t == 0
	case time.Time:
		skip = t.IsZero()
	case nil:
		skip = true
	}
	if skip {
		return slog.Attr{}
	}
	return a
}
