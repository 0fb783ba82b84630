// Package logger provides the structured logging engine for vroom.
// Uses log/slog with two sinks: stderr always, plus an optional TUI channel.
// The object model's lifecycle traces are NOT log output — they are the
// program's stdout artifact; this logger carries CLI diagnostics only.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger wraps slog.Logger with vroom-specific utilities.
type Logger struct {
	*slog.Logger
}

// tuiSinkCh receives formatted log lines for TUI display when set.
var tuiSinkCh chan string

// SetTUISink registers a channel that receives log lines destined for the TUI.
// Call before Init.
func SetTUISink(ch chan string) {
	tuiSinkCh = ch
}

// Init initialises the global logger.
func Init(level, format string, debug bool) (*Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if debug {
		lvl = slog.LevelDebug
	}

	writers := []io.Writer{os.Stderr}
	if tuiSinkCh != nil {
		writers = append(writers, &tuiWriter{ch: tuiSinkCh})
	}
	out := io.MultiWriter(writers...)

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: lvl, AddSource: debug}
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	base := slog.New(handler)
	slog.SetDefault(base)

	return &Logger{Logger: base}, nil
}

// tuiWriter implements io.Writer by forwarding lines to the TUI sink channel.
type tuiWriter struct {
	mu sync.Mutex
	ch chan<- string
}

func (w *tuiWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case w.ch <- string(p):
	default: // drop if channel full — never block logger
	}
	return len(p), nil
}
