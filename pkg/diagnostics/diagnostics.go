// Package diagnostics provides a log/slog-backed implementation of
// typeflow.Diagnostics, the engine's non-fatal reporting sink.
//
// Unlike cmd/hiveexplorer's logger package, which holds a single
// package-level *slog.Logger swapped out by Init, a Diagnostics sink
// is constructed per Engine and passed in at typeflow.NewEngine time:
// an embedder analysing several programs concurrently needs one
// logger per analysis, not one shared global.
package diagnostics

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Options configures a Slog sink.
type Options struct {
	// Enabled discards everything when false, the same default as
	// cmd/hiveexplorer's logger before Init is called.
	Enabled bool

	// Level is the minimum level passed through to the handler.
	// Defaults to slog.LevelDebug, since typeflow only ever reports
	// through Debugf.
	Level slog.Level

	// Writer receives JSON-formatted log lines. Defaults to os.Stderr.
	Writer io.Writer
}

// Slog adapts a *slog.Logger to typeflow.Diagnostics.
type Slog struct {
	log *slog.Logger
}

// New builds a Slog sink from opts. A disabled sink discards every
// call, mirroring logger.Init(Options{Enabled: false}).
func New(opts Options) *Slog {
	if !opts.Enabled {
		return &Slog{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelDebug
	}

	return &Slog{log: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewFromLogger wraps an already-configured logger, for embedders that
// want to share one *slog.Logger across several subsystems.
func NewFromLogger(l *slog.Logger) *Slog {
	return &Slog{log: l}
}

// Debugf implements typeflow.Diagnostics.
func (s *Slog) Debugf(format string, args ...any) {
	s.log.Debug(fmt.Sprintf(format, args...))
}

// Logger returns the underlying *slog.Logger, for callers that want to
// log their own, non-Diagnostics messages (e.g. Info/Warn/Error)
// through the exact same handler and destination as this sink.
func (s *Slog) Logger() *slog.Logger { return s.log }
