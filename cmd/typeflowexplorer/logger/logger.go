// Package logger provides the debug-log sink for typeflowexplorer
// itself (the TUI's own tracing). It is a thin wrapper over
// pkg/diagnostics rather than its own independent slog setup: Init
// opens the log file and hands it to diagnostics.New, then exposes
// the resulting *slog.Logger both as the package-level Info/Warn/
// Error/Debug helpers and, via Diagnostics, as the typeflow.Engine's
// own Diagnostics sink — so turning on --debug traces the TUI's own
// decisions and the embedded engine's propagation into one file
// instead of two.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joshuapare/typeflow/pkg/diagnostics"
	"github.com/joshuapare/typeflow/typeflow"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging to a file.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// sink backs Diagnostics; nil until Init enables logging.
var sink *diagnostics.Slog

const logFileName = "typeflowexplorer.log"

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for the log file. Default: ~/.typeflowexplorer/logs
	Level   slog.Level // Minimum log level. Default: LevelDebug when enabled
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		sink = nil
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".typeflowexplorer", "logs")
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	sink = diagnostics.New(diagnostics.Options{Enabled: true, Level: opts.Level, Writer: f})
	L = sink.Logger()
	return nil
}

// Diagnostics returns a typeflow.Diagnostics sink reporting into the
// same destination as L, for wiring into typeflow.Options when
// building the engine this TUI is browsing. Before Init enables
// logging (or if it never runs), it returns a discarding sink.
func Diagnostics() typeflow.Diagnostics {
	if sink == nil {
		return diagnostics.New(diagnostics.Options{})
	}
	return sink
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
