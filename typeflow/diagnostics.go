package typeflow

// Diagnostics is the non-fatal reporting sink the engine consumes:
// unresolvable upper bounds and, when logging is enabled, per-edge
// and per-delta traces are reported here rather than returned as
// errors.
type Diagnostics interface {
	Debugf(format string, args ...any)
}

// noopDiagnostics discards everything; it is the default when an
// Engine is constructed without an explicit Diagnostics sink.
type noopDiagnostics struct{}

func (noopDiagnostics) Debugf(string, ...any) {}

// DiagnosticsFunc adapts a plain function to the Diagnostics
// interface, the same way ConsumerFunc adapts one to Consumer.
type DiagnosticsFunc func(format string, args ...any)

// Debugf calls f.
func (f DiagnosticsFunc) Debugf(format string, args ...any) { f(format, args...) }
