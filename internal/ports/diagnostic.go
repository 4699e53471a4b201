package ports

// DiagnosticSink receives free-text status lines.
// The checker emits exactly one line per check, whatever the outcome.
type DiagnosticSink interface {
	Emit(line string)
}
