package types

// Logger is the structured logger used by the Service and the stores.
//
// Messages are short and constant ("state saved", "assignment notice"); the
// variable parts travel as key-value pairs such as "namespace", "op",
// "run_id" and "revision". zap.SugaredLogger satisfies the interface, and
// internal/logging adapts log/slog to it.
type Logger interface {
	// Debug logs store misses and other detail useful when tracing a run.
	Debug(msg string, keysAndValues ...any)

	// Info logs saved operations and informational notices.
	Info(msg string, keysAndValues ...any)

	// Warn logs rejected operations, revision conflicts and warning notices.
	Warn(msg string, keysAndValues ...any)

	// Error logs store failures and failing hooks.
	Error(msg string, keysAndValues ...any)

	// Fatal logs the message and exits the process. The Service never calls it.
	Fatal(msg string, keysAndValues ...any)
}
