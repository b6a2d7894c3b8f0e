package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/rota/types"
)

// Entry is one record captured by TestLogger.
type Entry struct {
	Level   string
	Message string
	Fields  string
}

// TestLogger implements types.Logger using testing.TB for output and keeps
// every record so tests can assert on what was logged.
type TestLogger struct {
	t tb

	mu      sync.Mutex
	entries []Entry
}

// tb is the subset of testing.TB used by TestLogger.
type tb interface {
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a new test logger that writes to t.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    log := logger.NewTest(t)
//	    svc, _ := rota.NewService(&cfg, store, rota.WithLogger(log))
//	    ...
//	    require.True(t, log.Has("WARN", "assignment notice"))
//	}
func NewTest(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.log("DEBUG", msg, keysAndValues)
}

// Info logs an info-level message with optional key-value pairs.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.log("INFO", msg, keysAndValues)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.log("WARN", msg, keysAndValues)
}

// Error logs an error-level message with optional key-value pairs.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.log("ERROR", msg, keysAndValues)
}

// Fatal logs a fatal-level message and fails the test.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg, keysAndValues)
	l.t.Fatalf("FATAL: %s %s", msg, formatKeyValues(keysAndValues))
}

// Entries returns a copy of the captured records.
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), l.entries...)
}

// Has reports whether a record with the given level and message was logged.
func (l *TestLogger) Has(level, msg string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}

	return false
}

func (l *TestLogger) log(level, msg string, keysAndValues []any) {
	fields := l.record(level, msg, keysAndValues)
	l.t.Logf("%s: %s %s", level, msg, fields)
}

func (l *TestLogger) record(level, msg string, keysAndValues []any) string {
	fields := formatKeyValues(keysAndValues)

	l.mu.Lock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg, Fields: fields})
	l.mu.Unlock()

	return fields
}

// formatKeyValues formats key-value pairs for logging.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, "%v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}
