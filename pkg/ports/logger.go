// Package ports defines the Logger interface for logging abstraction.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for component internals, such as the capture
	// loop's per-recording progress.
	LevelDebug LogLevel = iota
	// LevelInfo is for operation-level progress: recording started,
	// frames captured, artifact written.
	LevelInfo
	// LevelWarn is for recoverable problems that don't stop the
	// current operation.
	LevelWarn
	// LevelError is for problems that abort the current operation.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger abstracts logging with multi-language support. The msg
// parameter is a translatable message key with optional format
// arguments.
type Logger interface {
	// Debug logs component internals.
	Debug(msg string, args ...interface{})

	// Info logs operation-level progress.
	Info(msg string, args ...interface{})

	// Warn logs recoverable problems.
	Warn(msg string, args ...interface{})

	// Error logs problems that abort the current operation.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the
	// component name, e.g. the capture loop's "record".
	WithComponent(component string) Logger
}
