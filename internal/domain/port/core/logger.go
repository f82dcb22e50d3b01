package core

// LogLevel is the minimum severity a Logger writes
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevelNames = [...]string{"debug", "info", "warn", "error"}

// String returns the lower-case level name used in configuration
func (l LogLevel) String() string {
	if l < LogLevelDebug || l > LogLevelError {
		return "unknown"
	}
	return logLevelNames[l]
}

// Fields carries structured key/value pairs attached to a log entry
type Fields = map[string]any

// Logger defines logging operations
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Warn(message string, fields Fields)
	Error(message string, fields Fields)
	// Flush writes any buffered entries
	Flush() error
}
