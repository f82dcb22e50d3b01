package logger

import (
	"io"
	"strings"

	"github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  core.LogLevel
}

// NewZapLogger creates a new zap-based logger instance, JSON-encoded or console-encoded
func NewZapLogger(jsonFormat bool) core.Logger {
	var cfg zap.Config

	if jsonFormat {
		// JSON for log shipping
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		atom:   cfg.Level,
		level:  core.LogLevelInfo,
	}
}

// NewWriterLogger creates a JSON logger writing to w, for the CLI and tests
func NewWriterLogger(w io.Writer, level core.LogLevel) core.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	atom := zap.NewAtomicLevelAt(toZapLevel(level))
	zc := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), atom)

	return &ZapLogger{
		logger: zap.New(zc),
		atom:   atom,
		level:  level,
	}
}

// NewDefaultLogger creates the console logger used when no format is configured
func NewDefaultLogger() core.Logger {
	return NewZapLogger(false)
}

// NewNoopLogger creates a logger that discards every entry but still tracks its level
func NewNoopLogger() core.Logger {
	atom := zap.NewAtomicLevelAt(zap.InfoLevel)
	return &ZapLogger{
		logger: zap.NewNop(),
		atom:   atom,
		level:  core.LogLevelInfo,
	}
}

// ParseLevel converts a configured level name to a LogLevel, defaulting to info
func ParseLevel(name string) core.LogLevel {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return core.LogLevelWarn
	}
	for l := core.LogLevelDebug; l <= core.LogLevelError; l++ {
		if l.String() == name {
			return l
		}
	}
	return core.LogLevelInfo
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelInfo:
		return zap.InfoLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
	l.atom.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields core.Fields) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields core.Fields) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields core.Fields) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields core.Fields) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields core.Fields) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
