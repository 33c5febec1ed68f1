package logging

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(LevelInfo))
}

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values mean info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel sets the process-wide threshold below which lines are dropped.
func SetLevel(name string) {
	minLevel.Store(int32(ParseLevel(name)))
}

func Enabled(level Level) bool {
	return int32(level) >= minLevel.Load()
}

type requestIDKey struct{}

// WithRequestID stores the request ID for loggers built from ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for services
type Logger struct {
	requestID string
}

// New creates a logger with request context
func New(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID}
}

func (l *Logger) printf(level Level, operation, format string, args ...interface{}) {
	if !Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("[%s] request_id=%s operation=%s %s", level, l.requestID, operation, msg)
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.printf(LevelError, operation, "error=%v", err)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation string, message string) {
	l.printf(LevelInfo, operation, "message=%s", message)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.printf(LevelInfo, operation, format, args...)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation string, message string) {
	l.printf(LevelWarn, operation, "message=%s", message)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.printf(LevelWarn, operation, format, args...)
}

// LogDebugf logs a formatted debug message with context
func (l *Logger) LogDebugf(operation string, format string, args ...interface{}) {
	l.printf(LevelDebug, operation, format, args...)
}
