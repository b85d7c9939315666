package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/footprint-tools/brig/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled lines through a zap core. Lines look like
//
//	[2006-01-02 15:04:05] WARN: message
type Logger struct {
	mu      sync.Mutex
	closer  io.Closer
	sugar   *zap.SugaredLogger
	enabled bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init installs the global logger writing to logPath. Later calls replace
// it and close the previous one.
func Init(logPath string, minLevel Level) error {
	logger, err := New(logPath, minLevel)
	if err != nil {
		return err
	}
	SetDefault(logger)
	return nil
}

// SetDefault replaces the global logger.
func SetDefault(logger *Logger) {
	defaultLoggerMu.Lock()
	previous := defaultLogger
	defaultLogger = logger
	defaultLoggerMu.Unlock()
	if previous != nil && previous != logger {
		_ = previous.Close()
	}
}

// New creates a logger appending to logPath with 0600 permissions.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := NewWriter(file, minLevel)
	logger.closer = file
	return logger, nil
}

// NewWriter creates a logger writing to w. Closing it does not close w.
func NewWriter(w io.Writer, minLevel Level) *Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(l.CapitalString() + ":")
		},
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), minLevel.zap())

	return &Logger{
		sugar:   zap.New(core).Sugar(),
		enabled: true,
	}
}

// Close flushes and closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sugar != nil {
		_ = l.sugar.Sync()
	}
	l.enabled = false
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || l.sugar == nil {
		return
	}

	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	switch level {
	case LevelDebug:
		l.sugar.Debug(message)
	case LevelInfo:
		l.sugar.Info(message)
	case LevelWarn:
		l.sugar.Warn(message)
	default:
		l.sugar.Error(message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", string(p))
	return len(p), nil
}

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug logs to the global logger.
func Debug(format string, args ...any) { current().Debug(format, args...) }

// Info logs to the global logger.
func Info(format string, args ...any) { current().Info(format, args...) }

// Warn logs to the global logger.
func Warn(format string, args ...any) { current().Warn(format, args...) }

// Error logs to the global logger.
func Error(format string, args ...any) { current().Error(format, args...) }

// Close closes the global logger.
func Close() error { return current().Close() }

// GetLogger returns the global logger, which may be nil.
func GetLogger() *Logger { return current() }

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
