package docxedit

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogOff
)

var logLevels = map[string]LogLevel{
	"debug": LogDebug,
	"info":  LogInfo,
	"warn":  LogWarn,
	"error": LogError,
	"off":   LogOff,
}

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	case LogOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	case LogOff:
		// above every level zap emits
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}

func parseLogLevel(levelStr string) LogLevel {
	if level, ok := logLevels[levelStr]; ok {
		return level
	}
	return LogInfo
}

type Fields map[string]interface{}

// Logger is a levelled logger backed by zap. Loggers derived with WithField
// share the level of their parent.
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

var (
	globalLogger     *Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	atom := zap.NewAtomicLevelAt(level.zapLevel())

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.CallerKey = zapcore.OmitKey

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), atom)
	return &Logger{
		sugar: zap.New(core).Sugar(),
		level: atom,
	}
}

// NewZapLogger wraps an existing zap logger. Its level cannot be changed
// through SetLevel.
func NewZapLogger(zl *zap.Logger) *Logger {
	return &Logger{
		sugar: zl.Sugar(),
		level: zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

func (l *Logger) IsDebugMode() bool {
	return l.level.Level() == zapcore.DebugLevel
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(key, value), level: l.level}
}

func (l *Logger) WithFields(fields Fields) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{sugar: l.sugar.With(args...), level: l.level}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered output
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Global logging functions
func SetLogger(logger *Logger) {
	if logger == nil {
		logger = NewLogger(io.Discard, LogOff)
	}
	globalLoggerOnce.Do(func() {})
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()
}

func GetLogger() *Logger {
	globalLoggerOnce.Do(func() {
		level := parseLogLevel(GetGlobalConfig().LogLevel)
		globalLoggerMu.Lock()
		if globalLogger == nil {
			globalLogger = NewLogger(os.Stderr, level)
		}
		globalLoggerMu.Unlock()
	})
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}
