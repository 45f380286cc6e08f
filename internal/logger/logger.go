package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalLogger = zap.NewNop().Sugar()

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logger configuration
type Config struct {
	Level      LogLevel
	OutputPath string
	Format     string // "json" or "console"
}

// InitWithConfig initializes logger with custom config
func InitWithConfig(config Config) error {
	var output zapcore.WriteSyncer
	if config.OutputPath == "" || config.OutputPath == "stdout" {
		output = zapcore.Lock(os.Stdout)
	} else {
		if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0755); err != nil {
			return err
		}
		output = zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.OutputPath,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if config.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, output, toZapLevel(config.Level))
	globalLogger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()

	return nil
}

func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes buffered log entries
func Close() error {
	return globalLogger.Sync()
}

// WithFields returns a logger with additional fields
func WithFields(fields ...any) *zap.SugaredLogger {
	return globalLogger.With(fields...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	globalLogger.Debugw(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	globalLogger.Infow(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	globalLogger.Warnw(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	globalLogger.Errorw(msg, args...)
}

// Infof logs an info message with formatting
func Infof(format string, args ...any) {
	globalLogger.Info(fmt.Sprintf(format, args...))
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...any) {
	globalLogger.Errorw(msg, args...)
	_ = globalLogger.Sync()
	os.Exit(1)
}

// GetLogger returns the global logger instance
func GetLogger() *zap.SugaredLogger {
	return globalLogger
}

// SetTestCaptureLogger redirects JSON log output into buf.
func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(buf), level)
	globalLogger = zap.New(core).Sugar()
}

func SetTestLoggerNop() {
	globalLogger = zap.NewNop().Sugar()
}
