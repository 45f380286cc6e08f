package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	defer SetTestLoggerNop()

	Info("Reading saved", "telegram_id", int64(42), "sys", 120)
	Debug("dropped below level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Reading saved", entry["msg"])
	assert.Equal(t, float64(42), entry["telegram_id"])
	assert.Equal(t, float64(120), entry["sys"])
	assert.NotContains(t, buf.String(), "dropped below level")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.DebugLevel)
	defer SetTestLoggerNop()

	WithFields("component", "scheduler").Warn("sweep slow")

	assert.Contains(t, buf.String(), `"component":"scheduler"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestInitWithConfigFile(t *testing.T) {
	defer SetTestLoggerNop()

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	err := InitWithConfig(Config{Level: LevelDebug, OutputPath: path, Format: "json"})
	require.NoError(t, err)

	Info("written to file")
	assert.NoError(t, Close())
	assert.FileExists(t, path)
}

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, toZapLevel(LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, toZapLevel(LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, toZapLevel(LevelError))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(LogLevel(42)))
}
