package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		name          string
		expectedLevel zapcore.Level
	}{
		{
			name:          "Info",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Debug",
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "Warn",
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "Error",
			expectedLevel: zapcore.ErrorLevel,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			observerLogger, logs := observer.New(zap.DebugLevel)
			dut := ZapLogger{zap.New(observerLogger)}
			const testMessage = "ABC"
			switch tc.name {
			case "Info":
				dut.Info(testMessage)
			case "Debug":
				dut.Debug(testMessage)
			case "Warn":
				dut.Warn(testMessage)
			case "Error":
				dut.Error(testMessage)
			}
			require.Equal(t, 1, logs.Len())

			entry := logs.All()[0]
			require.Equal(t, testMessage, entry.Message)
			require.Empty(t, entry.ContextMap())
			require.Equal(t, tc.expectedLevel, entry.Level)
		})
	}
}

func TestWith(t *testing.T) {
	observerLogger, logs := observer.New(zap.DebugLevel)
	dut := ZapLogger{zap.New(observerLogger)}
	dut.With(zap.String("container", "stack"))
	dut.Debug("resize", zap.Int("capacity", 8))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, map[string]interface{}{
		"container": "stack",
		"capacity":  int64(8),
	}, logs.All()[0].ContextMap())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		for _, level := range []string{"debug", "info", "warn", "error", "none"} {
			l, err := NewLogger(format, level)
			require.NoError(t, err, "%s/%s", format, level)
			require.NotNil(t, l)
		}
	}

	_, err := NewLogger("text", "loud")
	require.ErrorContains(t, err, "unknown log level")

	_, err = NewLogger("yaml", "info")
	require.ErrorContains(t, err, "unknown log format")
}
