package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// TestNew tests the New function.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{
			name:  "with debug level",
			level: zapcore.DebugLevel,
		},
		{
			name:  "with error level",
			level: zapcore.ErrorLevel,
		},
		{
			name:  "with nil level",
			level: nil,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := New(tt.level)
			assert.NotNil(t, logger)
		})
	}
}

// TestParseLogLevel tests the ParseLogLevel function.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{
			name:     "debug level",
			input:    "debug",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "info level",
			input:    "info",
			expected: zapcore.InfoLevel,
			valid:    true,
		},
		{
			name:     "warn level",
			input:    "warn",
			expected: zapcore.WarnLevel,
			valid:    true,
		},
		{
			name:     "warning alias",
			input:    "warning",
			expected: zapcore.WarnLevel,
			valid:    true,
		},
		{
			name:     "error level",
			input:    "error",
			expected: zapcore.ErrorLevel,
			valid:    true,
		},
		{
			name:     "fatal level",
			input:    "fatal",
			expected: zapcore.FatalLevel,
			valid:    true,
		},
		{
			name:     "uppercase debug",
			input:    "DEBUG",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "with spaces",
			input:    " debug ",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "invalid level",
			input:    "loud",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

// TestSetLogger tests the SetLogger function.
func TestSetLogger(t *testing.T) {
	// Don't run in parallel to avoid race conditions with global logger state.
	originalLogger := Logger()
	defer SetLogger(originalLogger) // Restore original logger

	newLogger := New(zapcore.DebugLevel)
	SetLogger(newLogger)

	assert.Equal(t, newLogger, Logger())

	// A nil logger must be ignored.
	SetLogger(nil)
	assert.Equal(t, newLogger, Logger())
}

// TestSetLevel tests the SetLevel and IsDebugLevel functions.
func TestSetLevel(t *testing.T) {
	// Don't run in parallel to avoid race conditions with global logger state.
	originalLevel := Level()
	defer SetLevel(originalLevel) // Restore original level

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, IsDebugLevel())
}

// TestFromContext tests logger propagation through contexts.
func TestFromContext(t *testing.T) {
	t.Parallel()

	scoped := New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), scoped)

	assert.Equal(t, scoped, FromContext(ctx))

	// Without a logger in the context, the global one is returned.
	assert.Equal(t, Logger(), FromContext(context.Background()))

	// A nil context falls back to the global logger as well.
	assert.Equal(t, Logger(), FromContext(nil)) //nolint:staticcheck // Exercising the nil-context fallback.
}

// TestContextLoggingFunctions tests all the context-based logging functions.
func TestContextLoggingFunctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// Test Debug functions.
	Debug(ctx, "test debug message")
	Debugf(ctx, "test debug message: %s", "formatted")
	DebugKV(ctx, "test debug message", "key", "value")

	// Test Info functions.
	Info(ctx, "test info message")
	Infof(ctx, "test info message: %s", "formatted")
	InfoKV(ctx, "test info message", "key", "value")

	// Test Warn functions.
	Warn(ctx, "test warn message")
	Warnf(ctx, "test warn message: %s", "formatted")
	WarnKV(ctx, "test warn message", "key", "value")

	// Test Error functions.
	Error(ctx, "test error message")
	Errorf(ctx, "test error message: %s", "formatted")
	ErrorKV(ctx, "test error message", "key", "value")

	// Fatal and Panic families cannot be exercised here
	// without terminating the test binary.
}

// TestLoggerThreadSafety tests basic thread safety of logger operations.
func TestLoggerThreadSafety(_ *testing.T) {
	// Don't run in parallel to avoid race conditions with global logger state.
	ctx := context.Background()

	// Test concurrent logging operations.
	done := make(chan bool, 10)

	for i := 0; i < 10; i++ {
		go func(_ int) {
			Info(ctx, "concurrent message")

			done <- true
		}(i)
	}

	// Wait for all goroutines to complete.
	for i := 0; i < 10; i++ {
		<-done
	}
}
