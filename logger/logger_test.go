// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []Option
		wantEncoding string
		wantLevel    zapcore.Level
	}{
		{"defaults", nil, "console", zapcore.InfoLevel},
		{"structured", []Option{WithStructured(true)}, "json", zapcore.InfoLevel},
		{"debug", []Option{WithDebug(true)}, "console", zapcore.DebugLevel},
		{"structured debug", []Option{WithStructured(true), WithDebug(true)}, "json", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			config := buildConfig(tt.opts...)
			assert.Equal(t, tt.wantEncoding, config.Encoding)
			assert.Equal(t, tt.wantLevel, config.Level.Level())
			// stdout is reserved for report lines
			assert.Equal(t, []string{"stderr"}, config.OutputPaths)
			assert.Equal(t, []string{"stderr"}, config.ErrorOutputPaths)
		})
	}
}

func TestHelpers(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, observedLogs := observer.New(zapcore.DebugLevel)
	zap.ReplaceGlobals(zap.New(core))

	Debug("debug message")
	Debugw("debug with fields", "key", "value")
	Info("info message")
	Infow("info with fields", "key", "value")
	Warnw("warn with fields", "key", "value")
	Errorw("error with fields", "key", "value")

	entries := observedLogs.All()
	require.Len(t, entries, 6)

	wantLevels := []zapcore.Level{
		zapcore.DebugLevel, zapcore.DebugLevel,
		zapcore.InfoLevel, zapcore.InfoLevel,
		zapcore.WarnLevel, zapcore.ErrorLevel,
	}
	for i, entry := range entries {
		assert.Equal(t, wantLevels[i], entry.Level, "entry %d: %s", i, entry.Message)
	}
	assert.Equal(t, "value", entries[1].ContextMap()["key"])
}

func TestUnstructuredOutput(t *testing.T) { //nolint:paralleltest // Uses global logger state
	var buf bytes.Buffer

	config := buildConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config.EncoderConfig),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)
	zap.ReplaceGlobals(zap.New(core))

	Info("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INFO")
}

func TestInitialize(t *testing.T) { //nolint:paralleltest // Uses global logger state
	Initialize(WithDebug(true))
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	Initialize()
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))
}
