// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the process-wide zap logger for envprobe.
// Log output always goes to stderr so that stdout carries only report lines.
package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Debug logs a message at debug level using the singleton logger.
func Debug(msg string) {
	zap.S().Debug(msg)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = zap.L().Sync()
}

type options struct {
	structured bool
	debug      bool
}

// Option configures Initialize.
type Option func(*options)

// WithStructured selects JSON output instead of the console encoder.
func WithStructured(structured bool) Option {
	return func(o *options) {
		o.structured = structured
	}
}

// WithDebug lowers the log level to debug.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// Initialize builds the logger described by opts and installs it as the zap global.
// With no options it writes unstructured, info level logs.
func Initialize(opts ...Option) {
	zap.ReplaceGlobals(zap.Must(buildConfig(opts...).Build()))
}

func buildConfig(opts ...Option) zap.Config {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var config zap.Config
	if o.structured {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.DisableStacktrace = true
		config.DisableCaller = true
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	if o.debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config
}
