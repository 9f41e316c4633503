// Package oteladapters provides OpenTelemetry adapters for the tracking observability interfaces.
// These adapters enable seamless integration with OpenTelemetry for users who want
// plug-and-play observability without implementing the interfaces themselves.
package oteladapters

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

// SlogLogger implements tracking.Logger on top of Go's standard log/slog package.
// Created through NewSlogBridgeLogger it routes records through the OpenTelemetry
// slog bridge, so change recording logs end up in the configured OTLP pipeline.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger using the OpenTelemetry slog bridge.
// The logger uses the global OpenTelemetry LoggerProvider.
func NewSlogBridgeLogger(name string) *SlogLogger {
	return &SlogLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogLoggerWithHandler creates a logger using the provided slog.Handler as-is,
// without OpenTelemetry integration. This function is provided for compatibility
// when you need to use a specific slog.Handler.
func NewSlogLoggerWithHandler(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Ensure SlogLogger implements tracking.Logger.
var _ tracking.Logger = (*SlogLogger)(nil)
