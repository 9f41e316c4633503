package oteladapters_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrhist/attribute-tracking-go/tracking"
	"github.com/attrhist/attribute-tracking-go/tracking/oteladapters"
)

func Test_SlogLogger_WithHandler_WritesAllLevels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := oteladapters.NewSlogLoggerWithHandler(handler)

	logger.Debug("change recorded", "attr", "items")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "change recorded")
	assert.Contains(t, output, "attr=items")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func Test_SlogLogger_WorksAsTrackingLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	obj, err := tracking.New(tracking.WithLogger(oteladapters.NewSlogLoggerWithHandler(handler)))
	require.NoError(t, err)

	obj.Set("number", 1)

	assert.Contains(t, buf.String(), "change recorded")
}

func Test_NewSlogBridgeLogger_CreatesLogger(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("tracking-test")
	assert.NotNil(t, logger)
}
