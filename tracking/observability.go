package tracking

import (
	"time"
)

// Logger interface for change recording logging, operational warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting change tracking performance and operational metrics.
// This interface follows a dependency-free pattern, allowing users to integrate with any metrics
// backend (OpenTelemetry, Prometheus, etc.) by implementing this interface.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}
