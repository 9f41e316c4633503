package oteladapters

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

// MetricsCollector implements tracking.MetricsCollector using the OpenTelemetry metrics API.
// It automatically maps the tracking metrics interface to OpenTelemetry instruments:
//   - RecordDuration -> Histogram (for measuring record commit durations)
//   - IncrementCounter -> Counter (for counting recorded changes)
//   - RecordValue -> Gauge (for current values like history sizes)
type MetricsCollector struct {
	meter      metric.Meter
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

// NewMetricsCollector creates a new OpenTelemetry metrics collector.
// It uses the provided meter to create instruments on-demand as metrics are recorded.
// The meter should be created from your OpenTelemetry MeterProvider.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

// RecordDuration records a duration measurement using an OpenTelemetry histogram.
// Durations are recorded in seconds, following the OpenTelemetry convention.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	histogram := m.getOrCreateHistogram(metricName)
	if histogram == nil {
		return
	}

	histogram.Record(context.TODO(), duration.Seconds(), metric.WithAttributes(labelsToAttributes(labels)...))
}

// IncrementCounter increments a counter using an OpenTelemetry counter.
// Counters are monotonically increasing and ideal for counting recorded
// changes and other event occurrences.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	counter := m.getOrCreateCounter(metricName)
	if counter == nil {
		return
	}

	counter.Add(context.TODO(), 1, metric.WithAttributes(labelsToAttributes(labels)...))
}

// RecordValue records a current value using an OpenTelemetry gauge.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	gauge := m.getOrCreateGauge(metricName)
	if gauge == nil {
		return
	}

	gauge.Record(context.TODO(), value, metric.WithAttributes(labelsToAttributes(labels)...))
}

func (m *MetricsCollector) getOrCreateHistogram(metricName string) metric.Float64Histogram {
	if histogram, ok := m.histograms[metricName]; ok {
		return histogram
	}

	histogram, err := m.meter.Float64Histogram(metricName, metric.WithUnit("s"))
	if err != nil {
		return nil
	}

	m.histograms[metricName] = histogram

	return histogram
}

func (m *MetricsCollector) getOrCreateCounter(metricName string) metric.Int64Counter {
	if counter, ok := m.counters[metricName]; ok {
		return counter
	}

	counter, err := m.meter.Int64Counter(metricName)
	if err != nil {
		return nil
	}

	m.counters[metricName] = counter

	return counter
}

func (m *MetricsCollector) getOrCreateGauge(metricName string) metric.Float64Gauge {
	if gauge, ok := m.gauges[metricName]; ok {
		return gauge
	}

	gauge, err := m.meter.Float64Gauge(metricName)
	if err != nil {
		return nil
	}

	m.gauges[metricName] = gauge

	return gauge
}

func labelsToAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

// Ensure MetricsCollector implements tracking.MetricsCollector.
var _ tracking.MetricsCollector = (*MetricsCollector)(nil)
