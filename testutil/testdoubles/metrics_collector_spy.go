package testdoubles

import (
	"sync"
	"time"
)

// MetricsCollectorSpy is a MetricsCollector implementation that captures
// metrics recording calls for testing.
type MetricsCollectorSpy struct {
	durations []SpyDurationRecord
	counters  []SpyCounterRecord
	values    []SpyValueRecord
	mu        sync.Mutex
}

// SpyDurationRecord represents a recorded RecordDuration call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded IncrementCounter call.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents a recorded RecordValue call.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy instance.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

// RecordDuration implements the MetricsCollector interface for testing.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, SpyDurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   labels,
	})
}

// IncrementCounter implements the MetricsCollector interface for testing.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, SpyCounterRecord{
		Metric: metric,
		Labels: labels,
	})
}

// RecordValue implements the MetricsCollector interface for testing.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = append(s.values, SpyValueRecord{
		Metric: metric,
		Value:  value,
		Labels: labels,
	})
}

// Reset clears all recorded calls.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.durations = s.durations[:0]
	s.counters = s.counters[:0]
	s.values = s.values[:0]
}

// GetDurationRecords returns a copy of all RecordDuration calls.
func (s *MetricsCollectorSpy) GetDurationRecords() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyDurationRecord(nil), s.durations...)
}

// GetCounterRecords returns a copy of all IncrementCounter calls.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyCounterRecord(nil), s.counters...)
}

// GetValueRecords returns a copy of all RecordValue calls.
func (s *MetricsCollectorSpy) GetValueRecords() []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyValueRecord(nil), s.values...)
}
