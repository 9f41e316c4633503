package testdoubles

import (
	"sync"
)

// LoggerSpy is a Logger implementation that captures logging calls for testing.
// It implements the same interface as the tracking package's Logger, making it
// suitable for testing the change recording instrumentation.
type LoggerSpy struct {
	debugRecords []SpyLogRecord
	infoRecords  []SpyLogRecord
	warnRecords  []SpyLogRecord
	errorRecords []SpyLogRecord
	mu           sync.Mutex
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *LoggerSpy) record(level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
	}

	switch level {
	case "debug":
		s.debugRecords = append(s.debugRecords, entry)
	case "info":
		s.infoRecords = append(s.infoRecords, entry)
	case "warn":
		s.warnRecords = append(s.warnRecords, entry)
	case "error":
		s.errorRecords = append(s.errorRecords, entry)
	}
}

// Reset clears all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugRecords = s.debugRecords[:0]
	s.infoRecords = s.infoRecords[:0]
	s.warnRecords = s.warnRecords[:0]
	s.errorRecords = s.errorRecords[:0]
}

// GetDebugRecords returns a copy of all debug log records.
func (s *LoggerSpy) GetDebugRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.debugRecords...)
}

// GetInfoRecords returns a copy of all info log records.
func (s *LoggerSpy) GetInfoRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.infoRecords...)
}

// GetWarnRecords returns a copy of all warn log records.
func (s *LoggerSpy) GetWarnRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.warnRecords...)
}

// GetErrorRecords returns a copy of all error log records.
func (s *LoggerSpy) GetErrorRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.errorRecords...)
}
