// Package testdoubles provides test doubles (spies) for observability interfaces.
//
// This package contains spy implementations for the observability interfaces
// used by the tracking package:
//   - LoggerSpy: captures logging calls for verification
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//
// These test doubles enable testing of the change recording instrumentation
// without requiring actual telemetry backends.
package testdoubles
