package tracking

// Option defines a functional option for configuring a Tracked instance.
type Option func(*Tracked) error

// WithTrackPrivate controls whether attributes whose name matches the
// private-name predicate are tracked. Defaults to false: private attributes
// are stored plainly, generate no records, and are invisible to the query
// surface.
func WithTrackPrivate(trackPrivate bool) Option {
	return func(t *Tracked) error {
		t.trackPrivate = trackPrivate
		return nil
	}
}

// WithPrivatePredicate replaces the predicate deciding which attribute names
// count as private. The default predicate matches names with a leading
// underscore. The predicate is evaluated once per write, before any recording.
func WithPrivatePredicate(isPrivate func(name AttributeNameString) bool) Option {
	return func(t *Tracked) error {
		if isPrivate == nil {
			return ErrNilPrivatePredicate
		}

		t.isPrivate = isPrivate

		return nil
	}
}

// WithLogger sets the logger for the Tracked instance.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: every recorded change with attribute name and timing (development use)
// Warn level: writes that could not be recorded.
func WithLogger(logger Logger) Option {
	return func(t *Tracked) error {
		if logger == nil {
			return ErrNilLogger
		}

		t.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Tracked instance.
// The collector will receive operational metrics including recorded change
// counts and per-record commit durations.
func WithMetrics(collector MetricsCollector) Option {
	return func(t *Tracked) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		t.metricsCollector = collector

		return nil
	}
}
