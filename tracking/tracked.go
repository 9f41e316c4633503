package tracking

import (
	"strings"
	"time"
)

const (
	logMsgChangeRecorded       = "change recorded"
	logMsgBuildRecordFailed    = "failed to build change record for attribute write"
	logAttrAttribute           = "attr"
	logAttrInstanceID          = "instance_id"
	logAttrDurationMS          = "duration_ms"
	logAttrError               = "error"
	labelAttribute             = "attr"
	metricChangesRecorded      = "tracking.changes_recorded"
	metricRecordCommitDuration = "tracking.record_commit_duration"
)

// Tracked gives an embedding object automatic, chronological tracking of
// changes to its attributes. Every write through Set is intercepted: the old
// value is snapshotted, the new value is stored (container values are wrapped
// into recording proxies first), and one ChangeRecord is appended to the
// instance's private history.
//
// Each instance created with New owns an independent History; instrumenting
// two objects never shares state between them. Tracked makes no thread-safety
// guarantees: a single instance must not be mutated concurrently.
//
// It should only be constructed with the factory method New.
type Tracked struct {
	history          *History
	fields           map[AttributeNameString]any
	trackPrivate     bool
	isPrivate        func(name AttributeNameString) bool
	logger           Logger
	metricsCollector MetricsCollector
}

// New is a factory method for Tracked, configurable with functional options.
// Calling it without options yields the default behavior: private attributes
// (leading underscore) untracked, no logging, no metricsCollector.
func New(opts ...Option) (*Tracked, error) {
	t := &Tracked{
		history:   newHistory(),
		fields:    make(map[AttributeNameString]any),
		isPrivate: defaultPrivatePredicate,
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func defaultPrivatePredicate(name AttributeNameString) bool {
	return strings.HasPrefix(name, "_")
}

// Set writes an attribute value through the recording choke point.
//
// For tracked attributes it snapshots the current value (Absent on the first
// write), stores the new value, and appends one ChangeRecord. Sequence values
// ([]any) and mapping values (map[string]any) are wrapped into List / Dict
// proxies bound to this instance and attribute before being stored, so later
// in-place mutation is observable too. Writes of a value equal to the current
// one still record; nil is a normal value.
//
// Attributes matching the private-name predicate bypass recording entirely
// unless WithTrackPrivate(true) was configured.
func (t *Tracked) Set(name AttributeNameString, value any) {
	if t.isPrivate(name) && !t.trackPrivate {
		t.fields[name] = value
		return
	}

	started := time.Now()

	from := any(Absent)
	if current, ok := t.fields[name]; ok {
		from = snapshotValue(current)
	}

	t.fields[name] = t.wrap(name, value)
	t.commit(name, from, started)
}

// Get reads an attribute value. Container-valued attributes come back as
// their recording proxy (*List or *Dict). The second return value reports
// whether the attribute was ever assigned.
func (t *Tracked) Get(name AttributeNameString) (any, bool) {
	value, ok := t.fields[name]
	return value, ok
}

// Has reports whether the attribute was ever assigned.
func (t *Tracked) Has(name AttributeNameString) bool {
	_, ok := t.fields[name]
	return ok
}

// History exposes the instance's change history store.
func (t *Tracked) History() *History {
	return t.history
}

// GetChangeHistory retrieves recorded changes, see History.GetChangeHistory.
func (t *Tracked) GetChangeHistory(opts ...QueryOption) (HistoryView, error) {
	return t.history.GetChangeHistory(opts...)
}

// QueryHistory returns the chronological subsequence of records matching the
// given filter, see History.Query.
func (t *Tracked) QueryHistory(filter Filter) ChangeRecords {
	return t.history.Query(filter)
}

// wrap prepares a value for storage under the given attribute. Sequences and
// mappings become proxies bound to (t, attr); their nested sequence/mapping
// elements are wrapped recursively to the same binding, so mutation through
// the navigation path records against the top-level attribute. A proxy
// already bound elsewhere is re-wrapped from a snapshot of its contents.
func (t *Tracked) wrap(attr AttributeNameString, value any) any {
	switch v := value.(type) {
	case *List:
		return t.wrap(attr, v.Values())
	case *Dict:
		return t.wrap(attr, v.Items())
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = t.wrap(attr, item)
		}

		return &List{owner: t, attr: attr, items: items}
	case map[string]any:
		entries := make(map[string]any, len(v))
		for key, entry := range v {
			entries[key] = t.wrap(attr, entry)
		}

		return &Dict{owner: t, attr: attr, entries: entries}
	default:
		return value
	}
}

// beforeMutation snapshots the whole current value of an attribute as the
// candidate From of a container mutation about to happen.
func (t *Tracked) beforeMutation(attr AttributeNameString) (from any, started time.Time) {
	return snapshotValue(t.fields[attr]), time.Now()
}

// commit snapshots the stored attribute value as To and appends one record.
func (t *Tracked) commit(attr AttributeNameString, from any, started time.Time) {
	to := snapshotValue(t.fields[attr])

	record, err := BuildChangeRecord(time.Now(), attr, from, to)
	if err != nil {
		if t.logger != nil {
			t.logger.Warn(logMsgBuildRecordFailed, logAttrAttribute, attr, logAttrError, err.Error())
		}

		return
	}

	t.history.append(record)

	duration := time.Since(started)

	if t.logger != nil {
		t.logger.Debug(
			logMsgChangeRecorded,
			logAttrAttribute, attr,
			logAttrInstanceID, t.history.InstanceID().String(),
			logAttrDurationMS, duration.Milliseconds(),
		)
	}

	if t.metricsCollector != nil {
		labels := map[string]string{labelAttribute: attr}
		t.metricsCollector.IncrementCounter(metricChangesRecorded, labels)
		t.metricsCollector.RecordDuration(metricRecordCommitDuration, duration, labels)
	}
}
