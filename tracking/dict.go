package tracking

import (
	"iter"
	"slices"
)

// Dict is a transparent stand-in for a mapping-valued tracked attribute.
//
// It is bound at creation to its owning instance and attribute name.
// Non-mutating operations behave exactly like the unwrapped map[string]any
// would; every mutating operation performs the mutation and then appends
// exactly one ChangeRecord for the owning attribute, with the whole
// pre-mutation value as From and the whole post-mutation value as To.
// A mutating operation that fails records nothing.
//
// Dict(s) are created by the instrumentation when a map[string]any is
// assigned to a tracked attribute; they are not constructed directly.
type Dict struct {
	owner   *Tracked
	attr    AttributeNameString
	entries map[string]any
}

/***** non-mutating operations *****/

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.entries)
}

// Get returns the value stored under key. Nested sequence/mapping values come
// back as proxies bound to the same attribute, so mutating them records too.
func (d *Dict) Get(key string) (any, bool) {
	value, ok := d.entries[key]
	return value, ok
}

// Contains reports whether key is present.
func (d *Dict) Contains(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Keys returns the keys in sorted order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Items returns an independent copy of the contents with all proxies unwrapped.
func (d *Dict) Items() map[string]any {
	return snapshotMap(d.entries)
}

// All iterates over key/value pairs in sorted key order.
func (d *Dict) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range d.Keys() {
			if !yield(key, d.entries[key]) {
				return
			}
		}
	}
}

// Equal compares the contents by value against another *Dict or plain map[string]any.
func (d *Dict) Equal(other any) bool {
	switch o := other.(type) {
	case *Dict:
		return valuesEqual(d, o)
	case map[string]any:
		return valuesEqual(d, o)
	default:
		return false
	}
}

/***** mutating operations *****/

// Set stores value under key, inserting or replacing.
func (d *Dict) Set(key string, value any) {
	from, started := d.owner.beforeMutation(d.attr)
	d.entries[key] = d.owner.wrap(d.attr, value)
	d.owner.commit(d.attr, from, started)
}

// Delete removes the entry stored under key.
func (d *Dict) Delete(key string) error {
	if _, ok := d.entries[key]; !ok {
		return ErrKeyNotFound
	}

	from, started := d.owner.beforeMutation(d.attr)
	delete(d.entries, key)
	d.owner.commit(d.attr, from, started)

	return nil
}

// Update stores all entries of values, inserting or replacing.
// It produces a single ChangeRecord regardless of how many entries are touched.
func (d *Dict) Update(values map[string]any) {
	from, started := d.owner.beforeMutation(d.attr)

	for key, value := range values {
		d.entries[key] = d.owner.wrap(d.attr, value)
	}

	d.owner.commit(d.attr, from, started)
}

// SetDefault returns the value stored under key, storing and returning
// fallback first if the key is missing. A record is only produced when the
// store actually happens.
func (d *Dict) SetDefault(key string, fallback any) any {
	if value, ok := d.entries[key]; ok {
		return value
	}

	from, started := d.owner.beforeMutation(d.attr)
	d.entries[key] = d.owner.wrap(d.attr, fallback)
	d.owner.commit(d.attr, from, started)

	return d.entries[key]
}

// Pop removes the entry stored under key and returns its value.
func (d *Dict) Pop(key string) (any, error) {
	value, ok := d.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	from, started := d.owner.beforeMutation(d.attr)
	delete(d.entries, key)
	d.owner.commit(d.attr, from, started)

	return value, nil
}

// PopOrDefault removes the entry stored under key and returns its value, or
// returns fallback without mutating (and without recording) if key is missing.
func (d *Dict) PopOrDefault(key string, fallback any) any {
	value, err := d.Pop(key)
	if err != nil {
		return fallback
	}

	return value
}

// Clear removes all entries.
func (d *Dict) Clear() {
	from, started := d.owner.beforeMutation(d.attr)

	for key := range d.entries {
		delete(d.entries, key)
	}

	d.owner.commit(d.attr, from, started)
}
