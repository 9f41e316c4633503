package tracking

import (
	"iter"
)

// IntIndexer resolves a custom object to a list index.
// PopAt accepts any value implementing it in place of a plain integer.
type IntIndexer interface {
	AsIntIndex() int
}

// List is a transparent stand-in for a sequence-valued tracked attribute.
//
// It is bound at creation to its owning instance and attribute name.
// Non-mutating operations behave exactly like the unwrapped []any would;
// every mutating operation performs the mutation and then appends exactly one
// ChangeRecord for the owning attribute, with the whole pre-mutation value as
// From and the whole post-mutation value as To. A mutating operation that
// fails records nothing.
//
// List(s) are created by the instrumentation when a []any is assigned to a
// tracked attribute; they are not constructed directly.
type List struct {
	owner *Tracked
	attr  AttributeNameString
	items []any
}

/***** non-mutating operations *****/

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// Get returns the element at index. Nested sequence/mapping elements come
// back as proxies bound to the same attribute, so mutating them records too.
func (l *List) Get(index int) (any, error) {
	if index < 0 || index >= len(l.items) {
		return nil, ErrIndexOutOfRange
	}

	return l.items[index], nil
}

// Values returns an independent copy of the contents with all proxies unwrapped.
func (l *List) Values() []any {
	return snapshotSlice(l.items)
}

// All iterates over index/element pairs in order.
func (l *List) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Contains reports whether an element equal (by value) to value is present.
func (l *List) Contains(value any) bool {
	_, err := l.Index(value)
	return err == nil
}

// Index returns the position of the first element equal (by value) to value.
func (l *List) Index(value any) (int, error) {
	for i, item := range l.items {
		if valuesEqual(item, value) {
			return i, nil
		}
	}

	return 0, ErrValueNotFound
}

// Equal compares the contents by value against another *List or plain []any.
func (l *List) Equal(other any) bool {
	switch o := other.(type) {
	case *List:
		return valuesEqual(l, o)
	case []any:
		return valuesEqual(l, o)
	default:
		return false
	}
}

/***** mutating operations *****/

// Set replaces the element at index.
func (l *List) Set(index int, value any) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}

	from, started := l.owner.beforeMutation(l.attr)
	l.items[index] = l.owner.wrap(l.attr, value)
	l.owner.commit(l.attr, from, started)

	return nil
}

// Delete removes the element at index.
func (l *List) Delete(index int) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}

	from, started := l.owner.beforeMutation(l.attr)
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.owner.commit(l.attr, from, started)

	return nil
}

// Append adds one or multiple elements to the end.
// It produces a single ChangeRecord regardless of how many elements are added.
func (l *List) Append(values ...any) {
	from, started := l.owner.beforeMutation(l.attr)

	for _, value := range values {
		l.items = append(l.items, l.owner.wrap(l.attr, value))
	}

	l.owner.commit(l.attr, from, started)
}

// Insert places a new element at index, shifting the rest right.
// Index may equal Len, which appends.
func (l *List) Insert(index int, value any) error {
	if index < 0 || index > len(l.items) {
		return ErrIndexOutOfRange
	}

	from, started := l.owner.beforeMutation(l.attr)

	l.items = append(l.items, nil)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = l.owner.wrap(l.attr, value)

	l.owner.commit(l.attr, from, started)

	return nil
}

// Extend appends all elements of values, producing a single ChangeRecord.
func (l *List) Extend(values []any) {
	l.Append(values...)
}

// Pop removes and returns the last element.
func (l *List) Pop() (any, error) {
	if len(l.items) == 0 {
		return nil, ErrPopFromEmptyList
	}

	return l.popAt(len(l.items) - 1)
}

// PopAt removes and returns the element at the given index. The index may be
// any integer kind or a value implementing IntIndexer. The popped element is
// returned exactly as the unwrapped operation would return it.
func (l *List) PopAt(index any) (any, error) {
	resolved, err := resolveIndex(index)
	if err != nil {
		return nil, err
	}

	if resolved < 0 || resolved >= len(l.items) {
		return nil, ErrIndexOutOfRange
	}

	return l.popAt(resolved)
}

func (l *List) popAt(index int) (any, error) {
	from, started := l.owner.beforeMutation(l.attr)

	popped := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)

	l.owner.commit(l.attr, from, started)

	return popped, nil
}

// Remove deletes the first element equal (by value) to value.
func (l *List) Remove(value any) error {
	index, err := l.Index(value)
	if err != nil {
		return err
	}

	from, started := l.owner.beforeMutation(l.attr)
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.owner.commit(l.attr, from, started)

	return nil
}

// Clear removes all elements.
func (l *List) Clear() {
	from, started := l.owner.beforeMutation(l.attr)
	l.items = l.items[:0]
	l.owner.commit(l.attr, from, started)
}

func resolveIndex(index any) (int, error) {
	switch i := index.(type) {
	case int:
		return i, nil
	case int8:
		return int(i), nil
	case int16:
		return int(i), nil
	case int32:
		return int(i), nil
	case int64:
		return int(i), nil
	case uint:
		return int(i), nil
	case uint8:
		return int(i), nil
	case uint16:
		return int(i), nil
	case uint32:
		return int(i), nil
	case uint64:
		return int(i), nil
	case IntIndexer:
		return i.AsIntIndex(), nil
	default:
		return 0, ErrInvalidIndexType
	}
}
