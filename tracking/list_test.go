package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

// customIndex resolves to a fixed list index, standing in for index-like
// objects host code may use instead of plain integers.
type customIndex struct {
	index int
}

func (c customIndex) AsIntIndex() int {
	return c.index
}

func Test_List_ElementTracking(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3})

	items := listAttr(t, obj, "items")

	require.NoError(t, items.Set(0, 10))
	items.Append(4)

	popped, err := items.Pop()
	require.NoError(t, err)
	assert.Equal(t, 4, popped)

	records := attrRecords(t, obj, "items")
	require.Len(t, records, 4)

	assert.True(t, tracking.IsAbsent(records[0].From))
	assert.Equal(t, []any{1, 2, 3}, records[0].To)

	assert.Equal(t, []any{1, 2, 3}, records[1].From)
	assert.Equal(t, []any{10, 2, 3}, records[1].To)

	assert.Equal(t, []any{10, 2, 3}, records[2].From)
	assert.Equal(t, []any{10, 2, 3, 4}, records[2].To)

	assert.Equal(t, []any{10, 2, 3, 4}, records[3].From)
	assert.Equal(t, []any{10, 2, 3}, records[3].To)
}

func Test_List_PopVariants(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3, 4, 5})

	items := listAttr(t, obj, "items")

	popped, err := items.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5, popped)

	popped, err = items.PopAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, popped)

	popped, err = items.PopAt(customIndex{index: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, popped)

	records := attrRecords(t, obj, "items")
	require.Len(t, records, 4)

	assert.Equal(t, []any{1, 2, 3, 4, 5}, records[0].To)
	assert.Equal(t, []any{1, 2, 3, 4}, records[1].To)
	assert.Equal(t, []any{2, 3, 4}, records[2].To)
	assert.Equal(t, []any{3, 4}, records[3].To)
}

func Test_List_NonMutatingOperationsDoNotRecord(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3})

	items := listAttr(t, obj, "items")

	assert.Equal(t, 3, items.Len())

	element, err := items.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, element)

	assert.True(t, items.Contains(3))
	assert.False(t, items.Contains(42))

	index, err := items.Index(3)
	assert.NoError(t, err)
	assert.Equal(t, 2, index)

	assert.Equal(t, []any{1, 2, 3}, items.Values())
	assert.True(t, items.Equal([]any{1, 2, 3}))
	assert.False(t, items.Equal([]any{1, 2}))
	assert.False(t, items.Equal("not a list"))

	collected := make([]any, 0, items.Len())
	for _, element := range items.All() {
		collected = append(collected, element)
	}
	assert.Equal(t, []any{1, 2, 3}, collected)

	assert.Len(t, attrRecords(t, obj, "items"), 1)
}

func Test_List_ValuesIsAnIndependentCopy(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3})

	items := listAttr(t, obj, "items")

	values := items.Values()
	values[0] = 99

	assert.True(t, items.Equal([]any{1, 2, 3}))
	assert.Len(t, attrRecords(t, obj, "items"), 1)
}

func Test_List_FailedOperationsDoNotRecord(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3})
	obj.Set("empty", []any{})

	items := listAttr(t, obj, "items")
	empty := listAttr(t, obj, "empty")

	tests := []struct {
		name        string
		operation   func() error
		expectedErr error
	}{
		{
			name: "get out of range",
			operation: func() error {
				_, err := items.Get(99)
				return err
			},
			expectedErr: tracking.ErrIndexOutOfRange,
		},
		{
			name: "get negative index",
			operation: func() error {
				_, err := items.Get(-1)
				return err
			},
			expectedErr: tracking.ErrIndexOutOfRange,
		},
		{
			name: "set out of range",
			operation: func() error {
				return items.Set(99, 0)
			},
			expectedErr: tracking.ErrIndexOutOfRange,
		},
		{
			name: "delete out of range",
			operation: func() error {
				return items.Delete(99)
			},
			expectedErr: tracking.ErrIndexOutOfRange,
		},
		{
			name: "insert past end",
			operation: func() error {
				return items.Insert(99, 0)
			},
			expectedErr: tracking.ErrIndexOutOfRange,
		},
		{
			name: "pop from empty list",
			operation: func() error {
				_, err := empty.Pop()
				return err
			},
			expectedErr: tracking.ErrPopFromEmptyList,
		},
		{
			name: "pop at out of range",
			operation: func() error {
				_, err := items.PopAt(99)
				return err
			},
			expectedErr: tracking.ErrIndexOutOfRange,
		},
		{
			name: "pop at invalid index type",
			operation: func() error {
				_, err := items.PopAt("zero")
				return err
			},
			expectedErr: tracking.ErrInvalidIndexType,
		},
		{
			name: "remove missing value",
			operation: func() error {
				return items.Remove(42)
			},
			expectedErr: tracking.ErrValueNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recordsBefore := len(flatRecords(t, obj))

			err := tt.operation()
			assert.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, recordsBefore, len(flatRecords(t, obj)))
		})
	}
}

func Test_List_InsertExtendRemoveDeleteClear(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 3})

	items := listAttr(t, obj, "items")

	require.NoError(t, items.Insert(1, 2))
	items.Extend([]any{4, 5})
	require.NoError(t, items.Remove(5))
	require.NoError(t, items.Delete(0))
	items.Clear()

	records := attrRecords(t, obj, "items")
	require.Len(t, records, 6)

	assert.Equal(t, []any{1, 3}, records[0].To)
	assert.Equal(t, []any{1, 2, 3}, records[1].To)
	assert.Equal(t, []any{1, 2, 3, 4, 5}, records[2].To)
	assert.Equal(t, []any{1, 2, 3, 4}, records[3].To)
	assert.Equal(t, []any{2, 3, 4}, records[4].To)
	assert.Equal(t, []any{}, records[5].To)
}

func Test_List_AppendMultipleValuesIsOneRecord(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1})

	listAttr(t, obj, "items").Append(2, 3, 4)

	records := attrRecords(t, obj, "items")
	require.Len(t, records, 2)
	assert.Equal(t, []any{1}, records[1].From)
	assert.Equal(t, []any{1, 2, 3, 4}, records[1].To)
}

func Test_List_NestedListMutationRecordsWholeAttribute(t *testing.T) {
	obj := newTracked(t)
	obj.Set("matrix", []any{[]any{1, 2}, "x"})

	matrix := listAttr(t, obj, "matrix")

	element, err := matrix.Get(0)
	require.NoError(t, err)

	nested, ok := element.(*tracking.List)
	require.True(t, ok)

	nested.Append(3)

	records := attrRecords(t, obj, "matrix")
	require.Len(t, records, 2)

	assert.Equal(t, []any{[]any{1, 2}, "x"}, records[1].From)
	assert.Equal(t, []any{[]any{1, 2, 3}, "x"}, records[1].To)
}
