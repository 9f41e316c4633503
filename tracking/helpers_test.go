package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

func newTracked(t *testing.T, opts ...tracking.Option) *tracking.Tracked {
	t.Helper()

	tracked, err := tracking.New(opts...)
	require.NoError(t, err)

	return tracked
}

func listAttr(t *testing.T, tracked *tracking.Tracked, attr string) *tracking.List {
	t.Helper()

	value, ok := tracked.Get(attr)
	require.True(t, ok)

	list, ok := value.(*tracking.List)
	require.True(t, ok)

	return list
}

func dictAttr(t *testing.T, tracked *tracking.Tracked, attr string) *tracking.Dict {
	t.Helper()

	value, ok := tracked.Get(attr)
	require.True(t, ok)

	dict, ok := value.(*tracking.Dict)
	require.True(t, ok)

	return dict
}

func attrRecords(t *testing.T, tracked *tracking.Tracked, attr string) tracking.ChangeRecords {
	t.Helper()

	view, err := tracked.GetChangeHistory(tracking.ForAttribute(attr))
	require.NoError(t, err)

	return view.Records()
}

func flatRecords(t *testing.T, tracked *tracking.Tracked) tracking.ChangeRecords {
	t.Helper()

	view, err := tracked.GetChangeHistory()
	require.NoError(t, err)

	return view.Records()
}
