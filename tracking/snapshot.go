package tracking

import (
	"reflect"

	"github.com/mohae/deepcopy"
)

// snapshotValue produces an independent, equality-comparable copy of a value,
// so that later mutation of the original (directly or through a proxy) cannot
// retroactively alter a recorded From or To.
//
// Container proxies are unwrapped: a snapshot of a *List is a plain []any, a
// snapshot of a *Dict is a plain map[string]any, recursively. Anything else
// is structurally deep-copied; immutable scalars come back as themselves.
func snapshotValue(value any) any {
	switch v := value.(type) {
	case AbsentValue:
		return v
	case *List:
		return snapshotSlice(v.items)
	case *Dict:
		return snapshotMap(v.entries)
	case []any:
		return snapshotSlice(v)
	case map[string]any:
		return snapshotMap(v)
	default:
		return deepcopy.Copy(value)
	}
}

func snapshotSlice(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = snapshotValue(item)
	}

	return out
}

func snapshotMap(entries map[string]any) map[string]any {
	out := make(map[string]any, len(entries))
	for key, entry := range entries {
		out[key] = snapshotValue(entry)
	}

	return out
}

// valuesEqual compares two values by contents, unwrapping container proxies
// on either side first.
func valuesEqual(a any, b any) bool {
	return reflect.DeepEqual(snapshotValue(a), snapshotValue(b))
}
