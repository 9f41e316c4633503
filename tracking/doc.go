// Package tracking provides automatic, chronological change tracking for the
// attributes of an object, including in-place mutation of container-valued
// attributes, without the object's own code being aware it is observed.
//
// This package defines the fundamental types used by host code: the
// embeddable Tracked instrumentation type, change records, container proxies,
// history filters, and common error definitions.
//
// Every write through the Set choke point, and every mutating call on a
// proxied container, appends one whole-value ChangeRecord to the instance's
// private history:
//   - Tracked: per-instance instrumentation with a Set/Get attribute surface
//   - ChangeRecord: one attribute value transition at a point in time
//   - List / Dict: transparent container proxies that record mutation
//   - Filter: criteria for querying records back from a history
//
// Common usage pattern:
//
//	type Inventory struct {
//		*tracking.Tracked
//	}
//
//	tracked, err := tracking.New(tracking.WithTrackPrivate(true))
//	if err != nil {
//		// handle error
//	}
//	inv := &Inventory{Tracked: tracked}
//
//	inv.Set("items", []any{1, 2, 3})
//	items, _ := inv.Get("items")
//	items.(*tracking.List).Append(4)
//
//	view, err := inv.GetChangeHistory(tracking.ForAttribute("items"))
//	if err != nil {
//		// handle error
//	}
//	for _, record := range view.Records() {
//		// record.Time, record.Attr, record.From, record.To
//	}
package tracking
