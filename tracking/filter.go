package tracking

import (
	"slices"
	"time"
)

type FilterAttributeString = string

/***** Filter *****/

// Filter defines criteria for querying records back from a History.
type Filter struct {
	items         []FilterItem
	occurredFrom  time.Time
	occurredUntil time.Time
}

func (f Filter) Items() []FilterItem {
	return f.items
}

func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

// matches reports whether a record satisfies the time range and, when any
// FilterItem carries attributes, at least one item's attribute set.
func (f Filter) matches(record ChangeRecord) bool {
	if !f.occurredFrom.IsZero() && record.Time.Before(f.occurredFrom) {
		return false
	}

	if !f.occurredUntil.IsZero() && record.Time.After(f.occurredUntil) {
		return false
	}

	if len(f.items) == 0 {
		return true
	}

	for _, item := range f.items {
		if len(item.attributes) == 0 {
			return true
		}

		if slices.Contains(item.attributes, record.Attr) {
			return true
		}
	}

	return false
}

/***** FilterItem *****/

// FilterItem holds one alternative set of attribute names; a record matches a
// Filter when it matches any of its items.
type FilterItem struct {
	attributes []FilterAttributeString
}

func (fi FilterItem) Attributes() []FilterAttributeString {
	return fi.attributes
}

/***** FilterBuilder *****/

// FilterBuilder builds a history filter for querying records from a History.
// It is designed with the idea to only allow "useful" filter combinations:
//
//   - empty filter
//   - (attribute)
//   - (attribute OR attribute...)
//   - (attribute... ) AND time range
//   - time range only
//   - ((attribute...) OR (attribute...)) -> multiple FilterItem(s)
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyChange directly creates an empty Filter.
	MatchingAnyChange() Filter

	// OccurredFrom restricts matching records to those recorded at or after the given time.
	OccurredFrom(from time.Time) FilterBuilder

	// OccurredUntil restricts matching records to those recorded at or before the given time.
	OccurredUntil(until time.Time) FilterBuilder

	// AndOccurredUntil restricts matching records to those recorded at or before the given time.
	AndOccurredUntil(until time.Time) FilterBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type EmptyFilterItemBuilder interface {
	// AnyAttributeOf adds one or multiple attribute names to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing empty attribute names ("")
	//	- sorting the attribute names
	//	- removing duplicate attribute names
	AnyAttributeOf(attribute FilterAttributeString, attributes ...FilterAttributeString) CompletedFilterItemBuilder
}

type CompletedFilterItemBuilder interface {
	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// AndOccurredFrom restricts matching records to those recorded at or after the given time.
	AndOccurredFrom(from time.Time) CompletedFilterItemBuilder

	// AndOccurredUntilThen restricts matching records to those recorded at or before the given time.
	AndOccurredUntilThen(until time.Time) CompletedFilterItemBuilder

	// Finalize returns the Filter once it has at least one FilterItem with at least one attribute.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildHistoryFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyChange().
func BuildHistoryFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyChange directly creates an empty filter.
func (fb filterBuilder) MatchingAnyChange() Filter {
	return fb.filter
}

// OccurredFrom restricts matching records to those recorded at or after the given time.
func (fb filterBuilder) OccurredFrom(from time.Time) FilterBuilder {
	fb.filter.occurredFrom = from

	return fb
}

// OccurredUntil restricts matching records to those recorded at or before the given time.
func (fb filterBuilder) OccurredUntil(until time.Time) FilterBuilder {
	fb.filter.occurredUntil = until

	return fb
}

// AndOccurredUntil restricts matching records to those recorded at or before the given time.
func (fb filterBuilder) AndOccurredUntil(until time.Time) FilterBuilder {
	return fb.OccurredUntil(until)
}

// AndOccurredFrom restricts matching records to those recorded at or after the given time.
func (fb filterBuilder) AndOccurredFrom(from time.Time) CompletedFilterItemBuilder {
	fb.filter.occurredFrom = from

	return fb
}

// AndOccurredUntilThen restricts matching records to those recorded at or before the given time.
func (fb filterBuilder) AndOccurredUntilThen(until time.Time) CompletedFilterItemBuilder {
	fb.filter.occurredUntil = until

	return fb
}

// AnyAttributeOf adds one or multiple attribute names to the current FilterItem expecting ANY of them to match.
//
// It sanitizes the input:
//   - removing empty attribute names ("")
//   - sorting the attribute names
//   - removing duplicate attribute names
func (fb filterBuilder) AnyAttributeOf(
	attribute FilterAttributeString,
	attributes ...FilterAttributeString,
) CompletedFilterItemBuilder {

	fb.currentFilterItem.attributes = append(
		fb.currentFilterItem.attributes,
		fb.sanitizeAttributes(attribute, attributes...)...,
	)

	return fb
}

func (fb filterBuilder) sanitizeAttributes(
	attribute FilterAttributeString,
	attributes ...FilterAttributeString,
) []FilterAttributeString {

	allAttributes := append([]FilterAttributeString{attribute}, attributes...)
	allAttributes = slices.DeleteFunc(
		allAttributes,
		func(a FilterAttributeString) bool {
			return a == ""
		})
	slices.Sort(allAttributes)
	allAttributes = slices.Compact(allAttributes)
	allAttributes = slices.Clip(allAttributes)

	return allAttributes
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// Finalize returns the Filter.
func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)

	return fb.filter
}
