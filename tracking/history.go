package tracking

import (
	"github.com/google/uuid"
)

// HistoryFormatString is a type alias for string, representing an output shape of GetChangeHistory.
type HistoryFormatString = string

const (
	// FormatFlat selects the chronological view across all tracked attributes. This is the default.
	FormatFlat HistoryFormatString = "flat"

	// FormatAttr selects the view partitioned by attribute name.
	FormatAttr HistoryFormatString = "attr"
)

// History is the per-instance, insertion-ordered log of ChangeRecord(s),
// also indexed by attribute name. It is owned exclusively by the instance it
// tracks and is never shared or merged across instances.
type History struct {
	instanceID uuid.UUID
	records    ChangeRecords
	byAttr     map[AttributeNameString]ChangeRecords
}

func newHistory() *History {
	return &History{
		instanceID: uuid.New(),
		byAttr:     make(map[AttributeNameString]ChangeRecords),
	}
}

// append is the only writer; records arrive in commit order.
func (h *History) append(record ChangeRecord) {
	h.records = append(h.records, record)
	h.byAttr[record.Attr] = append(h.byAttr[record.Attr], record)
}

// InstanceID identifies this history store in logs and metrics labels.
func (h *History) InstanceID() uuid.UUID {
	return h.instanceID
}

// Len returns the total number of records across all attributes.
func (h *History) Len() int {
	return len(h.records)
}

/***** Query surface *****/

type historyQuery struct {
	attr    AttributeNameString
	attrSet bool
	format  HistoryFormatString
}

// QueryOption defines a functional option for GetChangeHistory.
type QueryOption func(*historyQuery) error

// ForAttribute restricts the result to one attribute's ordered record
// subsequence. Unknown attribute names are not an error: the view is empty.
func ForAttribute(attr AttributeNameString) QueryOption {
	return func(q *historyQuery) error {
		q.attr = attr
		q.attrSet = true

		return nil
	}
}

// WithFormat selects the output shape, either FormatFlat or FormatAttr.
// Any other value, including the empty string, fails with ErrInvalidHistoryFormat.
func WithFormat(format HistoryFormatString) QueryOption {
	return func(q *historyQuery) error {
		if format != FormatFlat && format != FormatAttr {
			return ErrInvalidHistoryFormat
		}

		q.format = format

		return nil
	}
}

// HistoryView is the result of GetChangeHistory.
//
// For FormatFlat (and for attribute-restricted queries) the records are in
// Records; for FormatAttr the partitioned records are in ByAttr. Views hold
// copies: mutating a returned slice or map never alters the History.
type HistoryView struct {
	format  HistoryFormatString
	records ChangeRecords
	byAttr  map[AttributeNameString]ChangeRecords
}

// Format returns the output shape this view was built with.
func (v HistoryView) Format() HistoryFormatString {
	return v.format
}

// Records returns the ordered records of a flat or attribute-restricted view.
func (v HistoryView) Records() ChangeRecords {
	return v.records
}

// ByAttr returns the records of a FormatAttr view, keyed by attribute name.
func (v HistoryView) ByAttr() map[AttributeNameString]ChangeRecords {
	return v.byAttr
}

// GetChangeHistory retrieves recorded changes.
//
// Without options it returns the full flat chronological view. ForAttribute
// narrows the result to one attribute's subsequence (empty for unknown
// names), WithFormat switches between the flat and the per-attribute shape.
// Each returned record exposes Time, Attr, From and To exactly as stored at
// recording time.
func (h *History) GetChangeHistory(opts ...QueryOption) (HistoryView, error) {
	query := historyQuery{format: FormatFlat}

	for _, opt := range opts {
		if err := opt(&query); err != nil {
			return HistoryView{}, err
		}
	}

	if query.attrSet {
		return HistoryView{format: FormatFlat, records: h.forAttr(query.attr)}, nil
	}

	if query.format == FormatAttr {
		byAttr := make(map[AttributeNameString]ChangeRecords, len(h.byAttr))
		for attr := range h.byAttr {
			byAttr[attr] = h.forAttr(attr)
		}

		return HistoryView{format: FormatAttr, byAttr: byAttr}, nil
	}

	return HistoryView{format: FormatFlat, records: h.flat()}, nil
}

// Query returns the chronological subsequence of records matching the filter.
func (h *History) Query(filter Filter) ChangeRecords {
	matching := make(ChangeRecords, 0, len(h.records))

	for _, record := range h.records {
		if filter.matches(record) {
			matching = append(matching, record)
		}
	}

	return matching
}

func (h *History) flat() ChangeRecords {
	return append(make(ChangeRecords, 0, len(h.records)), h.records...)
}

func (h *History) forAttr(attr AttributeNameString) ChangeRecords {
	return append(make(ChangeRecords, 0, len(h.byAttr[attr])), h.byAttr[attr]...)
}
