package tracking

import (
	"time"
)

// ChangeRecords is an alias type for a slice of ChangeRecord
type ChangeRecords = []ChangeRecord

// ChangeRecord is one immutable entry in an instance's change history.
//
// From and To hold independent snapshots of the whole attribute value
// immediately before and after the change; later mutation of the live value
// cannot alter them. The first record ever written for an attribute carries
// Absent as From.
//
// While its properties are exported, it should only be constructed with the
// supplied factory method BuildChangeRecord.
type ChangeRecord struct {
	Time time.Time
	Attr AttributeNameString
	From any
	To   any
}

// BuildChangeRecord is a factory method for ChangeRecord.
//
// It populates the ChangeRecord with the given input.
// Returns an error if attr is empty.
func BuildChangeRecord(occurredAt time.Time, attr AttributeNameString, from any, to any) (ChangeRecord, error) {
	if attr == "" {
		return ChangeRecord{}, ErrEmptyAttributeName
	}

	return ChangeRecord{
		Time: occurredAt,
		Attr: attr,
		From: from,
		To:   to,
	}, nil
}

// AbsentValue is the sentinel type denoting "no prior value existed".
// It is distinct from a stored nil value, so the first record of an attribute
// can never be confused with an attribute that was assigned nil.
type AbsentValue struct{}

// Absent is the singleton sentinel used as From in the first record of an attribute.
var Absent = AbsentValue{}

func (AbsentValue) String() string {
	return "<absent>"
}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(AbsentValue)
	return ok
}
