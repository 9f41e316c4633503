package tracking

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// changeRecordJSON fixes the wire field names of a ChangeRecord.
type changeRecordJSON struct {
	Time time.Time `json:"time"`
	Attr string    `json:"attr"`
	From any       `json:"from"`
	To   any       `json:"to"`
}

// MarshalJSON encodes the record with the contract field names
// time, attr, from and to.
func (r ChangeRecord) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(changeRecordJSON{
		Time: r.Time,
		Attr: r.Attr,
		From: r.From,
		To:   r.To,
	})
}

// MarshalJSON encodes the Absent sentinel distinguishably from null, so a
// first-ever record can never be confused with a recorded nil value.
func (AbsentValue) MarshalJSON() ([]byte, error) {
	return []byte(`{"__absent__":true}`), nil
}

// MarshalJSON encodes the wrapped contents, keeping the proxy transparent for serialization.
func (l *List) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(l.Values())
}

// MarshalJSON encodes the wrapped contents, keeping the proxy transparent for serialization.
func (d *Dict) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(d.Items())
}

// EncodeChangeRecords serializes records for audit-trail export.
// The encoding is one-way: values are rendered as JSON, not round-tripped.
func EncodeChangeRecords(records ChangeRecords) ([]byte, error) {
	return jsonAPI.Marshal(records)
}
