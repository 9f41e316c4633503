package tracking_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

func Test_ChangeRecord_MarshalJSON_ContractFieldNames(t *testing.T) {
	obj := newTracked(t)
	obj.Set("value", 1)
	obj.Set("value", 2)

	records := attrRecords(t, obj, "value")
	require.Len(t, records, 2)

	encoded, err := json.Marshal(records[1])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Contains(t, decoded, "time")
	assert.Contains(t, decoded, "attr")
	assert.Contains(t, decoded, "from")
	assert.Contains(t, decoded, "to")
	assert.Len(t, decoded, 4)

	assert.Equal(t, "value", decoded["attr"])
	assert.Equal(t, float64(1), decoded["from"])
	assert.Equal(t, float64(2), decoded["to"])
}

func Test_ChangeRecord_MarshalJSON_AbsentIsDistinctFromNull(t *testing.T) {
	obj := newTracked(t)
	obj.Set("value", nil)
	obj.Set("value", nil)

	records := attrRecords(t, obj, "value")
	require.Len(t, records, 2)

	first, err := json.Marshal(records[0])
	require.NoError(t, err)

	var decodedFirst map[string]any
	require.NoError(t, json.Unmarshal(first, &decodedFirst))
	assert.Equal(t, map[string]any{"__absent__": true}, decodedFirst["from"])
	assert.Nil(t, decodedFirst["to"])

	second, err := json.Marshal(records[1])
	require.NoError(t, err)

	var decodedSecond map[string]any
	require.NoError(t, json.Unmarshal(second, &decodedSecond))
	assert.Nil(t, decodedSecond["from"])
}

func Test_EncodeChangeRecords(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3})

	encoded, err := tracking.EncodeChangeRecords(flatRecords(t, obj))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Len(t, decoded, 1)
	assert.Equal(t, "items", decoded[0]["attr"])
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, decoded[0]["to"])
}

func Test_Proxies_MarshalAsTheirContents(t *testing.T) {
	obj := newTracked(t)
	obj.Set("items", []any{1, 2, 3})
	obj.Set("data", map[string]any{"a": 1})

	items, _ := obj.Get("items")
	encodedList, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(encodedList))

	data, _ := obj.Get("data")
	encodedDict, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(encodedDict))
}
