package warehouse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMarshalJSON_DateAndTimestamp(t *testing.T) {
	effective := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	snapshot := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	row := NewRow(
		[]string{"POLICY_ID", "ORIGINAL_EFFECTIVE_DT", "SNAPSHOT_TS"},
		[]string{"INT8", "DATE", "TIMESTAMP"},
		[]interface{}{int64(42), effective, snapshot},
	)

	data, err := json.Marshal(row)
	require.NoError(t, err)

	assert.JSONEq(t, `{"POLICY_ID":42,"ORIGINAL_EFFECTIVE_DT":"2024-03-15","SNAPSHOT_TS":"2024-03-15T10:30:00Z"}`, string(data))
}

func TestRowMarshalJSON_NullPassesThrough(t *testing.T) {
	row := NewRow(
		[]string{"DECISION"},
		[]string{"VARCHAR"},
		[]interface{}{nil},
	)

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"DECISION":null}`, string(data))
}

func TestRowMarshalJSON_UnknownColumnsIterated(t *testing.T) {
	// The serializer assumes no schema: whatever columns the executor
	// returned are emitted, in result order.
	row := NewRow(
		[]string{"ZED_EXTRA", "ALPHA", "MYSTERY_COL"},
		[]string{"VARCHAR", "INT8", "BOOL"},
		[]interface{}{"x", int64(1), true},
	)

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"ZED_EXTRA":"x","ALPHA":1,"MYSTERY_COL":true}`, string(data))
}

func TestRowMarshalJSON_BytesBecomeStrings(t *testing.T) {
	row := NewRow(
		[]string{"CARRIER_NAME"},
		[]string{"VARCHAR"},
		[]interface{}{[]byte("Carrier_A")},
	)

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"CARRIER_NAME":"Carrier_A"}`, string(data))
}

func TestRowGet(t *testing.T) {
	row := NewRow(
		[]string{"POLICY_ID", "CARRIER_NAME"},
		nil,
		[]interface{}{int64(7), "Carrier_B"},
	)

	v, ok := row.Get("CARRIER_NAME")
	assert.True(t, ok)
	assert.Equal(t, "Carrier_B", v)

	_, ok = row.Get("MISSING")
	assert.False(t, ok)
}

func TestRowMarshalJSON_NoTypeInfoTimestampFallback(t *testing.T) {
	// Without driver type names a time.Time is emitted as RFC 3339.
	ts := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	row := NewRow([]string{"DT"}, nil, []interface{}{ts})

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"DT":"2024-03-15T00:00:00Z"}`, string(data))
}
