package warehouse

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Row is an ordered mapping from upper-case column name to a scalar value.
// The shape is whatever the executor returned: a wide SELECT * and an
// explicit projection both flow through unchanged, so no fixed schema is
// assumed anywhere.
type Row struct {
	columns []string
	dbTypes []string
	values  []interface{}
}

// NewRow builds a row from parallel column/type/value slices. dbTypes may
// be nil when driver type information is unavailable.
func NewRow(columns []string, dbTypes []string, values []interface{}) Row {
	return Row{columns: columns, dbTypes: dbTypes, values: values}
}

// Columns returns the column names in result order.
func (r Row) Columns() []string {
	return r.columns
}

// Get returns the value for a column name, if present.
func (r Row) Get(column string) (interface{}, bool) {
	for i, col := range r.columns {
		if col == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// isDateType reports whether a driver type name is a calendar date rather
// than a timestamp.
func isDateType(dbType string) bool {
	return strings.EqualFold(dbType, "DATE")
}

// serializeValue converts a warehouse scalar into its transport-safe form:
// dates become YYYY-MM-DD strings, timestamps RFC 3339 strings, byte
// slices become strings, everything else (numbers, booleans, nil) passes
// through unchanged.
func serializeValue(value interface{}, dbType string) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		if isDateType(dbType) {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case []byte:
		return string(v)
	default:
		return value
	}
}

// MarshalJSON emits the row as a JSON object preserving column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		dbType := ""
		if r.dbTypes != nil {
			dbType = r.dbTypes[i]
		}
		val, err := json.Marshal(serializeValue(r.values[i], dbType))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
