package warehouse

import "strconv"

// Scalar coercion helpers. Drivers hand numerics back as int64, float64 or
// raw bytes depending on the column type; aggregation consumers want one
// shape. A NULL coerces to the zero value.

// AsString converts a warehouse scalar to a string.
func AsString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	default:
		return ""
	}
}

// AsInt64 converts a warehouse scalar to an int64.
func AsInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case []byte:
		parsed, _ := strconv.ParseInt(string(n), 10, 64)
		return parsed
	case string:
		parsed, _ := strconv.ParseInt(n, 10, 64)
		return parsed
	default:
		return 0
	}
}

// AsFloat64 converts a warehouse scalar to a float64.
func AsFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case []byte:
		parsed, _ := strconv.ParseFloat(string(n), 64)
		return parsed
	case string:
		parsed, _ := strconv.ParseFloat(n, 64)
		return parsed
	default:
		return 0
	}
}
