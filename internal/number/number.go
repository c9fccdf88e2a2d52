// Package number coerces the scalar shapes produced by YAML and JSON
// decoding into float64 for numeric comparison.
package number

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceFloat64 converts numeric values and numeric strings to float64.
// Strings are trimmed before parsing. Booleans are not numbers.
func CoerceFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(current), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	default:
		return 0, false
	}
}
