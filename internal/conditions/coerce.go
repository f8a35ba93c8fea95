// internal/conditions/coerce.go
package conditions

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

/*
 * Loose value coercion for comparison.
 *
 * Field values arrive as decoded JSON (string, float64, bool, []any, nil)
 * while hand-built trees may carry Go-native scalars and slices. Helpers
 * here normalize both into the two comparison domains Compare works in:
 * float64 for numeric operators, a flat string form for everything else.
 *
 * Coercion never fails loudly. A value with no numeric reading reports
 * ok=false and the numeric comparison resolves to false; a value with no
 * obvious string form falls back to fmt formatting. The engine's contract
 * is a definite boolean for every input, never an error.
 */

// stringify renders v as the string a form input would hold: numbers in
// shortest decimal form, booleans as true/false, lists joined with commas,
// nil as the empty string.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		if s {
			return "true"
		}
		return "false"
	}
	if list, ok := toList(v); ok {
		parts := make([]string, len(list))
		for i, elem := range list {
			parts[i] = stringify(elem)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", v)
}

// toFloat64 attempts a numeric reading of v. Numeric strings are trimmed and
// parsed; booleans and everything else have no numeric reading.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		n = strings.TrimSpace(n)
		if n == "" {
			// Empty/whitespace-only strings are not valid numbers
			return 0, false
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asNumbers converts both values to float64 for numeric comparison.
// Returns converted values and a combined success flag.
func asNumbers(a, b any) (float64, float64, bool) {
	na, oka := toFloat64(a)
	nb, okb := toFloat64(b)
	return na, nb, oka && okb
}

// toList normalizes slice-shaped values to []any. Decoded JSON arrays come
// through directly; reflection covers Go-native slices in hand-built trees.
func toList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if list, ok := v.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// strictEqual is element-level equality for array contains checks. DeepEqual
// keeps the comparison total for non-comparable element types.
func strictEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
