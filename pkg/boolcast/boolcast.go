// Package boolcast converts boolean fields between their storage
// representation (string "true"/"false") and native Go booleans.
package boolcast

import "strings"

// FromStorage returns a copy of rows where every field named in boolFields
// holds a native boolean. Values are recognized case-insensitively
// ("TRUE", "false", "True" all convert); native booleans pass through.
// Any other value removes the field from the row, marking it as absent
// rather than failing. Fields not named in boolFields are left untouched.
func FromStorage(rows []map[string]interface{}, boolFields map[string]bool) []map[string]interface{} {
	if rows == nil {
		return nil
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, RowFromStorage(row, boolFields))
	}
	return out
}

// RowFromStorage converts a single row. See FromStorage.
func RowFromStorage(row map[string]interface{}, boolFields map[string]bool) map[string]interface{} {
	if row == nil {
		return nil
	}

	out := make(map[string]interface{}, len(row))
	for key, value := range row {
		if !boolFields[key] {
			out[key] = value
			continue
		}

		b, ok := ParseBool(value)
		if !ok {
			// Unrecognized value: the field is absent from the result,
			// signaling "not a boolean" without raising an error.
			continue
		}
		out[key] = b
	}
	return out
}

// ParseBool interprets a storage value as a boolean. The second return
// value reports whether the value was recognized.
func ParseBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if strings.EqualFold(v, "true") {
			return true, true
		}
		if strings.EqualFold(v, "false") {
			return false, true
		}
	}
	return false, false
}

// ToStorage returns a copy of body where every native boolean value is
// replaced by its "true"/"false" string form, ready to be sent to storage.
// Non-boolean fields are left untouched.
func ToStorage(body map[string]interface{}) map[string]interface{} {
	if body == nil {
		return nil
	}

	out := make(map[string]interface{}, len(body))
	for key, value := range body {
		if b, ok := value.(bool); ok {
			out[key] = FormatBool(b)
			continue
		}
		out[key] = value
	}
	return out
}

// FormatBool returns the storage string form of a boolean.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
