package boolcast

import (
	"encoding/json"
	"fmt"
)

// Flag is an optional boolean field that accepts native booleans and
// "true"/"false" strings in request bodies. The zero value means the field
// was not submitted.
type Flag struct {
	Valid bool
	Value bool
}

// FlagOf returns a set Flag.
func FlagOf(v bool) Flag {
	return Flag{Valid: true, Value: v}
}

// UnmarshalJSON decodes booleans and boolean-valued strings; null leaves
// the flag unset.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = Flag{}
		return nil
	}

	b, ok := ParseBool(raw)
	if !ok {
		return fmt.Errorf("cannot interpret %v as a boolean", raw)
	}
	*f = FlagOf(b)
	return nil
}

// MarshalJSON encodes a set flag as a native boolean and an unset one as null.
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Or returns the flag value, or fallback when unset.
func (f Flag) Or(fallback bool) bool {
	if !f.Valid {
		return fallback
	}
	return f.Value
}
