package boolcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFromStorage(t *testing.T) {
	boolFields := map[string]bool{"active": true, "newsletter": true}

	t.Run("mixed case strings convert to native booleans", func(t *testing.T) {
		row := map[string]interface{}{
			"active":     "TRUE",
			"newsletter": "false",
			"name":       "Alice",
		}

		out := RowFromStorage(row, boolFields)

		assert.Equal(t, true, out["active"])
		assert.Equal(t, false, out["newsletter"])
		assert.Equal(t, "Alice", out["name"])
	})

	t.Run("native booleans pass through", func(t *testing.T) {
		row := map[string]interface{}{"active": true}

		out := RowFromStorage(row, boolFields)

		assert.Equal(t, true, out["active"])
	})

	t.Run("untagged fields are untouched even when boolean-like", func(t *testing.T) {
		row := map[string]interface{}{"notes": "true"}

		out := RowFromStorage(row, boolFields)

		assert.Equal(t, "true", out["notes"])
	})

	t.Run("unrecognized value yields absent field, not an error", func(t *testing.T) {
		row := map[string]interface{}{"active": "yes", "name": "Bob"}

		out := RowFromStorage(row, boolFields)

		_, present := out["active"]
		assert.False(t, present)
		assert.Equal(t, "Bob", out["name"])
	})

	t.Run("nil row", func(t *testing.T) {
		assert.Nil(t, RowFromStorage(nil, boolFields))
	})
}

func TestFromStorage(t *testing.T) {
	boolFields := map[string]bool{"active": true}

	rows := []map[string]interface{}{
		{"active": "True", "name": "Alice"},
		{"active": "FALSE", "name": "Bob"},
	}

	out := FromStorage(rows, boolFields)

	require.Len(t, out, 2)
	assert.Equal(t, true, out[0]["active"])
	assert.Equal(t, false, out[1]["active"])
	// Input rows are not mutated.
	assert.Equal(t, "True", rows[0]["active"])
}

func TestToStorage(t *testing.T) {
	t.Run("booleans become strings, other fields untouched", func(t *testing.T) {
		body := map[string]interface{}{
			"active": true,
			"hidden": false,
			"name":   "Alice",
			"age":    42,
		}

		out := ToStorage(body)

		assert.Equal(t, "true", out["active"])
		assert.Equal(t, "false", out["hidden"])
		assert.Equal(t, "Alice", out["name"])
		assert.Equal(t, 42, out["age"])
	})

	t.Run("nil body", func(t *testing.T) {
		assert.Nil(t, ToStorage(nil))
	})
}

func TestRoundTrip(t *testing.T) {
	boolFields := map[string]bool{"active": true, "volunteer": true}

	for _, original := range []bool{true, false} {
		body := ToStorage(map[string]interface{}{"active": original, "volunteer": !original})
		row := RowFromStorage(body, boolFields)

		assert.Equal(t, original, row["active"])
		assert.Equal(t, !original, row["volunteer"])
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  bool
		ok    bool
	}{
		{"lowercase true", "true", true, true},
		{"uppercase false", "FALSE", false, true},
		{"mixed case", "TrUe", true, true},
		{"native bool", false, false, true},
		{"arbitrary string", "maybe", false, false},
		{"number", 1, false, false},
		{"nil", nil, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseBool(tc.value)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
