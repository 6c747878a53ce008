package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("TEST_KEY", "value")
		assert.Equal(t, "value", GetEnv("TEST_KEY", "default"))
	})

	t.Run("returns default when missing", func(t *testing.T) {
		assert.Equal(t, "default", GetEnv("TEST_KEY_MISSING", "default"))
	})

	t.Run("returns default when empty", func(t *testing.T) {
		t.Setenv("TEST_KEY_EMPTY", "")
		assert.Equal(t, "default", GetEnv("TEST_KEY_EMPTY", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("parses integer", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		assert.Equal(t, 42, GetEnvInt("TEST_INT", 0))
	})

	t.Run("invalid integer falls back", func(t *testing.T) {
		t.Setenv("TEST_INT_INVALID", "forty-two")
		assert.Equal(t, 10, GetEnvInt("TEST_INT_INVALID", 10))
	})

	t.Run("missing falls back", func(t *testing.T) {
		assert.Equal(t, 5, GetEnvInt("TEST_INT_MISSING", 5))
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Run("parses boolean", func(t *testing.T) {
		t.Setenv("TEST_BOOL", "true")
		assert.True(t, GetEnvBool("TEST_BOOL", false))
	})

	t.Run("invalid boolean falls back", func(t *testing.T) {
		t.Setenv("TEST_BOOL_INVALID", "yes please")
		assert.True(t, GetEnvBool("TEST_BOOL_INVALID", true))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("parses duration", func(t *testing.T) {
		t.Setenv("TEST_DUR", "30s")
		assert.Equal(t, 30*time.Second, GetEnvDuration("TEST_DUR", time.Minute))
	})

	t.Run("invalid duration falls back", func(t *testing.T) {
		t.Setenv("TEST_DUR_INVALID", "soonish")
		assert.Equal(t, time.Minute, GetEnvDuration("TEST_DUR_INVALID", time.Minute))
	})
}
