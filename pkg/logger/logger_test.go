package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/clubhq/membership/internal/config"
)

func TestNewWithConfig(t *testing.T) {
	t.Run("json production logger", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		})

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("console development logger", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{
			Level:  "debug",
			Format: "console",
			Output: "stderr",
		})

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{
			Level:  "loud",
			Format: "json",
			Output: "stdout",
		})

		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	require.NotNil(t, log)
	log.Infow("dropped", "key", "value")
}
