package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tabi/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("development logger honours level", func(t *testing.T) {
		l, err := New(&config.Config{Env: "development", LogLevel: "warn"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.InfoLevel))
		assert.True(t, l.Core().Enabled(zap.WarnLevel))
	})

	t.Run("production logger defaults to info", func(t *testing.T) {
		l, err := New(&config.Config{Env: "production"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New(&config.Config{LogLevel: "loud"})
		assert.Error(t, err)
	})
}
