package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Empty(t, cfg.PostgresDSN)
		assert.Empty(t, cfg.RedisAddr)
		assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("MEDIATOR_HTTP_ADDR", ":9999")
		t.Setenv("MEDIATOR_REDIS_ADDR", "localhost:6379")
		t.Setenv("MEDIATOR_CACHE_TTL", "2m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.HTTPAddr)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	})
}
