package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHarmonyToken = "EDL-test-token"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.HarmonyEnabled)
	assert.Empty(t, cfg.HarmonyToken)
	assert.Equal(t, 60*time.Second, cfg.HarmonyTimeout)
	assert.Equal(t, time.Second, cfg.HarmonyPollInterval)
	assert.Equal(t, 1000, cfg.HarmonyCacheSize)
	assert.Equal(t, int64(0), cfg.MockSeed)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("HARMONY_TOKEN", testHarmonyToken)
	t.Setenv("HARMONY_TIMEOUT", "90s")
	t.Setenv("HARMONY_POLL_INTERVAL", "500ms")
	t.Setenv("HARMONY_CACHE_SIZE", "250")
	t.Setenv("MOCK_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.HarmonyEnabled)
	assert.Equal(t, testHarmonyToken, cfg.HarmonyToken)
	assert.Equal(t, 90*time.Second, cfg.HarmonyTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.HarmonyPollInterval)
	assert.Equal(t, 250, cfg.HarmonyCacheSize)
	assert.Equal(t, int64(42), cfg.MockSeed)
}

func TestLoad_TokenImpliesEnabled(t *testing.T) {
	t.Setenv("HARMONY_TOKEN", testHarmonyToken)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.HarmonyEnabled)
}

func TestLoad_ExplicitDisable(t *testing.T) {
	t.Setenv("HARMONY_TOKEN", testHarmonyToken)
	t.Setenv("HARMONY_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.HarmonyEnabled)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("enabled without token", func(t *testing.T) {
		t.Setenv("HARMONY_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HARMONY_TOKEN")
	})

	t.Run("invalid shutdown timeout", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
	})

	t.Run("invalid poll interval", func(t *testing.T) {
		t.Setenv("HARMONY_POLL_INTERVAL", "-1s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HARMONY_POLL_INTERVAL")
	})

	t.Run("invalid mock seed", func(t *testing.T) {
		t.Setenv("MOCK_SEED", "not-a-number")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MOCK_SEED")
	})
}
