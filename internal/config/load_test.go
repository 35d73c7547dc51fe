package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, int32(2048), cfg.LLM.MaxOutputTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
	assert.InDelta(t, 0.8, cfg.LLM.TopP, 0.001)
	assert.InDelta(t, 40, cfg.LLM.TopK, 0.001)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, 50, cfg.Cache.MaxEntries)

	// Absent credential is a valid configuration, not an error.
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SNIPER_LLM_GEMINI_API_KEY", "test-key")
	t.Setenv("SNIPER_LLM_MODEL_NAME", "gemini-2.5-flash")
	t.Setenv("SNIPER_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("SNIPER_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
