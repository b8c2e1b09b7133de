package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "WHISPER_MODEL", "WHISPER_MODEL_DIR", "CACHE_DIR", "STT_PROVIDER", "OPENAI_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "large-v3", cfg.Model)
	assert.Equal(t, "/app/models", cfg.ModelDir)
	assert.Equal(t, "/app/cache", cfg.CacheDir)
	assert.Equal(t, "whisper", cfg.STTProvider)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("WHISPER_MODEL", "base")
	t.Setenv("CACHE_DIR", "/tmp/scribe-cache")
	t.Setenv("STT_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "base", cfg.Model)
	assert.Equal(t, "/tmp/scribe-cache", cfg.CacheDir)
	assert.Equal(t, "openai", cfg.STTProvider)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("STT_PROVIDER", "openai")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is required")
}
