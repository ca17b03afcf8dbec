package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"CANON_PROVIDER", "GEMINI_API_KEY", "IMAGE_GEMINI_MODEL", "CANON_STORE_DIR", "CANON_RATE_INTERVAL", "CANON_CONCURRENCY", "CANON_LOG_NO_TIME"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := LoadConfig()

	assert.Equal(t, ProviderPollinations, cfg.Provider)
	assert.Equal(t, DefaultImageModel, cfg.GeminiImageModel)
	assert.Equal(t, DefaultStoreDir, cfg.StoreDir)
	assert.Equal(t, DefaultRateInterval, cfg.RateInterval)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.False(t, cfg.LogNoTime)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CANON_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("CANON_STORE_DIR", "gs://bucket/canon")
	t.Setenv("CANON_RATE_INTERVAL", "500ms")
	t.Setenv("CANON_CONCURRENCY", "4")
	t.Setenv("CANON_LOG_NO_TIME", "true")

	cfg := LoadConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "gs://bucket/canon", cfg.StoreDir)
	assert.Equal(t, 500*time.Millisecond, cfg.RateInterval)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.LogNoTime)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CANON_RATE_INTERVAL", "soon")
	t.Setenv("CANON_CONCURRENCY", "many")

	cfg := LoadConfig()

	assert.Equal(t, DefaultRateInterval, cfg.RateInterval)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{Provider: "dalle", Concurrency: 1}).Validate())
	assert.Error(t, (&Config{Provider: ProviderGemini, Concurrency: 0}).Validate())
	assert.NoError(t, (&Config{Provider: ProviderGemini, Concurrency: 1}).Validate())
}
