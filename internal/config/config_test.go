package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://127.0.0.1:8080/api/update", cfg.APIURL)
	assert.Equal(t, "news_cache.json", cfg.CacheFile)
	assert.Equal(t, 60*time.Minute, cfg.CacheDuration)
	assert.Equal(t, 60, cfg.MaxLineLen)
	assert.Equal(t, 60, cfg.CleanupEvery)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 12*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 2, cfg.LLMRetries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NEWS_CACHE_MINUTES", "30")
	t.Setenv("NEWS_MAX_LINE_LEN", "80")
	t.Setenv("LLM_PROVIDER", "anthropic")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.CacheDuration)
	assert.Equal(t, 80, cfg.MaxLineLen)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("NEWS_CACHE_MINUTES", "not-a-number")

	cfg := Load()

	assert.Equal(t, 60*time.Minute, cfg.CacheDuration)
}
