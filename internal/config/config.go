package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the collector and API read from the
// environment. It is built once in main and passed down by value;
// nothing mutates it after startup.
type Config struct {
	APIURL        string
	MarketURL     string
	CacheFile     string
	CacheDuration time.Duration
	MaxLineLen    int
	CleanupEvery  int

	LLMProvider  string
	OpenAIKey    string
	OpenAIModel  string
	AnthropicKey string
	LLMTimeout   time.Duration
	LLMRetries   int

	FinnhubKey      string
	AlphaVantageKey string
}

func Load() Config {
	return Config{
		APIURL:        getEnv("API_URL", "http://127.0.0.1:8080/api/update"),
		MarketURL:     os.Getenv("MARKET_URL"),
		CacheFile:     getEnv("NEWS_CACHE_FILE", "news_cache.json"),
		CacheDuration: time.Duration(getEnvInt("NEWS_CACHE_MINUTES", 60)) * time.Minute,
		MaxLineLen:    getEnvInt("NEWS_MAX_LINE_LEN", 60),
		CleanupEvery:  getEnvInt("CACHE_CLEANUP_CYCLES", 60),

		LLMProvider:  getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMTimeout:   time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 12)) * time.Second,
		LLMRetries:   getEnvInt("LLM_RETRIES", 2),

		FinnhubKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
