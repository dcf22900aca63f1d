package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stockpulse/internal/cache"
	"stockpulse/internal/collector"
	"stockpulse/internal/config"
	"stockpulse/internal/publish"
	"stockpulse/internal/summary"
	"stockpulse/pkg/llm"
	"stockpulse/pkg/market"
	"stockpulse/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	store := cache.Open(cfg.CacheFile, cfg.CacheDuration)

	resolver := summary.NewResolver(store, newsClient(cfg), cfg.MaxLineLen, summarizers(cfg)...)

	col := collector.New(
		marketSource(cfg),
		resolver,
		publish.New(cfg.APIURL),
		store,
		cfg.CleanupEvery,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("collector starting",
		"api_url", cfg.APIURL,
		"cache_file", cfg.CacheFile,
		"cache_duration", cfg.CacheDuration.String())

	col.Run(ctx)
}

func newsClient(cfg config.Config) news.Client {
	if cfg.FinnhubKey != "" {
		return news.NewFinnhubClient(cfg.FinnhubKey)
	}
	if cfg.AlphaVantageKey != "" {
		return news.NewAlphaVantageClient(cfg.AlphaVantageKey)
	}
	return news.NewGoogleNewsClient()
}

// summarizers builds the strategy chain ahead of the built-in rule-based
// fallback. With no credentials configured the chain is empty and every
// summary is rule-based.
func summarizers(cfg config.Config) []llm.Summarizer {
	var inner llm.Summarizer
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicKey == "" {
			slog.Warn("ANTHROPIC_API_KEY not set, using rule-based summaries")
			return nil
		}
		inner = llm.NewAnthropicClient(cfg.AnthropicKey, cfg.LLMTimeout)
	case "openai":
		if cfg.OpenAIKey == "" {
			slog.Warn("OPENAI_API_KEY not set, using rule-based summaries")
			return nil
		}
		inner = llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.LLMTimeout)
	default:
		log.Fatalf("unknown LLM provider: %q (valid: openai, anthropic)", cfg.LLMProvider)
	}
	return []llm.Summarizer{llm.Retrying{Inner: inner, Retries: cfg.LLMRetries}}
}

func marketSource(cfg config.Config) market.Source {
	if cfg.MarketURL != "" {
		return market.NewHTTPSource(cfg.MarketURL)
	}
	slog.Warn("MARKET_URL not set, every cycle will publish synthetic data")
	return market.SourceFunc(func(ctx context.Context) ([]market.Quote, error) {
		return nil, errors.New("no market source configured")
	})
}
