package summary

import (
	"context"
	"log/slog"

	"stockpulse/internal/model"
	"stockpulse/pkg/llm"
	"stockpulse/pkg/news"
)

// Cache is what the resolver needs from the cache store.
type Cache interface {
	Get(name string) (model.SummaryRecord, bool)
	Set(name string, record model.SummaryRecord)
}

// Resolver produces the two-line bullish/bearish summary for one stock,
// consulting the cache first. On a miss it fetches headlines, runs the
// summarizer strategies in order until one succeeds, and writes the
// result through the cache. The chain always ends with the rule-based
// summarizer, so Resolve always returns a usable record.
type Resolver struct {
	cache      Cache
	newsClient news.Client
	strategies []llm.Summarizer
	maxLineLen int
}

func NewResolver(cache Cache, newsClient news.Client, maxLineLen int, strategies ...llm.Summarizer) *Resolver {
	if maxLineLen <= 0 {
		maxLineLen = DefaultMaxLineLen
	}
	return &Resolver{
		cache:      cache,
		newsClient: newsClient,
		strategies: append(strategies, llm.RuleBased{}),
		maxLineLen: maxLineLen,
	}
}

func (r *Resolver) Resolve(ctx context.Context, name, rate string) model.SummaryRecord {
	if record, ok := r.cache.Get(name); ok {
		return record
	}

	slog.Info("fetching fresh summary", "stock", name)

	headlines, err := r.newsClient.Fetch(ctx, name)
	if err != nil {
		slog.Warn("headline fetch failed, continuing without news", "stock", name, "source", r.newsClient.Name(), "error", err)
		headlines = nil
	}

	result := r.summarize(ctx, llm.SummarizeInput{
		StockName: name,
		Rate:      rate,
		Headlines: headlines,
	})

	record := buildRecord(result, headlines, r.maxLineLen)
	r.cache.Set(name, record)
	return record
}

func (r *Resolver) summarize(ctx context.Context, input llm.SummarizeInput) *llm.SummaryResult {
	for _, strategy := range r.strategies {
		result, err := strategy.Summarize(ctx, input)
		if err == nil {
			return result
		}
		slog.Warn("summarizer failed, trying next", "stock", input.StockName, "error", err)
	}
	// Unreachable as long as the chain ends with RuleBased.
	result, _ := llm.RuleBased{}.Summarize(ctx, input)
	return result
}

func buildRecord(result *llm.SummaryResult, headlines []news.Headline, maxLineLen int) model.SummaryRecord {
	record := model.SummaryRecord{
		Summary: composeTwoLines(result, maxLineLen),
		Sources: make([]model.Headline, 0, len(headlines)),
	}
	for _, h := range headlines {
		record.Sources = append(record.Sources, model.Headline{
			Title:     h.Title,
			Link:      h.Link,
			Published: h.Published,
		})
	}
	if result.BullishIdx >= 1 && result.BullishIdx <= len(headlines) {
		record.BullishURL = headlines[result.BullishIdx-1].Link
	}
	if result.BearishIdx >= 1 && result.BearishIdx <= len(headlines) {
		record.BearishURL = headlines[result.BearishIdx-1].Link
	}
	return record
}
