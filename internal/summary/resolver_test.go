package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"stockpulse/internal/model"
	"stockpulse/pkg/llm"
	"stockpulse/pkg/news"
)

type fakeCache struct {
	entries map[string]model.SummaryRecord
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]model.SummaryRecord)}
}

func (f *fakeCache) Get(name string) (model.SummaryRecord, bool) {
	rec, ok := f.entries[name]
	return rec, ok
}

func (f *fakeCache) Set(name string, record model.SummaryRecord) {
	f.entries[name] = record
	f.sets++
}

type fakeNews struct {
	items []news.Headline
	err   error
	calls int
}

func (f *fakeNews) Fetch(ctx context.Context, stockName string) ([]news.Headline, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeNews) Name() string { return "fake" }

type failingSummarizer struct{ calls int }

func (f *failingSummarizer) Summarize(ctx context.Context, input llm.SummarizeInput) (*llm.SummaryResult, error) {
	f.calls++
	return nil, errors.New("llm unavailable")
}

func TestResolveCacheHitSkipsFetch(t *testing.T) {
	cached := model.SummaryRecord{Summary: "🟢 Bullish: cached\n🔴 Bearish: cached"}
	cache := newFakeCache()
	cache.entries["Acme"] = cached
	feed := &fakeNews{}

	r := NewResolver(cache, feed, 60)
	got := r.Resolve(context.Background(), "Acme", "+25.32%")

	assert.Equal(t, cached, got)
	assert.Equal(t, 0, feed.calls)
	assert.Equal(t, 0, cache.sets)
}

func TestResolveNoHeadlines(t *testing.T) {
	cache := newFakeCache()
	r := NewResolver(cache, &fakeNews{}, 60)

	got := r.Resolve(context.Background(), "Acme", "+25.32%")

	lines := strings.Split(got.Summary, "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, BullishMarker+" "+llm.NoNewsLine, lines[0])
	assert.Equal(t, BearishMarker+" "+llm.NoNewsLine, lines[1])
	assert.Equal(t, "", got.BullishURL)
	assert.Equal(t, "", got.BearishURL)
	assert.Equal(t, 0, len(got.Sources))
	assert.Equal(t, 1, cache.sets)
}

func TestResolveSingleHeadline(t *testing.T) {
	feed := &fakeNews{items: []news.Headline{
		{Title: "Acme lands major deal", Link: "https://example.com/deal", Published: "2026-02-26"},
	}}
	cache := newFakeCache()
	r := NewResolver(cache, feed, 60)

	got := r.Resolve(context.Background(), "Acme", "+25.32%")

	assert.Equal(t, "https://example.com/deal", got.BullishURL)
	assert.Equal(t, "", got.BearishURL)
	assert.Equal(t, 1, len(got.Sources))
	assert.Equal(t, "Acme lands major deal", got.Sources[0].Title)
	assert.Equal(t, true, strings.Contains(got.Summary, "Acme lands major deal"))
}

func TestResolveFetchErrorTreatedAsNoHeadlines(t *testing.T) {
	feed := &fakeNews{err: errors.New("timeout")}
	cache := newFakeCache()
	r := NewResolver(cache, feed, 60)

	got := r.Resolve(context.Background(), "Acme", "+25.32%")

	assert.Equal(t, true, strings.Contains(got.Summary, llm.NoNewsLine))
	assert.Equal(t, 1, cache.sets)
}

func TestResolveFallsBackToRuleBased(t *testing.T) {
	feed := &fakeNews{items: []news.Headline{
		{Title: "Acme beats on revenue", Link: "https://example.com/beat"},
		{Title: "Acme faces lawsuit", Link: "https://example.com/suit"},
	}}
	failing := &failingSummarizer{}
	cache := newFakeCache()
	r := NewResolver(cache, feed, 60, llm.Retrying{Inner: failing, Retries: 1})

	got := r.Resolve(context.Background(), "Acme", "+25.32%")

	assert.Equal(t, 2, failing.calls)
	assert.Equal(t, "https://example.com/beat", got.BullishURL)
	assert.Equal(t, "https://example.com/suit", got.BearishURL)
	assert.Equal(t, true, strings.HasPrefix(got.Summary, BullishMarker))
}

func TestResolveMissWritesCache(t *testing.T) {
	cache := newFakeCache()
	feed := &fakeNews{}
	r := NewResolver(cache, feed, 60)

	first := r.Resolve(context.Background(), "Acme", "+10.00%")
	second := r.Resolve(context.Background(), "Acme", "+10.00%")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, feed.calls)
	assert.Equal(t, 1, cache.sets)
}
