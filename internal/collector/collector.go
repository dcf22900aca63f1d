package collector

import (
	"context"
	"log/slog"
	"time"

	"stockpulse/internal/model"
	"stockpulse/internal/summary"
	"stockpulse/internal/synthetic"
	"stockpulse/pkg/market"
)

const maxStocks = 10

// Maintainer is what the collector needs from the cache store between
// resolutions: periodic eviction, shutdown save, stats for the log.
type Maintainer interface {
	Cleanup()
	Save()
	Stats() string
}

// Publisher pushes a finished stock list out.
type Publisher interface {
	Publish(ctx context.Context, stocks []model.Stock) error
}

// Collector runs the whole pipeline on a fixed cadence: fetch the
// top-gainers ranking, resolve each stock's summary through the cache,
// publish the list. Every source failure falls back to a synthetic batch
// so downstream consumers always see a non-empty list.
type Collector struct {
	source    market.Source
	resolver  *summary.Resolver
	publisher Publisher
	cache     Maintainer

	cleanupEvery int
	cycleTimeout time.Duration

	consecutiveFailures int

	now func() time.Time
}

func New(source market.Source, resolver *summary.Resolver, publisher Publisher, cache Maintainer, cleanupEvery int) *Collector {
	if cleanupEvery <= 0 {
		cleanupEvery = 60
	}
	return &Collector{
		source:       source,
		resolver:     resolver,
		publisher:    publisher,
		cache:        cache,
		cleanupEvery: cleanupEvery,
		cycleTimeout: 90 * time.Second,
		now:          time.Now,
	}
}

// Run loops until ctx is done, then attempts a final cache save.
func (c *Collector) Run(ctx context.Context) {
	cycle := 0
	for {
		cycle++
		c.runCycle(ctx, cycle)

		select {
		case <-ctx.Done():
			c.cache.Save()
			slog.Info("collector stopped", "cycles", cycle)
			return
		case <-time.After(updateInterval(c.now())):
		}
	}
}

func (c *Collector) runCycle(ctx context.Context, cycle int) {
	slog.Info("cycle start", "cycle", cycle, "cache", c.cache.Stats())

	if cycle%c.cleanupEvery == 0 {
		c.cache.Cleanup()
	}

	cctx, cancel := context.WithTimeout(ctx, c.cycleTimeout)
	defer cancel()

	stocks := c.collect(cctx)

	for i := range stocks {
		record := c.resolver.Resolve(cctx, stocks[i].Name, stocks[i].Rate)
		stocks[i].Summary = record.Summary
		stocks[i].BullishURL = record.BullishURL
		stocks[i].BearishURL = record.BearishURL
		stocks[i].Sources = record.Sources
	}

	if err := c.publisher.Publish(cctx, stocks); err != nil {
		slog.Error("publish failed", "cycle", cycle, "error", err)
		return
	}
	slog.Info("cycle complete", "cycle", cycle, "stocks", len(stocks))
}

// collect fetches the live ranking, or degrades to the synthetic batch
// for the current ten-minute bucket.
func (c *Collector) collect(ctx context.Context) []model.Stock {
	quotes, err := c.source.TopGainers(ctx)
	if err != nil || len(quotes) == 0 {
		c.consecutiveFailures++
		slog.Warn("no usable market data, using synthetic batch",
			"consecutive_failures", c.consecutiveFailures, "error", err)
		return synthetic.Batch(synthetic.BucketFor(c.now()), synthetic.DefaultSeed)
	}
	c.consecutiveFailures = 0

	if len(quotes) > maxStocks {
		quotes = quotes[:maxStocks]
	}
	stocks := make([]model.Stock, len(quotes))
	for i, q := range quotes {
		stocks[i] = model.Stock{
			Rank:  i + 1,
			Name:  q.Name,
			Price: q.Price,
			Rate:  q.Rate,
		}
	}
	return stocks
}

var kst = time.FixedZone("KST", 9*60*60)

// updateInterval is 10s while the Korean market is open, 60s otherwise.
func updateInterval(now time.Time) time.Duration {
	if isMarketHours(now) {
		return 10 * time.Second
	}
	return 60 * time.Second
}

// isMarketHours reports whether now falls inside KRX trading hours,
// weekdays 09:00-15:30 KST.
func isMarketHours(now time.Time) bool {
	t := now.In(kst)
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= 9*60 && minutes <= 15*60+30
}
