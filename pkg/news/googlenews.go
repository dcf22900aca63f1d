package news

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	defaultMaxItems     = 6
	defaultFetchTimeout = 4 * time.Second
)

// GoogleNewsClient reads the Google News RSS search feed. It needs no API
// key, which makes it the default headline source.
type GoogleNewsClient struct {
	parser   *gofeed.Parser
	baseURL  string
	maxItems int
	timeout  time.Duration
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		parser:   gofeed.NewParser(),
		baseURL:  "https://news.google.com/rss/search",
		maxItems: defaultMaxItems,
		timeout:  defaultFetchTimeout,
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

func (c *GoogleNewsClient) Fetch(ctx context.Context, stockName string) ([]Headline, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// when:1d keeps the feed to the last 24 hours.
	q := url.QueryEscape(stockName + " when:1d")
	feedURL := fmt.Sprintf("%s?q=%s&hl=ko&gl=KR&ceid=KR:ko", c.baseURL, q)

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("google news fetch for %s: %w", stockName, err)
	}

	items := make([]Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}
		items = append(items, Headline{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
		})
	}

	items = filterSpeculative(items)
	if len(items) > c.maxItems {
		items = items[:c.maxItems]
	}
	return items, nil
}
