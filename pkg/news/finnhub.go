package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubClient fetches company news by ticker symbol. Useful when the
// stock names in the ranking are US tickers; selected when a key is
// configured.
type FinnhubClient struct {
	client   *finnhub.DefaultApiService
	maxItems int
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client, maxItems: defaultMaxItems}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(ctx context.Context, stockName string) ([]Headline, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultFetchTimeout)
	defer cancel()

	now := time.Now()
	res, _, err := c.client.CompanyNews(ctx).
		Symbol(stockName).
		From(now.AddDate(0, 0, -1).Format("2006-01-02")).
		To(now.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub company news for %s: %w", stockName, err)
	}

	var items []Headline
	for _, n := range res {
		h := Headline{}
		if n.Headline != nil {
			h.Title = *n.Headline
		}
		if n.Url != nil {
			h.Link = *n.Url
		}
		if n.Datetime != nil {
			h.Published = time.Unix(*n.Datetime, 0).Format(time.RFC3339)
		}
		if h.Title == "" {
			continue
		}
		items = append(items, h)
	}

	items = filterSpeculative(items)
	if len(items) > c.maxItems {
		items = items[:c.maxItems]
	}
	return items, nil
}
