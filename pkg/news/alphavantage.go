package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AlphaVantageClient fetches ticker-scoped news sentiment items.
type AlphaVantageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	maxItems   int
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		baseURL:    "https://www.alphavantage.co/query",
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
		maxItems:   defaultMaxItems,
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, stockName string) ([]Headline, error) {
	from := time.Now().Add(-24 * time.Hour).Format("20060102T1504")
	url := fmt.Sprintf(
		"%s?function=NEWS_SENTIMENT&tickers=%s&time_from=%s&limit=%d&sort=LATEST&apikey=%s",
		c.baseURL, stockName, from, c.maxItems, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage status %d", resp.StatusCode)
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	items := make([]Headline, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		if item.Title == "" {
			continue
		}
		published := ""
		if t, err := time.Parse("20060102T150405", item.TimePublished); err == nil {
			published = t.Format(time.RFC3339)
		}
		items = append(items, Headline{
			Title:     item.Title,
			Link:      item.URL,
			Published: published,
		})
	}

	items = filterSpeculative(items)
	if len(items) > c.maxItems {
		items = items[:c.maxItems]
	}
	return items, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	TimePublished string `json:"time_published"`
}
