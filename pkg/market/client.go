package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Quote is one row of the top-gainers ranking, as displayed: price and
// rate stay formatted strings because the upstream page renders them
// that way.
type Quote struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Rate  string `json:"rate"`
}

// Source produces today's top-gaining stocks, best first. The page
// scraper runs as a separate collaborator and exposes its result over
// HTTP; this package only consumes that interface.
type Source interface {
	TopGainers(ctx context.Context) ([]Quote, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Quote, error)

func (f SourceFunc) TopGainers(ctx context.Context) ([]Quote, error) {
	return f(ctx)
}

type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

func (s *HTTPSource) TopGainers(ctx context.Context) ([]Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market source status %d", resp.StatusCode)
	}

	var quotes []Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("market decode: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("market source returned no quotes")
	}
	return quotes, nil
}
