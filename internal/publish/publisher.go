package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stockpulse/internal/model"
)

// Publisher pushes a whole stock list to the API's update endpoint,
// replacing whatever list it held before.
type Publisher struct {
	url        string
	httpClient *http.Client
}

func New(url string) *Publisher {
	return &Publisher{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *Publisher) Publish(ctx context.Context, stocks []model.Stock) error {
	body, err := json.Marshal(stocks)
	if err != nil {
		return fmt.Errorf("encoding stocks: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("publishing stocks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("publish endpoint status %d", resp.StatusCode)
	}
	return nil
}
