package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAlphaVantageFetch(t *testing.T) {
	payload := map[string]interface{}{
		"feed": []map[string]interface{}{
			{
				"title":          "Acme Holds Investor Day",
				"url":            "https://example.com/investor-day",
				"time_published": "20260226T120000",
			},
			{
				"title":          "Unconfirmed reports of Acme layoffs",
				"url":            "https://example.com/unconfirmed",
				"time_published": "20260226T110000",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ACME", r.URL.Query().Get("tickers"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewAlphaVantageClient("test-key")
	client.baseURL = srv.URL

	items, err := client.Fetch(context.Background(), "ACME")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Acme Holds Investor Day", items[0].Title)
	assert.Equal(t, "https://example.com/investor-day", items[0].Link)
	assert.NotEqual(t, "", items[0].Published)
}

func TestAlphaVantageFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewAlphaVantageClient("test-key")
	client.baseURL = srv.URL

	_, err := client.Fetch(context.Background(), "ACME")

	assert.NotEqual(t, nil, err)
}
