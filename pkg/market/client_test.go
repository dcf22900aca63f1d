package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestTopGainers(t *testing.T) {
	payload := []Quote{
		{Name: "삼성전자", Price: "87,500원", Rate: "+29.95%"},
		{Name: "SK하이닉스", Price: "142,300원", Rate: "+25.32%"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL)

	quotes, err := source.TopGainers(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(quotes))
	assert.Equal(t, "삼성전자", quotes[0].Name)
	assert.Equal(t, "+29.95%", quotes[0].Rate)
}

func TestTopGainersEmptyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL)

	_, err := source.TopGainers(context.Background())

	assert.NotEqual(t, nil, err)
}

func TestTopGainersBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL)

	_, err := source.TopGainers(context.Background())

	assert.NotEqual(t, nil, err)
}
