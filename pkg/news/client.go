package news

import (
	"context"
	"strings"
)

// Headline is one news item about a stock.
type Headline struct {
	Title     string
	Link      string
	Published string
}

// Client fetches recent headlines for a single stock by display name.
// Implementations cover the last 24 hours and cap the result count;
// callers treat any error as "no headlines found".
type Client interface {
	Fetch(ctx context.Context, stockName string) ([]Headline, error)
	Name() string
}

// Headlines built on speculation rather than reported events are dropped
// before summarization.
var speculativeMarkers = []string{
	"rumor",
	"rumour",
	"speculat",
	"estimate-only",
	"unconfirmed",
	"루머",
	"추측",
	"전망치",
}

func filterSpeculative(items []Headline) []Headline {
	kept := make([]Headline, 0, len(items))
	for _, h := range items {
		if isSpeculative(h.Title) {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

func isSpeculative(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range speculativeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
