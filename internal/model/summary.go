package model

// SummaryRecord is the cached per-stock news summary: exactly two
// marker-prefixed lines joined by a newline, plus optional source links.
type SummaryRecord struct {
	Summary    string     `json:"summary"`
	BullishURL string     `json:"bullish_url"`
	BearishURL string     `json:"bearish_url"`
	Sources    []Headline `json:"sources"`
}
