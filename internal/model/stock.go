package model

// Stock is one entry of the published top-gainers list.
type Stock struct {
	Rank       int        `json:"rank"`
	Name       string     `json:"name"`
	Price      string     `json:"price"`
	Rate       string     `json:"rate"`
	Summary    string     `json:"summary"`
	BullishURL string     `json:"bullish_url"`
	BearishURL string     `json:"bearish_url"`
	Sources    []Headline `json:"sources"`
}

// Headline is a single news item attached to a stock.
type Headline struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}
