package llm

import "context"

// Canned lines used when headlines give nothing to work with.
const (
	NoNewsLine         = "no notable news"
	DefaultBearishLine = "short-term volatility, profit-taking risk"
)

// RuleBased is the deterministic fallback summarizer: bullish from the
// top headline, a fixed cautionary bearish line. It never fails, so a
// strategy chain that ends with it always produces a result.
type RuleBased struct{}

func (RuleBased) Summarize(_ context.Context, input SummarizeInput) (*SummaryResult, error) {
	if len(input.Headlines) == 0 {
		return &SummaryResult{
			Bullish: NoNewsLine,
			Bearish: NoNewsLine,
		}, nil
	}

	res := &SummaryResult{
		Bullish:    input.Headlines[0].Title,
		Bearish:    DefaultBearishLine,
		BullishIdx: 1,
	}
	if len(input.Headlines) >= 2 {
		res.BearishIdx = 2
	}
	return res, nil
}
