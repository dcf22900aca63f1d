package llm

import (
	"context"
	"fmt"
	"strings"

	"stockpulse/pkg/news"
)

// SummarizeInput is what a summarizer sees for one stock: its display
// name, the current rate-of-change string, and today's headlines.
type SummarizeInput struct {
	StockName string
	Rate      string
	Headlines []news.Headline
}

// SummaryResult is a single structured reply: one bullish and one bearish
// line, each optionally pointing at a 1-based headline index (0 = none).
type SummaryResult struct {
	Bullish    string
	Bearish    string
	BullishIdx int
	BearishIdx int
}

// Summarizer produces a bullish/bearish reading of one stock's headlines.
type Summarizer interface {
	Summarize(ctx context.Context, input SummarizeInput) (*SummaryResult, error)
}

const systemPrompt = `You are a financial news analyst. Given a stock, its rate of change today, and a numbered list of today's headlines, produce one bullish line and one bearish line.

Rules:
1. Each line is a single short sentence, under 60 characters
2. Base lines on the headlines; do not invent events
3. If no headline supports a side, write a cautious generic line
4. bullish_idx / bearish_idx reference the headline a line is based on (1-based), or 0 when no headline supports it

Output as JSON only, no other text:
{
  "bullish": "bullish line",
  "bearish": "bearish line",
  "bullish_idx": 1,
  "bearish_idx": 2
}`

func formatUserPrompt(input SummarizeInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stock: %s\nRate today: %s\nHeadlines:\n", input.StockName, input.Rate)
	if len(input.Headlines) == 0 {
		sb.WriteString("(none)\n")
	}
	for i, h := range input.Headlines {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, h.Title)
	}
	return sb.String()
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

type summaryReply struct {
	Bullish    string `json:"bullish"`
	Bearish    string `json:"bearish"`
	BullishIdx int    `json:"bullish_idx"`
	BearishIdx int    `json:"bearish_idx"`
}

func (r summaryReply) toResult(headlineCount int) *SummaryResult {
	res := &SummaryResult{Bullish: r.Bullish, Bearish: r.Bearish}
	if r.BullishIdx >= 1 && r.BullishIdx <= headlineCount {
		res.BullishIdx = r.BullishIdx
	}
	if r.BearishIdx >= 1 && r.BearishIdx <= headlineCount {
		res.BearishIdx = r.BearishIdx
	}
	return res
}

// Retrying wraps a Summarizer with a bounded retry count on failure.
type Retrying struct {
	Inner   Summarizer
	Retries int
}

func (r Retrying) Summarize(ctx context.Context, input SummarizeInput) (*SummaryResult, error) {
	var lastErr error
	for attempt := 0; attempt <= r.Retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.Inner.Summarize(ctx, input)
		if err == nil {
			return res, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
