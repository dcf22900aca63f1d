package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"stockpulse/pkg/news"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"bullish":"a"}`, `{"bullish":"a"}`},
		{"fenced", "```json\n{\"bullish\":\"a\"}\n```", `{"bullish":"a"}`},
		{"bare fence", "```\n{\"bullish\":\"a\"}\n```", `{"bullish":"a"}`},
		{"surrounding prose", `Here you go: {"bullish":"a"} hope that helps`, `{"bullish":"a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.input))
		})
	}
}

func TestSummaryReplyClampsIndices(t *testing.T) {
	reply := summaryReply{Bullish: "up", Bearish: "down", BullishIdx: 1, BearishIdx: 7}

	res := reply.toResult(2)

	assert.Equal(t, 1, res.BullishIdx)
	assert.Equal(t, 0, res.BearishIdx)
}

func TestRuleBasedNoHeadlines(t *testing.T) {
	res, err := RuleBased{}.Summarize(context.Background(), SummarizeInput{StockName: "Acme", Rate: "+25.32%"})

	assert.Equal(t, nil, err)
	assert.Equal(t, NoNewsLine, res.Bullish)
	assert.Equal(t, NoNewsLine, res.Bearish)
	assert.Equal(t, 0, res.BullishIdx)
	assert.Equal(t, 0, res.BearishIdx)
}

func TestRuleBasedSingleHeadline(t *testing.T) {
	input := SummarizeInput{
		StockName: "Acme",
		Rate:      "+25.32%",
		Headlines: []news.Headline{{Title: "Acme wins contract", Link: "https://example.com/1"}},
	}

	res, err := RuleBased{}.Summarize(context.Background(), input)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Acme wins contract", res.Bullish)
	assert.Equal(t, DefaultBearishLine, res.Bearish)
	assert.Equal(t, 1, res.BullishIdx)
	assert.Equal(t, 0, res.BearishIdx)
}

type flakySummarizer struct {
	failures int
	calls    int
}

func (f *flakySummarizer) Summarize(ctx context.Context, input SummarizeInput) (*SummaryResult, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient")
	}
	return &SummaryResult{Bullish: "ok", Bearish: "ok"}, nil
}

func TestRetryingRecovers(t *testing.T) {
	inner := &flakySummarizer{failures: 2}
	r := Retrying{Inner: inner, Retries: 2}

	res, err := r.Summarize(context.Background(), SummarizeInput{})

	assert.Equal(t, nil, err)
	assert.Equal(t, "ok", res.Bullish)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryingGivesUp(t *testing.T) {
	inner := &flakySummarizer{failures: 10}
	r := Retrying{Inner: inner, Retries: 2}

	_, err := r.Summarize(context.Background(), SummarizeInput{})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 3, inner.calls)
}
