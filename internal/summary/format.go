package summary

import (
	"strings"

	"stockpulse/pkg/llm"
)

const (
	BullishMarker = "🟢 Bullish:"
	BearishMarker = "🔴 Bearish:"

	DefaultMaxLineLen = 60
)

// trimLine collapses runs of whitespace and truncates to maxLen runes
// with an ellipsis.
func trimLine(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "…"
	}
	return s
}

// forceTwoLines guarantees the output shape: exactly two lines, the first
// bullish-marked and the second bearish-marked, each trimmed. Missing
// lines are synthesized from whatever non-empty input lines exist, or
// from the canned no-news text.
func forceTwoLines(text string, maxLen int) string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	var bullish, bearish string
	for _, ln := range lines {
		if bullish == "" && strings.HasPrefix(ln, "🟢") {
			bullish = ln
		}
		if bearish == "" && strings.HasPrefix(ln, "🔴") {
			bearish = ln
		}
	}

	if bullish == "" {
		first := llm.NoNewsLine
		if len(lines) > 0 {
			first = lines[0]
		}
		bullish = BullishMarker + " " + trimLine(first, maxLen)
	}
	if bearish == "" {
		second := llm.NoNewsLine
		if len(lines) > 1 {
			second = lines[1]
		}
		bearish = BearishMarker + " " + trimLine(second, maxLen)
	}

	return trimLine(bullish, maxLen) + "\n" + trimLine(bearish, maxLen)
}

func composeTwoLines(result *llm.SummaryResult, maxLen int) string {
	bullish := result.Bullish
	if strings.TrimSpace(bullish) == "" {
		bullish = llm.NoNewsLine
	}
	bearish := result.Bearish
	if strings.TrimSpace(bearish) == "" {
		bearish = llm.NoNewsLine
	}
	text := BullishMarker + " " + bullish + "\n" + BearishMarker + " " + bearish
	return forceTwoLines(text, maxLen)
}
