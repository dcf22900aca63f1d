package llm

import (
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicClientDefaults(t *testing.T) {
	c := NewAnthropicClient("test-key", 12*time.Second)

	assert.NotEqual(t, nil, c.client)
	// anthropic.ModelClaudeHaiku4_5 is not defined in SDK v1.9.0; same value.
	assert.Equal(t, anthropic.Model("claude-haiku-4-5"), c.model)
}
