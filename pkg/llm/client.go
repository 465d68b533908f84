package llm

import (
	"context"
	"fmt"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type SummaryResult struct {
	Summary   string
	ModelUsed string
}

// SummaryClient sends a block of headline text to a summarization
// provider and returns the summary it produced.
type SummaryClient interface {
	Summarize(ctx context.Context, headlines string) (*SummaryResult, error)
}

// NewClient builds the SummaryClient of the named provider.
func NewClient(ctx context.Context, provider, apiKey string) (SummaryClient, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey), nil
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey), nil
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
