package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelName: "gemini-1.5-flash"}, nil
}

func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) Summarize(ctx context.Context, headlines string) (*SummaryResult, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(summarySystemPrompt))
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(headlines))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	summary, err := parseSummary(geminiText(resp))
	if err != nil {
		return nil, err
	}

	return &SummaryResult{
		Summary:   summary,
		ModelUsed: c.modelName,
	}, nil
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
