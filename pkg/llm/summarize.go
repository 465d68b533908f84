package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const summarySystemPrompt = `You are a financial news editor. You will receive a block of market news headlines, one per line.

Rules:
- Write a concise, neutral summary of the overall picture in 2 to 4 sentences
- Mention the companies, assets, numbers and percentages that matter
- Do not add facts that are not in the headlines
- No investment advice

Output as JSON only, no other text:
{
  "summary": "the summary"
}`

const FailureMessage = "Failed to summarize news. Please try again."

const invalidInputMessage = "Please provide news headlines to summarize."

var (
	ErrInvalidInput      = errors.New("news headlines are empty")
	ErrUpstreamFailure   = errors.New("summarization service failed")
	ErrMalformedResponse = errors.New("malformed summarization response")
)

// SummarizeHeadlines validates the headline block and makes exactly one
// call to client. Every client failure, including a response without a
// summary, comes back wrapped in ErrUpstreamFailure.
func SummarizeHeadlines(ctx context.Context, client SummaryClient, headlines string) (*SummaryResult, error) {
	if strings.TrimSpace(headlines) == "" {
		return nil, ErrInvalidInput
	}

	result, err := client.Summarize(ctx, headlines)
	if err != nil {
		slog.Error("error summarizing headlines", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	if result == nil || strings.TrimSpace(result.Summary) == "" {
		slog.Error("summarization returned no summary")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, ErrMalformedResponse)
	}

	return result, nil
}

// UserMessage maps a SummarizeHeadlines error to the text shown to users.
func UserMessage(err error) string {
	if errors.Is(err, ErrInvalidInput) {
		return invalidInputMessage
	}
	return FailureMessage
}

func parseSummary(content string) (string, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Summary *string `json:"summary"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", fmt.Errorf("%w: %v, content: %s", ErrMalformedResponse, err, content)
	}

	if parsed.Summary == nil || strings.TrimSpace(*parsed.Summary) == "" {
		return "", fmt.Errorf("%w: missing summary field, content: %s", ErrMalformedResponse, content)
	}

	return strings.TrimSpace(*parsed.Summary), nil
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
