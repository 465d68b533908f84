package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/google/generative-ai-go/genai"
)

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text(`{"summary":`),
				genai.Text(`"Gold steadied."}`),
			}}},
		},
	}

	got, err := parseSummary(geminiText(resp))

	assert.Equal(t, nil, err)
	assert.Equal(t, "Gold steadied.", got)
}

func TestGeminiText_NoCandidates(t *testing.T) {
	assert.Equal(t, "", geminiText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", geminiText(nil))
}
