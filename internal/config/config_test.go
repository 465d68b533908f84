package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("PORT", "")
	t.Setenv("LLM_TIMEOUT", "")
	t.Setenv("SUMMARY_CACHE_TTL", "")
	t.Setenv("NEWS_FETCH_LIMIT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RSS_FEEDS", "")

	cfg := Load()

	assert.Equal(t, nil, cfg.Validate())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "sk-test", cfg.LLMKey())
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, time.Hour, cfg.SummaryCacheTTL)
	assert.Equal(t, 50, cfg.NewsFetchLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 0, len(cfg.RSSFeeds))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("SUMMARY_CACHE_TTL", "0s")
	t.Setenv("NEWS_FETCH_LIMIT", "abc")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RSS_FEEDS", "https://a.example/rss, ,https://b.example/rss")
	t.Setenv("NEWS_SYMBOLS", "AAPL,TCS")

	cfg := Load()

	assert.Equal(t, nil, cfg.Validate())
	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, "ak-test", cfg.LLMKey())
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, time.Duration(0), cfg.SummaryCacheTTL)
	assert.Equal(t, 50, cfg.NewsFetchLimit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example/rss", "https://b.example/rss"}, cfg.RSSFeeds)
	assert.Equal(t, []string{"AAPL", "TCS"}, cfg.NewsSymbols)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid openai", cfg: Config{LLMProvider: "openai", OpenAIKey: "k", LLMTimeout: time.Second}},
		{name: "valid gemini", cfg: Config{LLMProvider: "gemini", GeminiKey: "k", LLMTimeout: time.Second}},
		{name: "unknown provider", cfg: Config{LLMProvider: "mistral", OpenAIKey: "k", LLMTimeout: time.Second}, wantErr: true},
		{name: "missing key", cfg: Config{LLMProvider: "anthropic", OpenAIKey: "k", LLMTimeout: time.Second}, wantErr: true},
		{name: "zero timeout", cfg: Config{LLMProvider: "openai", OpenAIKey: "k"}, wantErr: true},
		{name: "negative ttl", cfg: Config{LLMProvider: "openai", OpenAIKey: "k", LLMTimeout: time.Second, SummaryCacheTTL: -time.Second}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
