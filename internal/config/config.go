package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"tradedesk/pkg/llm"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string
	LogLevel    slog.Level

	LLMProvider     string
	OpenAIKey       string
	AnthropicKey    string
	GeminiKey       string
	LLMTimeout      time.Duration
	SummaryCacheTTL time.Duration

	AssetCatalogPath string

	FinnhubKey      string
	AlphaVantageKey string
	MassiveKey      string
	RSSFeeds        []string
	NewsSymbols     []string
	NewsFetchLimit  int
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		FrontendURL:      os.Getenv("FRONTEND_URL"),
		LogLevel:         parseLevel(os.Getenv("LOG_LEVEL")),
		LLMProvider:      strings.ToLower(getEnvOrDefault("LLM_PROVIDER", llm.ProviderOpenAI)),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		LLMTimeout:       getEnvDurationOrDefault("LLM_TIMEOUT", 30*time.Second),
		SummaryCacheTTL:  getEnvDurationOrDefault("SUMMARY_CACHE_TTL", time.Hour),
		AssetCatalogPath: os.Getenv("ASSET_CATALOG_PATH"),
		FinnhubKey:       os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		MassiveKey:       os.Getenv("MASSIVE_API_KEY"),
		RSSFeeds:         splitList(os.Getenv("RSS_FEEDS")),
		NewsSymbols:      splitList(os.Getenv("NEWS_SYMBOLS")),
		NewsFetchLimit:   getEnvIntOrDefault("NEWS_FETCH_LIMIT", 50),
	}

	return cfg
}

// LLMKey returns the API key of the selected provider.
func (c *Config) LLMKey() string {
	switch c.LLMProvider {
	case llm.ProviderAnthropic:
		return c.AnthropicKey
	case llm.ProviderGemini:
		return c.GeminiKey
	default:
		return c.OpenAIKey
	}
}

// Validate checks the settings needed to summarize headlines.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case llm.ProviderOpenAI, llm.ProviderAnthropic, llm.ProviderGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of openai, anthropic, gemini, got %q", c.LLMProvider)
	}
	if c.LLMKey() == "" {
		return fmt.Errorf("API key for LLM provider %q is required", c.LLMProvider)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.SummaryCacheTTL < 0 {
		return fmt.Errorf("SUMMARY_CACHE_TTL must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
		slog.Warn("invalid integer env var, using default", "key", key, "value", value, "default", defaultValue)
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("invalid duration env var, using default", "key", key, "value", value, "default", defaultValue)
	}
	return defaultValue
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
