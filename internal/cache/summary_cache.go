package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tradedesk/pkg/llm"

	"github.com/redis/go-redis/v9"
)

const summaryKeyPrefix = "tradedesk:summary:"

// SummaryCache wraps a SummaryClient and keeps successful summaries in
// Redis keyed by the exact headline block. Redis failures fall through to
// the wrapped client.
type SummaryCache struct {
	redis *redis.Client
	next  llm.SummaryClient
	ttl   time.Duration
}

func NewSummaryCache(rdb *redis.Client, next llm.SummaryClient, ttl time.Duration) *SummaryCache {
	return &SummaryCache{redis: rdb, next: next, ttl: ttl}
}

type cachedSummary struct {
	Summary   string `json:"summary"`
	ModelUsed string `json:"model_used"`
}

func (c *SummaryCache) Summarize(ctx context.Context, headlines string) (*llm.SummaryResult, error) {
	key := summaryKey(headlines)

	cached, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entry cachedSummary
		if err := json.Unmarshal(cached, &entry); err == nil && entry.Summary != "" {
			slog.Debug("summary cache hit", "key", key)
			return &llm.SummaryResult{Summary: entry.Summary, ModelUsed: entry.ModelUsed}, nil
		}
		slog.Warn("discarding unreadable cached summary", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("error reading summary cache", "key", key, "error", err)
	}

	result, err := c.next.Summarize(ctx, headlines)
	if err != nil {
		return nil, err
	}

	if result != nil && result.Summary != "" {
		data, _ := json.Marshal(cachedSummary{Summary: result.Summary, ModelUsed: result.ModelUsed})
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Warn("error writing summary cache", "key", key, "error", err)
		}
	}

	return result, nil
}

func summaryKey(headlines string) string {
	sum := sha256.Sum256([]byte(headlines))
	return fmt.Sprintf("%s%x", summaryKeyPrefix, sum)
}
