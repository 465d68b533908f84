package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"tradedesk/pkg/llm"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/assert/v2"
	"github.com/redis/go-redis/v9"
)

type countingClient struct {
	result *llm.SummaryResult
	err    error
	calls  int
}

func (c *countingClient) Summarize(ctx context.Context, headlines string) (*llm.SummaryResult, error) {
	c.calls++
	return c.result, c.err
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestSummaryCache_HitSkipsUpstream(t *testing.T) {
	_, rdb := newTestRedis(t)
	next := &countingClient{result: &llm.SummaryResult{Summary: "Rates unchanged.", ModelUsed: "fake"}}
	cache := NewSummaryCache(rdb, next, time.Hour)

	first, err := cache.Summarize(context.Background(), "RBI holds rates")
	assert.Equal(t, nil, err)
	second, err := cache.Summarize(context.Background(), "RBI holds rates")
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, "Rates unchanged.", first.Summary)
	assert.Equal(t, "Rates unchanged.", second.Summary)
	assert.Equal(t, "fake", second.ModelUsed)
}

func TestSummaryCache_DifferentHeadlinesMiss(t *testing.T) {
	_, rdb := newTestRedis(t)
	next := &countingClient{result: &llm.SummaryResult{Summary: "Summary."}}
	cache := NewSummaryCache(rdb, next, time.Hour)

	cache.Summarize(context.Background(), "RBI holds rates")
	cache.Summarize(context.Background(), "BTC rallies past $70k")

	assert.Equal(t, 2, next.calls)
}

func TestSummaryCache_ErrorsAreNotCached(t *testing.T) {
	_, rdb := newTestRedis(t)
	next := &countingClient{err: errors.New("upstream down")}
	cache := NewSummaryCache(rdb, next, time.Hour)

	_, err := cache.Summarize(context.Background(), "RBI holds rates")
	assert.NotEqual(t, nil, err)
	_, err = cache.Summarize(context.Background(), "RBI holds rates")
	assert.NotEqual(t, nil, err)

	assert.Equal(t, 2, next.calls)
}

func TestSummaryCache_ExpiresAfterTTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &countingClient{result: &llm.SummaryResult{Summary: "Summary."}}
	cache := NewSummaryCache(rdb, next, time.Minute)

	cache.Summarize(context.Background(), "RBI holds rates")
	mr.FastForward(2 * time.Minute)
	cache.Summarize(context.Background(), "RBI holds rates")

	assert.Equal(t, 2, next.calls)
}

func TestSummaryCache_RedisDownFallsThrough(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Close()
	next := &countingClient{result: &llm.SummaryResult{Summary: "Summary."}}
	cache := NewSummaryCache(rdb, next, time.Hour)

	result, err := cache.Summarize(context.Background(), "RBI holds rates")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Summary.", result.Summary)
	assert.Equal(t, 1, next.calls)
}
