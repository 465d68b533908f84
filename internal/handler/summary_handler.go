package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tradedesk/internal/model"
	"tradedesk/pkg/llm"
	"tradedesk/pkg/relevance"

	"github.com/gin-gonic/gin"
)

type SummaryStore interface {
	SaveSummary(summary *model.NewsSummary) error
	GetSummaries(symbol string, limit, offset int) ([]model.NewsSummary, error)
	GetSummaryTotal(symbol string) (int, error)
}

type SummaryHandler struct {
	repository SummaryStore
	news       *NewsHandler
	summarizer llm.SummaryClient
	timeout    time.Duration
}

func NewSummaryHandler(repository SummaryStore, news *NewsHandler, summarizer llm.SummaryClient, timeout time.Duration) *SummaryHandler {
	return &SummaryHandler{
		repository: repository,
		news:       news,
		summarizer: summarizer,
		timeout:    timeout,
	}
}

// Summarize handles a free-form headline block.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, ok := h.summarize(c, req.NewsHeadlines)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{Summary: result.Summary})
}

// SummarizeAssetNews summarizes the headlines relevant to an asset and
// records the summary.
func (h *SummaryHandler) SummarizeAssetNews(c *gin.Context) {
	symbol := c.Param("symbol")

	asset, articles, ok := h.news.relevantNews(c, symbol)
	if !ok {
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No relevant news for asset"})
		return
	}

	headlines := relevance.Headlines(articles)

	result, ok := h.summarize(c, headlines)
	if !ok {
		return
	}

	summary := &model.NewsSummary{
		Symbol:       asset.Symbol,
		Headlines:    headlines,
		Summary:      result.Summary,
		ArticleCount: len(articles),
		ModelUsed:    result.ModelUsed,
		CreatedAt:    time.Now(),
	}

	if err := h.repository.SaveSummary(summary); err != nil {
		slog.Error("error saving summary", "error", err, "symbol", asset.Symbol)
	}

	c.JSON(http.StatusOK, toSummaryResponse(*summary))
}

func (h *SummaryHandler) summarize(c *gin.Context, headlines string) (*llm.SummaryResult, bool) {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := llm.SummarizeHeadlines(ctx, h.summarizer, headlines)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, llm.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": llm.UserMessage(err)})
		return nil, false
	}

	return result, true
}

func (h *SummaryHandler) GetSummaries(c *gin.Context) {
	symbol := c.Query("symbol")
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	summaries, err := h.repository.GetSummaries(symbol, limit, offset)
	if err != nil {
		slog.Error("error fetching summaries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetSummaryTotal(symbol)
	if err != nil {
		slog.Error("error fetching summary total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := SummariesResponse{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		History: []SummaryResponse{},
	}

	if len(summaries) > 0 {
		latest := toSummaryResponse(summaries[0])
		res.Latest = &latest
		for _, s := range summaries[1:] {
			res.History = append(res.History, toSummaryResponse(s))
		}
	}

	c.JSON(http.StatusOK, res)
}
