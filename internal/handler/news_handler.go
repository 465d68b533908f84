package handler

import (
	"log/slog"
	"net/http"

	"tradedesk/internal/model"
	"tradedesk/pkg/relevance"

	"github.com/gin-gonic/gin"
)

// matchWindow is how many of the newest articles relevance matching scans.
const matchWindow = 200

type NewsStore interface {
	GetRecentArticles(limit, offset int) ([]model.NewsArticle, error)
	GetArticleTotal() (int, error)
}

type NewsHandler struct {
	assets  AssetStore
	news    NewsStore
	matcher relevance.Matcher
}

func NewNewsHandler(assets AssetStore, news NewsStore, matcher relevance.Matcher) *NewsHandler {
	return &NewsHandler{assets: assets, news: news, matcher: matcher}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	articles, err := h.news.GetRecentArticles(limit, offset)
	if err != nil {
		slog.Error("error fetching news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.news.GetArticleTotal()
	if err != nil {
		slog.Error("error fetching news total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, FeedResponse{
		Articles: toArticleResponses(articles),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *NewsHandler) GetAssetNews(c *gin.Context) {
	symbol := c.Param("symbol")

	asset, articles, ok := h.relevantNews(c, symbol)
	if !ok {
		return
	}

	total := len(articles)
	if limit := getQueryLimit(c); len(articles) > limit {
		articles = articles[:limit]
	}

	c.JSON(http.StatusOK, AssetNewsResponse{
		Asset:    toAssetResponse(*asset),
		Articles: toArticleResponses(articles),
		Total:    total,
	})
}

// relevantNews resolves the asset and matches it against the newest
// articles. On failure it has already written the response.
func (h *NewsHandler) relevantNews(c *gin.Context, symbol string) (*model.Asset, []model.NewsArticle, bool) {
	asset, err := h.assets.GetAssetBySymbol(symbol)
	if err != nil {
		slog.Error("error fetching asset", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, nil, false
	}

	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return nil, nil, false
	}

	articles, err := h.news.GetRecentArticles(matchWindow, 0)
	if err != nil {
		slog.Error("error fetching news", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, nil, false
	}

	return asset, h.matcher.Match(asset, articles), true
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.news.GetArticleTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
