package handler

import (
	"time"

	"tradedesk/internal/model"
)

type AssetResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	AssetClass    string  `json:"asset_class"`
	Sector        string  `json:"sector,omitempty"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
}

type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type ArticleResponse struct {
	ID          int64    `json:"id"`
	Headline    string   `json:"headline"`
	Detail      string   `json:"detail"`
	Source      string   `json:"source"`
	Publisher   string   `json:"publisher"`
	PublishedAt string   `json:"published_at"`
	URL         string   `json:"url,omitempty"`
	Symbols     []string `json:"symbols"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type AssetNewsResponse struct {
	Asset    AssetResponse     `json:"asset"`
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

type SummarizeRequest struct {
	NewsHeadlines string `json:"newsHeadlines"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type SummaryResponse struct {
	ID           int64  `json:"id"`
	Symbol       string `json:"symbol,omitempty"`
	Summary      string `json:"summary"`
	Headlines    string `json:"headlines"`
	ArticleCount int    `json:"article_count"`
	ModelUsed    string `json:"model_used"`
	CreatedAt    string `json:"created_at"`
}

type SummariesResponse struct {
	Latest  *SummaryResponse  `json:"latest"`
	History []SummaryResponse `json:"history"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

func toAssetResponse(a model.Asset) AssetResponse {
	return AssetResponse{
		Symbol:        a.Symbol,
		Name:          a.Name,
		AssetClass:    a.Class.String(),
		Sector:        a.Sector,
		Price:         a.Price,
		Change:        a.Change,
		ChangePercent: a.ChangePercent,
		Volume:        a.Volume,
	}
}

func toArticleResponses(articles []model.NewsArticle) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		symbols := a.Symbols
		if symbols == nil {
			symbols = []string{}
		}
		res = append(res, ArticleResponse{
			ID:          a.ID,
			Headline:    a.Headline,
			Detail:      a.Detail,
			Source:      a.Source,
			Publisher:   a.Publisher,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			URL:         a.URL,
			Symbols:     symbols,
		})
	}
	return res
}

func toSummaryResponse(s model.NewsSummary) SummaryResponse {
	return SummaryResponse{
		ID:           s.ID,
		Symbol:       s.Symbol,
		Summary:      s.Summary,
		Headlines:    s.Headlines,
		ArticleCount: s.ArticleCount,
		ModelUsed:    s.ModelUsed,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}
