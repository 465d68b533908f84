package news

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"tradedesk/internal/model"
)

// MassiveClient reads the v2 reference news endpoint.
type MassiveClient struct {
	httpSource
}

func NewMassiveClient(apiKey string) *MassiveClient {
	return &MassiveClient{
		httpSource: newHTTPSource("Massive", "https://api.massive.com", apiKey),
	}
}

func (c *MassiveClient) Fetch(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	query := url.Values{}
	query.Set("order", "desc")
	query.Set("sort", "published_utc")
	query.Set("limit", strconv.Itoa(limit))
	query.Set("apiKey", c.apiKey)

	var raw massiveResponse
	if err := c.getJSON(ctx, "/v2/reference/news", query, &raw); err != nil {
		return nil, err
	}

	if raw.Status == "ERROR" {
		return nil, fmt.Errorf("massive: %s", raw.Error)
	}

	articles := make([]model.NewsArticle, 0, len(raw.Results))
	for _, item := range raw.Results {
		articles = append(articles, item.toArticle(c.Name()))
	}

	return finalize(articles, limit), nil
}

type massiveResponse struct {
	Status  string          `json:"status"`
	Error   string          `json:"error"`
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ArticleURL   string   `json:"article_url"`
	PublishedUTC string   `json:"published_utc"`
	Tickers      []string `json:"tickers"`
	Publisher    struct {
		Name string `json:"name"`
	} `json:"publisher"`
}

func (r massiveResult) toArticle(source string) model.NewsArticle {
	publishedAt, _ := time.Parse(time.RFC3339, r.PublishedUTC)

	externalID := r.ID
	if externalID == "" {
		externalID = generateExternalID(r.ArticleURL)
	}

	return model.NewsArticle{
		ExternalID:  externalID,
		Headline:    r.Title,
		Detail:      r.Description,
		URL:         r.ArticleURL,
		Source:      source,
		Publisher:   r.Publisher.Name,
		PublishedAt: publishedAt,
		Symbols:     normalizeSymbols(r.Tickers),
	}
}
