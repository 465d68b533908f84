package news

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tradedesk/internal/model"
)

const alphaVantageTimeLayout = "20060102T150405"

// AlphaVantageClient reads the NEWS_SENTIMENT endpoint, optionally scoped
// to a ticker list.
type AlphaVantageClient struct {
	httpSource
	tickers []string
}

func NewAlphaVantageClient(apiKey string, tickers ...string) *AlphaVantageClient {
	return &AlphaVantageClient{
		httpSource: newHTTPSource("AlphaVantage", "https://www.alphavantage.co", apiKey),
		tickers:    normalizeSymbols(tickers),
	}
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	query := url.Values{}
	query.Set("function", "NEWS_SENTIMENT")
	query.Set("sort", "LATEST")
	query.Set("limit", strconv.Itoa(limit))
	query.Set("apikey", c.apiKey)
	if len(c.tickers) > 0 {
		query.Set("tickers", strings.Join(c.tickers, ","))
	}

	var raw avResponse
	if err := c.getJSON(ctx, "/query", query, &raw); err != nil {
		return nil, err
	}

	// Quota and key problems come back as 200 with a note instead of a feed.
	if len(raw.Feed) == 0 {
		if note := raw.problem(); note != "" {
			return nil, fmt.Errorf("alphavantage: %s", note)
		}
	}

	articles := make([]model.NewsArticle, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		articles = append(articles, item.toArticle(c.Name()))
	}

	return finalize(articles, limit), nil
}

type avResponse struct {
	Feed         []avFeedItem `json:"feed"`
	Information  string       `json:"Information"`
	Note         string       `json:"Note"`
	ErrorMessage string       `json:"Error Message"`
}

func (r avResponse) problem() string {
	for _, s := range []string{r.ErrorMessage, r.Information, r.Note} {
		if s != "" {
			return s
		}
	}
	return ""
}

type avFeedItem struct {
	Title           string              `json:"title"`
	Summary         string              `json:"summary"`
	URL             string              `json:"url"`
	Source          string              `json:"source"`
	TimePublished   string              `json:"time_published"`
	TickerSentiment []avTickerSentiment `json:"ticker_sentiment"`
}

type avTickerSentiment struct {
	Ticker string `json:"ticker"`
}

func (item avFeedItem) toArticle(source string) model.NewsArticle {
	// Zero time when the timestamp is missing or malformed.
	publishedAt, _ := time.Parse(alphaVantageTimeLayout, item.TimePublished)

	tickers := make([]string, 0, len(item.TickerSentiment))
	for _, ts := range item.TickerSentiment {
		tickers = append(tickers, ts.Ticker)
	}

	return model.NewsArticle{
		ExternalID:  generateExternalID(item.URL),
		Headline:    item.Title,
		Detail:      item.Summary,
		URL:         item.URL,
		Source:      source,
		Publisher:   item.Source,
		PublishedAt: publishedAt,
		Symbols:     normalizeSymbols(tickers),
	}
}
