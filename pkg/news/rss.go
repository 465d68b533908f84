package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tradedesk/internal/model"

	"github.com/mmcdole/gofeed"
)

// RSSClient reads headlines from a single RSS or Atom feed.
type RSSClient struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSClient(feedURL string) *RSSClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &RSSClient{feedURL: feedURL, parser: parser}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Fetch(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch %s: %w", c.feedURL, err)
	}

	articles := make([]model.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		publishedAt := time.Time{}
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		externalID := item.GUID
		if externalID == "" {
			externalID = generateExternalID(item.Link)
		}

		articles = append(articles, model.NewsArticle{
			ExternalID:  externalID,
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.Link,
			Publisher:   feed.Title,
			PublishedAt: publishedAt,
			Symbols:     normalizeSymbols(item.Categories),
			Source:      c.Name(),
		})
	}

	return finalize(articles, limit), nil
}
