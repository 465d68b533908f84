package news

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tradedesk/internal/model"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// companyNewsWindow is how far back company news is requested.
const companyNewsWindow = 7 * 24 * time.Hour

// finnhubItem is the getter surface shared by the MarketNews and
// CompanyNews models.
type finnhubItem interface {
	GetId() int64
	GetHeadline() string
	GetSummary() string
	GetUrl() string
	GetDatetime() int64
	GetSource() string
	GetRelated() string
}

// FinnHubClient reads general market news, or company news for each
// configured symbol.
type FinnHubClient struct {
	client  *finnhub.DefaultApiService
	symbols []string
	now     func() time.Time
}

func NewFinnHubClient(apiKey string, symbols ...string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnHubClient{
		client:  finnhub.NewAPIClient(cfg).DefaultApi,
		symbols: normalizeSymbols(symbols),
		now:     time.Now,
	}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	if len(c.symbols) == 0 {
		res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
		if err != nil {
			return nil, fmt.Errorf("finnhub market news: %w", err)
		}

		articles := make([]model.NewsArticle, 0, len(res))
		for i := range res {
			articles = append(articles, finnhubArticle(&res[i], c.Name()))
		}
		return finalize(articles, limit), nil
	}

	to := c.now()
	from := to.Add(-companyNewsWindow)

	var articles []model.NewsArticle
	for _, symbol := range c.symbols {
		res, _, err := c.client.CompanyNews(ctx).
			Symbol(symbol).
			From(from.Format(time.DateOnly)).
			To(to.Format(time.DateOnly)).
			Execute()
		if err != nil {
			return nil, fmt.Errorf("finnhub company news %s: %w", symbol, err)
		}

		for i := range res {
			a := finnhubArticle(&res[i], c.Name())
			if len(a.Symbols) == 0 {
				a.Symbols = []string{symbol}
			}
			articles = append(articles, a)
		}
	}

	return finalize(articles, limit), nil
}

func finnhubArticle(item finnhubItem, source string) model.NewsArticle {
	a := model.NewsArticle{
		Headline:  item.GetHeadline(),
		Detail:    item.GetSummary(),
		URL:       item.GetUrl(),
		Source:    source,
		Publisher: item.GetSource(),
	}

	if id := item.GetId(); id != 0 {
		a.ExternalID = strconv.FormatInt(id, 10)
	} else {
		a.ExternalID = generateExternalID(a.URL)
	}

	if ts := item.GetDatetime(); ts != 0 {
		a.PublishedAt = time.Unix(ts, 0).UTC()
	}

	if related := item.GetRelated(); related != "" {
		a.Symbols = normalizeSymbols(strings.Split(related, ","))
	}

	return a
}
