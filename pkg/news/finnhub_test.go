package news

import (
	"testing"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/go-playground/assert/v2"
)

func TestFinnhubArticle_MarketNews(t *testing.T) {
	id := int64(7423)
	headline := "Tata Consultancy wins $1bn deal"
	summary := "The contract spans five years."
	url := "https://example.com/tcs"
	datetime := int64(1772100000)
	source := "Reuters"
	related := "tcs, infy,"

	item := finnhub.MarketNews{
		Id:       &id,
		Headline: &headline,
		Summary:  &summary,
		Url:      &url,
		Datetime: &datetime,
		Source:   &source,
		Related:  &related,
	}

	a := finnhubArticle(&item, "FinnHub")

	assert.Equal(t, "7423", a.ExternalID)
	assert.Equal(t, headline, a.Headline)
	assert.Equal(t, summary, a.Detail)
	assert.Equal(t, url, a.URL)
	assert.Equal(t, "Reuters", a.Publisher)
	assert.Equal(t, "FinnHub", a.Source)
	assert.Equal(t, []string{"TCS", "INFY"}, a.Symbols)
	assert.Equal(t, time.Unix(datetime, 0).UTC(), a.PublishedAt)
}

func TestFinnhubArticle_MissingFields(t *testing.T) {
	headline := "Markets open flat"
	url := "https://example.com/flat"

	a := finnhubArticle(&finnhub.CompanyNews{Headline: &headline, Url: &url}, "FinnHub")

	assert.Equal(t, generateExternalID(url), a.ExternalID)
	assert.Equal(t, true, a.PublishedAt.IsZero())
	assert.Equal(t, 0, len(a.Symbols))
}
