package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newAlphaVantageTestClient(srv *httptest.Server, tickers ...string) *AlphaVantageClient {
	client := NewAlphaVantageClient("test-key", tickers...)
	client.baseURL = srv.URL
	client.httpClient = srv.Client()
	return client
}

func TestAlphaVantageFetch(t *testing.T) {
	payload := map[string]interface{}{
		"items": "2",
		"feed": []map[string]interface{}{
			{
				"title":          "Bitcoin ETF inflows accelerate",
				"summary":        "Spot bitcoin funds drew fresh inflows for a fifth day.",
				"url":            "https://example.com/btc-etf",
				"source":         "CoinDesk",
				"time_published": "20260226T120000",
				"ticker_sentiment": []map[string]interface{}{
					{"ticker": "crypto:btc"},
					{"ticker": " ibit "},
					{"ticker": ""},
				},
			},
			{
				"title":          "Ether staking yields compress",
				"url":            "https://example.com/eth-staking",
				"time_published": "yesterday",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "NEWS_SENTIMENT", r.URL.Query().Get("function"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "", r.URL.Query().Get("tickers"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	articles, err := newAlphaVantageTestClient(srv).Fetch(context.Background(), 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "Bitcoin ETF inflows accelerate", a.Headline)
	assert.Equal(t, "Spot bitcoin funds drew fresh inflows for a fifth day.", a.Detail)
	assert.Equal(t, "CoinDesk", a.Publisher)
	assert.Equal(t, "AlphaVantage", a.Source)
	assert.Equal(t, []string{"CRYPTO:BTC", "IBIT"}, a.Symbols)
	assert.Equal(t, generateExternalID("https://example.com/btc-etf"), a.ExternalID)
	assert.Equal(t, time.Date(2026, time.February, 26, 12, 0, 0, 0, time.UTC), a.PublishedAt)

	assert.Equal(t, true, articles[1].PublishedAt.IsZero())
	assert.Equal(t, 0, len(articles[1].Symbols))
}

func TestAlphaVantageFetch_Tickers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "RELIANCE.BSE,CRYPTO:BTC", r.URL.Query().Get("tickers"))
		w.Write([]byte(`{"feed": []}`))
	}))
	defer srv.Close()

	articles, err := newAlphaVantageTestClient(srv, "reliance.bse", " crypto:btc").Fetch(context.Background(), 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestAlphaVantageFetch_QuotaNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Information": "Our standard API rate limit is 25 requests per day."}`))
	}))
	defer srv.Close()

	articles, err := newAlphaVantageTestClient(srv).Fetch(context.Background(), 5)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestAlphaVantageFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	articles, err := newAlphaVantageTestClient(srv).Fetch(context.Background(), 5)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}
