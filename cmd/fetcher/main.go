package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"tradedesk/db"
	"tradedesk/internal/config"
	"tradedesk/internal/repository"
	"tradedesk/pkg/news"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var clients []news.NewsClient
	if cfg.FinnhubKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubKey, cfg.NewsSymbols...))
	}
	if cfg.AlphaVantageKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageKey, cfg.NewsSymbols...))
	}
	if cfg.MassiveKey != "" {
		clients = append(clients, news.NewMassiveClient(cfg.MassiveKey))
	}
	for _, feed := range cfg.RSSFeeds {
		clients = append(clients, news.NewRSSClient(feed))
	}

	if len(clients) == 0 {
		slog.Error("no news sources configured")
		return
	}

	ctx := context.Background()
	repo := repository.NewArticleRepository(db.DB)

	for _, client := range clients {
		source := client.Name()

		fetchedArticles, err := client.Fetch(ctx, cfg.NewsFetchLimit)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var saved, duplicated, skipped, errors int

		for i := range fetchedArticles {
			article := &fetchedArticles[i]

			if !article.Matchable() {
				skipped++
				continue
			}

			success, err := repo.SaveArticle(article)
			if err != nil {
				slog.Error("error saving article", "source", source, "error", err)
				errors++
				continue
			}

			if !success {
				slog.Debug("duplicate article skipped", "source", source, "url", article.URL)
				duplicated++
				continue
			}

			saved++
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "skipped", skipped, "errors", errors)
	}
}
