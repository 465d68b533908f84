package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"tradedesk/db"
	"tradedesk/internal/config"
	"tradedesk/internal/model"
	"tradedesk/internal/repository"
	"tradedesk/pkg/llm"
	"tradedesk/pkg/relevance"
)

const (
	matchWindow = 200
	maxAssets   = 1000
)

func main() {
	symbol := flag.String("symbol", "", "summarize news for this symbol only (default: every asset)")
	flag.Parse()

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	client, err := llm.NewClient(ctx, cfg.LLMProvider, cfg.LLMKey())
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}
	if closer, ok := client.(io.Closer); ok {
		defer closer.Close()
	}

	assetRepo := repository.NewAssetRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)

	var assets []model.Asset
	if *symbol != "" {
		asset, err := assetRepo.GetAssetBySymbol(*symbol)
		if err != nil {
			log.Fatalf("error fetching asset: %v", err)
		}
		if asset == nil {
			log.Fatalf("unknown asset %q", *symbol)
		}
		assets = append(assets, *asset)
	} else {
		assets, err = assetRepo.GetAssets("", maxAssets, 0)
		if err != nil {
			log.Fatalf("error fetching assets: %v", err)
		}
	}

	articles, err := articleRepo.GetRecentArticles(matchWindow, 0)
	if err != nil {
		log.Fatalf("error fetching articles: %v", err)
	}

	matcher := relevance.NewMatcher()
	var saved, empty, failed int

	for i := range assets {
		asset := &assets[i]

		relevant := matcher.Match(asset, articles)
		if len(relevant) == 0 {
			slog.Info("no relevant news, skipping", "symbol", asset.Symbol)
			empty++
			continue
		}

		headlines := relevance.Headlines(relevant)

		callCtx, cancel := context.WithTimeout(ctx, cfg.LLMTimeout)
		result, err := llm.SummarizeHeadlines(callCtx, client, headlines)
		cancel()
		if err != nil {
			slog.Error("error generating summary", "symbol", asset.Symbol, "error", err)
			failed++
			continue
		}

		summary := &model.NewsSummary{
			Symbol:       asset.Symbol,
			Headlines:    headlines,
			Summary:      result.Summary,
			ArticleCount: len(relevant),
			ModelUsed:    result.ModelUsed,
		}

		err = summaryRepo.SaveSummary(summary)
		if err != nil {
			slog.Error("error saving summary", "symbol", asset.Symbol, "error", err)
			failed++
			continue
		}

		slog.Info("summary saved successfully", "symbol", asset.Symbol, "summary_id", summary.ID, "article_count", summary.ArticleCount)
		saved++
	}

	slog.Info("summarizer complete", "assets", len(assets), "saved", saved, "no_news", empty, "failed", failed)
}
