package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"tradedesk/db"
	"tradedesk/internal/cache"
	"tradedesk/internal/catalog"
	"tradedesk/internal/config"
	"tradedesk/internal/handler"
	"tradedesk/internal/repository"
	"tradedesk/pkg/llm"
	"tradedesk/pkg/relevance"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
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

	llmClient, err := llm.NewClient(ctx, cfg.LLMProvider, cfg.LLMKey())
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}
	if closer, ok := llmClient.(io.Closer); ok {
		defer closer.Close()
	}

	summarizer := llmClient
	if cfg.RedisURL != "" && cfg.SummaryCacheTTL > 0 {
		err = db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("error connecting to Redis, summaries will not be cached", "error", err)
		} else {
			defer db.CloseRedis()
			summarizer = cache.NewSummaryCache(db.Redis, llmClient, cfg.SummaryCacheTTL)
		}
	}

	var assetStore handler.AssetStore = repository.NewAssetRepository(db.DB)
	if cfg.AssetCatalogPath != "" {
		assetCatalog, err := catalog.Load(cfg.AssetCatalogPath)
		if err != nil {
			log.Fatalf("error loading asset catalog: %v", err)
		}
		slog.Info("serving assets from catalog", "path", cfg.AssetCatalogPath, "assets", len(assetCatalog.Assets()))
		assetStore = assetCatalog
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)

	assetHandler := handler.NewAssetHandler(assetStore)
	newsHandler := handler.NewNewsHandler(assetStore, articleRepo, relevance.NewMatcher())
	summaryHandler := handler.NewSummaryHandler(summaryRepo, newsHandler, summarizer, cfg.LLMTimeout)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", handler.RequestIDHeader},
		ExposeHeaders: []string{handler.RequestIDHeader},
	}))

	r.GET("/assets", assetHandler.GetAssets)
	r.GET("/assets/:symbol", assetHandler.GetAsset)
	r.GET("/assets/:symbol/news", newsHandler.GetAssetNews)
	r.POST("/assets/:symbol/news/summary", summaryHandler.SummarizeAssetNews)
	r.GET("/news", newsHandler.GetNews)
	r.POST("/news/summarize", summaryHandler.Summarize)
	r.GET("/summaries", summaryHandler.GetSummaries)
	r.GET("/health", newsHandler.GetHealth)

	slog.Info("starting server", "port", cfg.Port, "llm_provider", cfg.LLMProvider)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
