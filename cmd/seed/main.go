package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"tradedesk/db"
	"tradedesk/internal/catalog"
	"tradedesk/internal/config"
	"tradedesk/internal/repository"
)

func main() {
	cfg := config.Load()

	defaultPath := cfg.AssetCatalogPath
	if defaultPath == "" {
		defaultPath = "configs/assets.yaml"
	}
	path := flag.String("catalog", defaultPath, "asset catalog YAML file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	assetCatalog, err := catalog.Load(*path)
	if err != nil {
		log.Fatalf("error loading asset catalog: %v", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	repo := repository.NewAssetRepository(db.DB)

	var saved, errors int
	for _, a := range assetCatalog.Assets() {
		if err := repo.UpsertAsset(a); err != nil {
			slog.Error("error saving asset", "symbol", a.Symbol, "error", err)
			errors++
			continue
		}
		saved++
	}

	slog.Info("seed complete", "path", *path, "saved", saved, "errors", errors)
}
