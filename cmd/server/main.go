package main

import (
	"FoundLink/internal/config"
	"FoundLink/internal/handlers"
	"FoundLink/internal/middleware"
	"FoundLink/internal/repo"
	"FoundLink/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	itemRepo := repo.NewItemRepository(gormDB)
	matchRepo := repo.NewMatchRepository(gormDB)

	matchService := service.NewMatchService(itemRepo, matchRepo, cfg.MatchThreshold, sugar)
	itemService := service.NewItemService(itemRepo, matchService, sugar)

	if cfg.SeedDemo {
		if err := itemService.SeedDemo(ctx); err != nil {
			sugar.Errorw("failed to seed demo data", "error", err)
		}
	}

	h := handlers.NewHandler(itemService, matchService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", cfg.DatabaseDSN,
		"MatchThreshold", cfg.MatchThreshold,
		"PageLimit", cfg.PageLimit,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
