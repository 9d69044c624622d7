package handlers

import (
	"FoundLink/internal/config"
	"FoundLink/internal/middleware"
	"FoundLink/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	matchService *service.MatchService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	itemHandler := NewItemHandler(itemService, logger, config)
	matchHandler := NewMatchHandler(matchService, logger)

	r.Get("/api/ping", itemHandler.Ping)

	// Item routes
	r.Get("/api/items", itemHandler.Search)
	r.Post("/api/items", itemHandler.Create)
	r.Get("/api/items/{id}", itemHandler.Get)
	r.Put("/api/items/{id}", itemHandler.Update)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	// Matching routes
	r.Get("/api/items/{id}/matches", matchHandler.ListForItem)
	r.Put("/api/matches/{matchId}/status", matchHandler.UpdateStatus)

	// Utility routes
	r.Get("/api/categories", itemHandler.Categories)

	return &Handler{Router: r}
}
