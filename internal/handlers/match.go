package handlers

import (
	"FoundLink/internal/model"
	"FoundLink/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MatchHandler обрабатывает чтение совпадений и их статусы.
type MatchHandler struct {
	Matches *service.MatchService
	Logger  *zap.SugaredLogger
}

// NewMatchHandler создаёт хендлер совпадений
func NewMatchHandler(matches *service.MatchService, logger *zap.SugaredLogger) *MatchHandler {
	return &MatchHandler{Matches: matches, Logger: logger}
}

// UpdateMatchStatusRequest — тело PUT /api/matches/{matchId}/status.
type UpdateMatchStatusRequest struct {
	Status model.MatchStatus `json:"status"`
}

// ListForItem возвращает совпадения заявки по убыванию score, с вложенной
// противоположной заявкой каждой пары.
func (h *MatchHandler) ListForItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	matches, err := h.Matches.GetForItem(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("ListForItem: service error", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}

	writeData(w, http.StatusOK, matches, "")
}

// UpdateStatus переводит совпадение в pending/accepted/rejected
func (h *MatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var req UpdateMatchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateStatus: invalid request body", "match_id", matchID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid status. Must be pending, accepted, or rejected")
		return
	}

	match, err := h.Matches.UpdateStatus(r.Context(), matchID, req.Status)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Match not found")
		return
	}
	if errors.Is(err, service.ErrInvalidStatus) {
		writeError(w, http.StatusBadRequest, "Invalid status. Must be pending, accepted, or rejected")
		return
	}
	if err != nil {
		h.Logger.Errorw("UpdateStatus: service error", "match_id", matchID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update match status")
		return
	}

	writeData(w, http.StatusOK, match, "Match status updated successfully")
}
