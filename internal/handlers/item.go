package handlers

import (
	"FoundLink/internal/config"
	"FoundLink/internal/model"
	"FoundLink/internal/repo"
	"FoundLink/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD и поиск заявок.
type ItemHandler struct {
	Items  *service.ItemService
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewItemHandler создаёт хендлер заявок
func NewItemHandler(items *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Items: items, Logger: logger, Config: cfg}
}

// CreateItemRequest — тело POST /api/items. Статус и дата заявки
// проставляются сервером.
type CreateItemRequest struct {
	Type        model.ItemType    `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    model.Category    `json:"category"`
	Location    *model.Location   `json:"location"`
	Images      model.StringList  `json:"images"`
	Contact     model.ContactInfo `json:"contactInfo"`
	Tags        model.StringList  `json:"tags"`

	DateLost         *time.Time      `json:"dateLost,omitempty"`
	Reward           *float64        `json:"reward,omitempty"`
	LastSeenLocation *model.Location `json:"lastSeenLocation,omitempty"`

	DateFound         *time.Time      `json:"dateFound,omitempty"`
	CurrentLocation   *model.Location `json:"currentLocation,omitempty"`
	HandedToAuthority bool            `json:"handedToAuthority,omitempty"`
	AuthorityContact  string          `json:"authorityContact,omitempty"`
}

// UpdateItemRequest — тело PUT /api/items/{id}; отсутствующие поля не
// меняются. Поле type не принимается: тип заявки неизменен.
type UpdateItemRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Category    *model.Category    `json:"category,omitempty"`
	Status      *model.ItemStatus  `json:"status,omitempty"`
	Location    *model.Location    `json:"location,omitempty"`
	Tags        *model.StringList  `json:"tags,omitempty"`
	Images      *model.StringList  `json:"images,omitempty"`
	Contact     *model.ContactInfo `json:"contactInfo,omitempty"`

	DateLost         *time.Time      `json:"dateLost,omitempty"`
	Reward           *float64        `json:"reward,omitempty"`
	LastSeenLocation *model.Location `json:"lastSeenLocation,omitempty"`

	DateFound         *time.Time      `json:"dateFound,omitempty"`
	CurrentLocation   *model.Location `json:"currentLocation,omitempty"`
	HandedToAuthority *bool           `json:"handedToAuthority,omitempty"`
	AuthorityContact  *string         `json:"authorityContact,omitempty"`
}

// PaginatedItems — страница поиска в формате ответа API.
type PaginatedItems struct {
	Items   []model.Item `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	HasMore bool         `json:"hasMore"`
}

// Ping проверка живости сервиса
func (h *ItemHandler) Ping(w http.ResponseWriter, r *http.Request) {
	msg := os.Getenv("PING_MESSAGE")
	if msg == "" {
		msg = "ping"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// Create регистрирует новую заявку; совпадения подбираются побочно.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "type must be 'lost' or 'found'")
		return
	}
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Location == nil {
		writeError(w, http.StatusBadRequest,
			"Missing required fields: title, description, category, location")
		return
	}
	if !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category: %s", req.Category))
		return
	}

	item := &model.Item{
		Type:              req.Type,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Location:          *req.Location,
		Images:            req.Images,
		Contact:           req.Contact,
		Status:            model.StatusActive,
		Tags:              req.Tags,
		DateLost:          req.DateLost,
		Reward:            req.Reward,
		DateFound:         req.DateFound,
		HandedToAuthority: req.HandedToAuthority,
		AuthorityContact:  req.AuthorityContact,
	}
	if req.LastSeenLocation != nil {
		item.LastSeenLocation = *req.LastSeenLocation
	}
	if req.CurrentLocation != nil {
		item.CurrentLocation = *req.CurrentLocation
	}

	created, err := h.Items.Create(r.Context(), item)
	if err != nil {
		h.Logger.Errorw("Create: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	writeData(w, http.StatusCreated, created, "Item reported successfully")
}

// Get возвращает заявку по id
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.Items.Get(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.Logger.Errorw("Get: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch item")
		return
	}

	writeData(w, http.StatusOK, item, "")
}

// Update применяет частичное обновление заявки
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category: %s", *req.Category))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown status: %s", *req.Status))
		return
	}

	patch := service.ItemPatch{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Status:            req.Status,
		Location:          req.Location,
		Tags:              req.Tags,
		Images:            req.Images,
		Contact:           req.Contact,
		DateLost:          req.DateLost,
		Reward:            req.Reward,
		LastSeenLocation:  req.LastSeenLocation,
		DateFound:         req.DateFound,
		CurrentLocation:   req.CurrentLocation,
		HandedToAuthority: req.HandedToAuthority,
		AuthorityContact:  req.AuthorityContact,
	}

	item, err := h.Items.Update(r.Context(), id, patch)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.Logger.Errorw("Update: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	writeData(w, http.StatusOK, item, "Item updated successfully")
}

// Delete удаляет заявку
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existed, err := h.Items.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Item deleted successfully"})
}

// Search — фильтрованный постраничный поиск заявок
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	limit := h.Config.PageLimit
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	f := repo.SearchFilter{
		Type:     model.ItemType(q.Get("type")),
		Category: model.Category(q.Get("category")),
		Location: q.Get("location"),
		Keyword:  q.Get("keyword"),
		// без явного статуса ищем только по активным заявкам
		Status: model.StatusActive,
	}
	if v := q.Get("status"); v != "" {
		f.Status = model.ItemStatus(v)
	}

	if f.Type != "" && !f.Type.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown type: %s", f.Type))
		return
	}
	if f.Category != "" && !f.Category.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category: %s", f.Category))
		return
	}
	if !f.Status.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown status: %s", f.Status))
		return
	}

	// диапазон дат применяется только при обеих границах
	startDate, endDate := q.Get("startDate"), q.Get("endDate")
	if startDate != "" && endDate != "" {
		from, err1 := parseDate(startDate)
		to, err2 := parseDate(endDate)
		if err1 != nil || err2 != nil {
			writeError(w, http.StatusBadRequest, "invalid date range")
			return
		}
		f.DateFrom = &from
		f.DateTo = &to
	}

	res, err := h.Items.Search(r.Context(), f, page, limit)
	if err != nil {
		h.Logger.Errorw("Search: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	writeData(w, http.StatusOK, PaginatedItems{
		Items:   res.Items,
		Total:   res.Total,
		Page:    res.Page,
		Limit:   res.Limit,
		HasMore: res.HasMore,
	}, "")
}

// Categories возвращает закрытый перечень категорий
func (h *ItemHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.Items.Categories(), "")
}

// parseDate принимает RFC3339 или короткую форму YYYY-MM-DD
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
