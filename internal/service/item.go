package service

import (
	"FoundLink/internal/model"
	"FoundLink/internal/repo"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemService инкапсулирует бизнес-логику работы с заявками: создание с
// подбором совпадений, точечные чтения, частичные обновления и поиск.
type ItemService struct {
	items   repo.ItemRepository
	matcher *MatchService
	logger  *zap.SugaredLogger

	// сериализует мутации и генерацию совпадений, чтобы подбор видел
	// согласованный снимок активных заявок
	mu sync.Mutex
}

func NewItemService(items repo.ItemRepository, matcher *MatchService, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{items: items, matcher: matcher, logger: logger}
}

// ItemPatch — частичное обновление заявки. nil-поля не трогаются.
// Поля Type в патче нет: тип фиксируется при создании.
type ItemPatch struct {
	Title       *string
	Description *string
	Category    *model.Category
	Status      *model.ItemStatus
	Location    *model.Location
	Tags        *model.StringList
	Images      *model.StringList
	Contact     *model.ContactInfo

	DateLost         *time.Time
	Reward           *float64
	LastSeenLocation *model.Location

	DateFound         *time.Time
	CurrentLocation   *model.Location
	HandedToAuthority *bool
	AuthorityContact  *string
}

// SearchResult — страница поиска плюс общее число отфильтрованных заявок.
type SearchResult struct {
	Items   []model.Item
	Total   int64
	Page    int
	Limit   int
	HasMore bool
}

// Create сохраняет новую заявку (id и метки времени проставляются здесь) и
// запускает подбор совпадений. Подбор best-effort: его ошибка логируется и
// не откатывает создание.
func (s *ItemService) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.DateReported.IsZero() {
		item.DateReported = now
	}
	if item.Status == "" {
		item.Status = model.StatusActive
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	if err := s.matcher.GenerateFor(ctx, item); err != nil {
		s.logger.Errorw("match generation failed", "item_id", item.ID, "error", err)
	}
	return item, nil
}

// Get возвращает заявку или ErrNotFound. Без побочных эффектов.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update накладывает патч на существующую заявку и обновляет updated_at.
// Существующие совпадения не пересчитываются (см. DESIGN.md).
func (s *ItemService) Update(ctx context.Context, id string, patch ItemPatch) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.apply(item)
	item.UpdatedAt = time.Now().UTC()

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete удаляет заявку; existed=false, если её не было. Совпадения с её
// участием остаются — читатели обязаны терпеть висячие ссылки.
func (s *ItemService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Delete(ctx, id)
}

// Search выполняет фильтрованный постраничный поиск. Сортировка — по дате
// заявки по убыванию, пагинация смещением.
func (s *ItemService) Search(ctx context.Context, f repo.SearchFilter, page, limit int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	items, total, err := s.items.Search(ctx, f, page, limit)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Items:   items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(page*limit) < total,
	}, nil
}

// Categories возвращает закрытый перечень категорий.
func (s *ItemService) Categories() []model.Category {
	return model.Categories()
}

func (p ItemPatch) apply(item *model.Item) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Tags != nil {
		item.Tags = *p.Tags
	}
	if p.Images != nil {
		item.Images = *p.Images
	}
	if p.Contact != nil {
		item.Contact = *p.Contact
	}
	if p.DateLost != nil {
		item.DateLost = p.DateLost
	}
	if p.Reward != nil {
		item.Reward = p.Reward
	}
	if p.LastSeenLocation != nil {
		item.LastSeenLocation = *p.LastSeenLocation
	}
	if p.DateFound != nil {
		item.DateFound = p.DateFound
	}
	if p.CurrentLocation != nil {
		item.CurrentLocation = *p.CurrentLocation
	}
	if p.HandedToAuthority != nil {
		item.HandedToAuthority = *p.HandedToAuthority
	}
	if p.AuthorityContact != nil {
		item.AuthorityContact = *p.AuthorityContact
	}
}
