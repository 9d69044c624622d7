package repo

import (
	"FoundLink/internal/model"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SearchFilter — фильтры поиска заявок. Пустые поля не применяются.
type SearchFilter struct {
	Type     model.ItemType
	Category model.Category
	Status   model.ItemStatus
	// Подстрока по городу/адресу/штату, без учёта регистра
	Location string
	// Подстрока по title/description/tags, без учёта регистра
	Keyword  string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ItemRepository определяет контракт доступа к заявкам для слоя сервиса.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error

	// GetByID возвращает заявку или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// Save перезаписывает заявку целиком (после слияния патча в сервисе).
	Save(ctx context.Context, item *model.Item) error

	// Delete удаляет заявку; existed=false, если её не было.
	// Записи совпадений не трогаются (висячие ссылки допустимы).
	Delete(ctx context.Context, id string) (existed bool, err error)

	// Search применяет фильтры, сортирует по дате заявки по убыванию и
	// возвращает страницу плюс общее число отфильтрованных записей.
	Search(ctx context.Context, f SearchFilter, page, limit int) ([]model.Item, int64, error)

	// ListCandidates возвращает активные заявки заданного типа и категории —
	// пул кандидатов для подбора совпадений.
	ListCandidates(ctx context.Context, typ model.ItemType, category model.Category) ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория заявок поверх gorm.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) Save(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *itemRepo) Search(ctx context.Context, f SearchFilter, page, limit int) ([]model.Item, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Location != "" {
		pat := "%" + strings.ToLower(f.Location) + "%"
		q = q.Where("lower(loc_city) LIKE ? OR lower(loc_address) LIKE ? OR lower(loc_state) LIKE ?", pat, pat, pat)
	}
	if f.Keyword != "" {
		// tags хранятся JSON-строкой, LIKE по ней покрывает «подстрока
		// в любом теге» так же, как по title и description
		pat := "%" + strings.ToLower(f.Keyword) + "%"
		q = q.Where("lower(title) LIKE ? OR lower(description) LIKE ? OR lower(tags) LIKE ?", pat, pat, pat)
	}
	if f.DateFrom != nil {
		q = q.Where("date_reported >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("date_reported <= ?", *f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	items := make([]model.Item, 0, limit)
	err := q.Order("date_reported DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepo) ListCandidates(ctx context.Context, typ model.ItemType, category model.Category) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("type = ? AND category = ? AND status = ?", typ, category, model.StatusActive).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
