package repo

import (
	"FoundLink/internal/model"
	"context"

	"gorm.io/gorm"
)

// MatchRepository — контракт доступа к записям совпадений.
// Совпадения никогда не удаляются, меняется только их статус.
type MatchRepository interface {
	Create(ctx context.Context, m *model.MatchSuggestion) error

	// GetByID возвращает совпадение или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.MatchSuggestion, error)

	// ListByItem возвращает совпадения, где заявка стоит с любой стороны
	// пары, по убыванию score.
	ListByItem(ctx context.Context, itemID string) ([]model.MatchSuggestion, error)

	// UpdateStatus меняет статус записи; gorm.ErrRecordNotFound, если её нет.
	UpdateStatus(ctx context.Context, id string, status model.MatchStatus) (*model.MatchSuggestion, error)
}

type matchRepo struct {
	db *gorm.DB
}

// NewMatchRepository создаёт реализацию репозитория совпадений поверх gorm.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) Create(ctx context.Context, m *model.MatchSuggestion) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matchRepo) GetByID(ctx context.Context, id string) (*model.MatchSuggestion, error) {
	var m model.MatchSuggestion
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepo) ListByItem(ctx context.Context, itemID string) ([]model.MatchSuggestion, error) {
	var matches []model.MatchSuggestion
	err := r.db.WithContext(ctx).
		Where("item_id = ? OR matched_item_id = ?", itemID, itemID).
		Order("score DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepo) UpdateStatus(ctx context.Context, id string, status model.MatchStatus) (*model.MatchSuggestion, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Status = status
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}
