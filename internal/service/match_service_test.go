package service

import (
	"FoundLink/internal/model"
	"FoundLink/internal/repo"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Моки для репозиториев — проверяем поведение подбора при сбоях хранилища
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Save(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockItemRepo) Search(ctx context.Context, f repo.SearchFilter, page, limit int) ([]model.Item, int64, error) {
	args := m.Called(ctx, f, page, limit)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Get(1).(int64), args.Error(2)
}
func (m *mockItemRepo) ListCandidates(ctx context.Context, typ model.ItemType, cat model.Category) ([]model.Item, error) {
	args := m.Called(ctx, typ, cat)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockMatchRepo struct{ mock.Mock }

func (m *mockMatchRepo) Create(ctx context.Context, s *model.MatchSuggestion) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockMatchRepo) GetByID(ctx context.Context, id string) (*model.MatchSuggestion, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.MatchSuggestion); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMatchRepo) ListByItem(ctx context.Context, itemID string) ([]model.MatchSuggestion, error) {
	args := m.Called(ctx, itemID)
	matches, _ := args.Get(0).([]model.MatchSuggestion)
	return matches, args.Error(1)
}
func (m *mockMatchRepo) UpdateStatus(ctx context.Context, id string, st model.MatchStatus) (*model.MatchSuggestion, error) {
	args := m.Called(ctx, id, st)
	if v, ok := args.Get(0).(*model.MatchSuggestion); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.MatchRepository = (*mockMatchRepo)(nil)

// Подбор best-effort: сбой записи совпадения не ломает создание заявки
func TestItemService_CreateSurvivesMatchStoreFailure(t *testing.T) {
	ir := new(mockItemRepo)
	mr := new(mockMatchRepo)
	matcher := NewMatchService(ir, mr, 0.5, zap.NewNop().Sugar())
	svc := NewItemService(ir, matcher, zap.NewNop().Sugar())
	ctx := context.Background()

	cand := *foundWallet("San Francisco", scoreT)
	ir.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	ir.On("ListCandidates", mock.Anything, model.TypeFound, model.CategoryBags).
		Return([]model.Item{cand}, nil).Once()
	mr.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("disk full")).Once()

	lost := lostWallet("San Francisco", scoreT.Add(24*time.Hour))
	created, err := svc.Create(ctx, lost)
	assert.NoError(t, err)
	assert.NotNil(t, created)

	ir.AssertExpectations(t)
	mr.AssertExpectations(t)
}

// Сбой выборки кандидатов тоже не откатывает создание
func TestItemService_CreateSurvivesCandidateListFailure(t *testing.T) {
	ir := new(mockItemRepo)
	mr := new(mockMatchRepo)
	matcher := NewMatchService(ir, mr, 0.5, zap.NewNop().Sugar())
	svc := NewItemService(ir, matcher, zap.NewNop().Sugar())
	ctx := context.Background()

	ir.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	ir.On("ListCandidates", mock.Anything, model.TypeFound, model.CategoryBags).
		Return(nil, errors.New("db gone")).Once()

	lost := lostWallet("San Francisco", scoreT)
	created, err := svc.Create(ctx, lost)
	assert.NoError(t, err)
	assert.NotNil(t, created)

	ir.AssertExpectations(t)
	mr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
