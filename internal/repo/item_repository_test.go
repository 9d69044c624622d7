package repo

import (
	"FoundLink/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// хелпер для создания базовой заявки
func mkItem(id string, typ model.ItemType, cat model.Category, reported time.Time) model.Item {
	return model.Item{
		ID:       id,
		Type:     typ,
		Title:    "item " + id,
		Category: cat,
		Location: model.Location{
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
		},
		DateReported: reported.UTC(),
		Status:       model.StatusActive,
		Contact:      model.ContactInfo{Name: "tester", Email: "t@example.com"},
	}
}

func TestItemRepository_Create_GetByID(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := mkItem("i1", model.TypeLost, model.CategoryKeys, time.Now().Add(-time.Hour))
	it.Tags = model.StringList{"keys", "honda"}
	assert.NoError(t, r.Create(ctx, &it))

	got, err := r.GetByID(ctx, "i1")
	assert.NoError(t, err)
	assert.Equal(t, "i1", got.ID)
	assert.Equal(t, model.TypeLost, got.Type)
	assert.Equal(t, model.StringList{"keys", "honda"}, got.Tags)

	// неизвестный id — ErrRecordNotFound
	got, err = r.GetByID(ctx, "missing")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestItemRepository_Save_OverwritesFields(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := mkItem("i2", model.TypeFound, model.CategoryBags, time.Now().Add(-time.Hour))
	assert.NoError(t, r.Create(ctx, &it))

	it.Title = "updated"
	it.Status = model.StatusClaimed
	assert.NoError(t, r.Save(ctx, &it))

	got, err := r.GetByID(ctx, "i2")
	assert.NoError(t, err)
	assert.Equal(t, "updated", got.Title)
	assert.Equal(t, model.StatusClaimed, got.Status)
	// нетронутые поля сохраняются
	assert.Equal(t, model.CategoryBags, got.Category)
	assert.Equal(t, "Springfield", got.Location.City)
}

func TestItemRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := mkItem("i3", model.TypeLost, model.CategoryPets, time.Now())
	assert.NoError(t, r.Create(ctx, &it))

	existed, err := r.Delete(ctx, "i3")
	assert.NoError(t, err)
	assert.True(t, existed)

	// после удаления — не найдено
	_, err = r.GetByID(ctx, "i3")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// повторное удаление — existed=false
	existed, err = r.Delete(ctx, "i3")
	assert.NoError(t, err)
	assert.False(t, existed)
}

func TestItemRepository_Search_EqualityFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	now := time.Now()
	a := mkItem("a", model.TypeLost, model.CategoryKeys, now.Add(-3*time.Hour))
	b := mkItem("b", model.TypeFound, model.CategoryKeys, now.Add(-2*time.Hour))
	c := mkItem("c", model.TypeFound, model.CategoryBags, now.Add(-1*time.Hour))
	c.Status = model.StatusArchived
	for _, it := range []model.Item{a, b, c} {
		cp := it
		assert.NoError(t, r.Create(ctx, &cp))
	}

	items, total, err := r.Search(ctx, SearchFilter{Type: model.TypeFound}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	if assert.Len(t, items, 2) {
		// сортировка по дате заявки по убыванию
		assert.Equal(t, "c", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
	}

	items, total, err = r.Search(ctx, SearchFilter{Category: model.CategoryKeys, Status: model.StatusActive}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

func TestItemRepository_Search_SubstringFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	a := mkItem("a", model.TypeLost, model.CategoryElectronics, time.Now().Add(-time.Hour))
	a.Title = "iPhone in blue case"
	a.Location.City = "San Francisco"
	a.Location.State = "CA"
	a.Tags = model.StringList{"phone", "apple"}

	b := mkItem("b", model.TypeLost, model.CategoryElectronics, time.Now())
	b.Title = "Kindle reader"
	b.Description = "left on a bench"
	b.Location.City = "Oakland"
	b.Location.State = "CA"

	for _, it := range []model.Item{a, b} {
		cp := it
		assert.NoError(t, r.Create(ctx, &cp))
	}

	// подстрока по городу, регистр не важен
	items, total, err := r.Search(ctx, SearchFilter{Location: "francisco"}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "a", items[0].ID)
	}

	// подстрока по штату находит обе заявки
	_, total, err = r.Search(ctx, SearchFilter{Location: "ca"}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// ключевое слово по заголовку
	items, _, err = r.Search(ctx, SearchFilter{Keyword: "kindle"}, 1, 20)
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "b", items[0].ID)
	}

	// ключевое слово по описанию
	items, _, err = r.Search(ctx, SearchFilter{Keyword: "bench"}, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	// ключевое слово по тегам
	items, _, err = r.Search(ctx, SearchFilter{Keyword: "apple"}, 1, 20)
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "a", items[0].ID)
	}
}

func TestItemRepository_Search_DateRangeAndPagination(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-10 * 24 * time.Hour)
	ids := []string{"d1", "d2", "d3"}
	for i, id := range ids {
		it := mkItem(id, model.TypeLost, model.CategoryBooks, base.Add(time.Duration(i)*24*time.Hour))
		assert.NoError(t, r.Create(ctx, &it))
	}

	// диапазон дат включительный
	from := base.Add(12 * time.Hour)
	to := base.Add(3 * 24 * time.Hour)
	items, total, err := r.Search(ctx, SearchFilter{DateFrom: &from, DateTo: &to}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	if assert.Len(t, items, 2) {
		assert.Equal(t, "d3", items[0].ID)
		assert.Equal(t, "d2", items[1].ID)
	}

	// страница 2 при limit=1 — вторая по убыванию даты (d2)
	items, total, err = r.Search(ctx, SearchFilter{}, 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "d2", items[0].ID)
	}

	// обход всех страниц воспроизводит полный отсортированный набор без дыр
	var seen []string
	for page := 1; ; page++ {
		chunk, _, err := r.Search(ctx, SearchFilter{}, page, 2)
		assert.NoError(t, err)
		if len(chunk) == 0 {
			break
		}
		for _, it := range chunk {
			seen = append(seen, it.ID)
		}
	}
	assert.Equal(t, []string{"d3", "d2", "d1"}, seen)
}

func TestItemRepository_ListCandidates_ActiveOppositeOnly(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	now := time.Now()
	active := mkItem("f1", model.TypeFound, model.CategoryBags, now)
	archived := mkItem("f2", model.TypeFound, model.CategoryBags, now)
	archived.Status = model.StatusArchived
	otherCat := mkItem("f3", model.TypeFound, model.CategoryKeys, now)
	sameType := mkItem("l1", model.TypeLost, model.CategoryBags, now)

	for _, it := range []model.Item{active, archived, otherCat, sameType} {
		cp := it
		assert.NoError(t, r.Create(ctx, &cp))
	}

	got, err := r.ListCandidates(ctx, model.TypeFound, model.CategoryBags)
	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "f1", got[0].ID)
	}
}
