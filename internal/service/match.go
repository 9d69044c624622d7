package service

import (
	"FoundLink/internal/model"
	"FoundLink/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Веса слагаемых оценки. Сумма максимум 1.0, дополнительной нормализации нет.
const (
	weightCategory = 0.3
	weightLocation = 0.3
	weightDate     = 0.2
	weightText     = 0.2

	// грубая замена геодистанции: один город — близко, разные — далеко
	sameCityDistance = 1.0
	farDistance      = 10.0
	proximityRadius  = 5.0

	dateWindowDays = 7.0
)

// MatchService инкапсулирует подбор совпадений: оценку пар, сохранение
// предложений выше порога и работу с их статусами.
type MatchService struct {
	items     repo.ItemRepository
	matches   repo.MatchRepository
	threshold float64
	logger    *zap.SugaredLogger
}

func NewMatchService(items repo.ItemRepository, matches repo.MatchRepository, threshold float64, logger *zap.SugaredLogger) *MatchService {
	return &MatchService{items: items, matches: matches, threshold: threshold, logger: logger}
}

// GenerateFor оценивает новую заявку против активных заявок противоположного
// типа той же категории и сохраняет пары со score выше порога. Вызывается
// один раз, в момент создания заявки; правки заявок пересчёт не запускают.
func (s *MatchService) GenerateFor(ctx context.Context, item *model.Item) error {
	candidates, err := s.items.ListCandidates(ctx, item.Type.Opposite(), item.Category)
	if err != nil {
		return err
	}

	for i := range candidates {
		cand := &candidates[i]
		score := matchScore(item, cand)
		if score <= s.threshold {
			continue
		}
		m := &model.MatchSuggestion{
			ID:            uuid.NewString(),
			ItemID:        item.ID,
			MatchedItemID: cand.ID,
			Score:         score,
			Reasons:       matchReasons(item, cand),
			Status:        model.MatchPending,
		}
		if err := s.matches.Create(ctx, m); err != nil {
			// подбор best-effort: одна неудавшаяся пара не мешает остальным
			s.logger.Errorw("failed to store match suggestion",
				"item_id", item.ID, "matched_item_id", cand.ID, "error", err)
			continue
		}
		s.logger.Infow("match suggested",
			"item_id", item.ID, "matched_item_id", cand.ID, "score", score)
	}
	return nil
}

// GetForItem возвращает совпадения заявки (с любой стороны пары) по убыванию
// score, подгружая противоположную заявку каждой пары. Для удалённых заявок
// MatchedItem остаётся nil — запись совпадения не прячется.
func (s *MatchService) GetForItem(ctx context.Context, itemID string) ([]model.MatchSuggestion, error) {
	matches, err := s.matches.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.MatchSuggestion{}
	}

	for i := range matches {
		otherID := matches[i].MatchedItemID
		if otherID == itemID {
			otherID = matches[i].ItemID
		}
		other, err := s.items.GetByID(ctx, otherID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue // висячая ссылка после удаления заявки
		}
		if err != nil {
			return nil, err
		}
		matches[i].MatchedItem = other
	}
	return matches, nil
}

// UpdateStatus переводит совпадение в pending/accepted/rejected.
// Существование и активность заявок пары не перепроверяются.
func (s *MatchService) UpdateStatus(ctx context.Context, matchID string, status model.MatchStatus) (*model.MatchSuggestion, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	m, err := s.matches.UpdateStatus(ctx, matchID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// matchScore — взвешенная оценка пары в [0,1]. Разные категории сразу
// дают 0, остальные слагаемые не рассматриваются.
func matchScore(a, b *model.Item) float64 {
	if a.Category != b.Category {
		return 0
	}
	score := weightCategory
	score += locationScore(a.Location, b.Location)
	score += dateScore(a.MatchDate(), b.MatchDate())
	score += weightText * textSimilarity(matchText(a), matchText(b))
	return score
}

func locationScore(a, b model.Location) float64 {
	d := locationDistance(a, b)
	if d >= proximityRadius {
		return 0
	}
	return weightLocation * (1 - d/proximityRadius)
}

func locationDistance(a, b model.Location) float64 {
	if a.City == b.City && a.State == b.State {
		return sameCityDistance
	}
	return farDistance
}

func dateScore(a, b time.Time) float64 {
	days := math.Abs(a.Sub(b).Hours()) / 24
	if days >= dateWindowDays {
		return 0
	}
	return weightDate * (1 - days/dateWindowDays)
}

// matchText — текст заявки для сравнения: заголовок, описание и теги.
func matchText(i *model.Item) string {
	return i.Title + " " + i.Description + " " + strings.Join(i.Tags, " ")
}

// textSimilarity — индекс Жаккара по множествам слов (нижний регистр,
// разбиение по пробелам).
func textSimilarity(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)

	union := make(map[string]struct{}, len(ta)+len(tb))
	for w := range ta {
		union[w] = struct{}{}
	}
	var common int
	for w := range tb {
		if _, ok := ta[w]; ok {
			common++
		}
		union[w] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(common) / float64(len(union))
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// matchReasons строит человекочитаемые причины: категория всегда, город при
// совпадении, плюс теги новой заявки, нашедшиеся подстрокой в тегах кандидата.
func matchReasons(a, b *model.Item) model.StringList {
	reasons := model.StringList{fmt.Sprintf("Same category: %s", a.Category)}

	if a.Location.City == b.Location.City {
		reasons = append(reasons, fmt.Sprintf("Same city: %s", a.Location.City))
	}

	var common []string
	for _, tag := range a.Tags {
		for _, other := range b.Tags {
			if strings.Contains(strings.ToLower(other), strings.ToLower(tag)) {
				common = append(common, tag)
				break
			}
		}
	}
	if len(common) > 0 {
		reasons = append(reasons, "Similar descriptions: "+strings.Join(common, ", "))
	}
	return reasons
}
