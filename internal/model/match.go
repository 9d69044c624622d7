package model

import "time"

// MatchStatus — статус предложенного совпадения.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Valid проверяет, что статус из допустимого набора.
func (s MatchStatus) Valid() bool {
	return s == MatchPending || s == MatchAccepted || s == MatchRejected
}

// MatchSuggestion — кандидат-пара «потерянное — найденное». ItemID и
// MatchedItemID хранятся со стороны заявки, создание которой породило
// запись; при чтении запись трактуется симметрично.
type MatchSuggestion struct {
	ID            string      `gorm:"primaryKey;type:uuid" json:"id"`
	ItemID        string      `gorm:"not null;index" json:"itemId"`
	MatchedItemID string      `gorm:"not null;index" json:"matchedItemId"`
	Score         float64     `gorm:"not null" json:"score"`
	Reasons       StringList  `gorm:"type:text" json:"reasons"`
	Status        MatchStatus `gorm:"not null" json:"status"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`

	// MatchedItem — противоположная заявка пары относительно запрошенного
	// itemId. Заполняется при чтении, в БД не хранится; nil, если заявка
	// уже удалена (висячие ссылки допустимы).
	MatchedItem *Item `gorm:"-" json:"matchedItem,omitempty"`
}
