package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ItemType — вид заявки: потерянная или найденная вещь.
// Тип фиксируется при создании и дальше не меняется.
type ItemType string

const (
	TypeLost  ItemType = "lost"
	TypeFound ItemType = "found"
)

// Opposite возвращает противоположный тип (lost <-> found).
func (t ItemType) Opposite() ItemType {
	if t == TypeLost {
		return TypeFound
	}
	return TypeLost
}

// Valid проверяет, что тип из допустимого набора.
func (t ItemType) Valid() bool {
	return t == TypeLost || t == TypeFound
}

// ItemStatus — статус заявки. Переходы между статусами не ограничены,
// допускается любое прямое обновление (см. DESIGN.md).
type ItemStatus string

const (
	StatusActive   ItemStatus = "active"
	StatusMatched  ItemStatus = "matched"
	StatusClaimed  ItemStatus = "claimed"
	StatusExpired  ItemStatus = "expired"
	StatusArchived ItemStatus = "archived"
)

// Valid проверяет, что статус из допустимого набора.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusActive, StatusMatched, StatusClaimed, StatusExpired, StatusArchived:
		return true
	}
	return false
}

// Location — адресные данные заявки. Координаты и ориентир опциональны.
type Location struct {
	Address  string   `json:"address"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	ZipCode  string   `json:"zipCode,omitempty"`
	Landmark string   `json:"landmark,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

// ContactInfo — контакт заявителя. Проверкой полей занимается API-слой.
type ContactInfo struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"` // "email" | "phone"
	Anonymous        bool   `json:"anonymous,omitempty"`
}

// StringList хранит срез строк одной текстовой JSON-колонкой.
type StringList []string

// Value сериализует список в JSON для записи в БД.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan читает JSON-колонку обратно в срез.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("stringlist: unsupported source type %T", src)
	}
}

// Item — заявка о потерянной или найденной вещи. Общие поля плюс
// поля варианта; какие из них осмыслены, определяет Type.
type Item struct {
	ID   string   `gorm:"primaryKey;type:uuid" json:"id"`
	Type ItemType `gorm:"not null;index" json:"type"`

	Title       string   `gorm:"not null" json:"title"`
	Description string   `json:"description"`
	Category    Category `gorm:"not null;index" json:"category"`

	Location Location `gorm:"embedded;embeddedPrefix:loc_" json:"location"`

	DateReported time.Time   `gorm:"not null;index" json:"dateReported"`
	Images       StringList  `gorm:"type:text" json:"images"`
	Contact      ContactInfo `gorm:"embedded;embeddedPrefix:contact_" json:"contactInfo"`
	Status       ItemStatus  `gorm:"not null;index" json:"status"`
	Tags         StringList  `gorm:"type:text" json:"tags"`

	// Поля варианта lost
	DateLost         *time.Time `json:"dateLost,omitempty"`
	Reward           *float64   `json:"reward,omitempty"`
	LastSeenLocation Location   `gorm:"embedded;embeddedPrefix:seen_" json:"lastSeenLocation,omitzero"`

	// Поля варианта found
	DateFound         *time.Time `json:"dateFound,omitempty"`
	CurrentLocation   Location   `gorm:"embedded;embeddedPrefix:cur_" json:"currentLocation,omitzero"`
	HandedToAuthority bool       `json:"handedToAuthority,omitempty"`
	AuthorityContact  string     `json:"authorityContact,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// MatchDate — дата события для подбора совпадений: dateLost для потерянных
// (с откатом на дату заявки), dateFound для найденных.
func (i *Item) MatchDate() time.Time {
	switch i.Type {
	case TypeLost:
		if i.DateLost != nil {
			return *i.DateLost
		}
	case TypeFound:
		if i.DateFound != nil {
			return *i.DateFound
		}
	}
	return i.DateReported
}
