package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/youruser/pengdeck/internal/deck"
)

// User mirrors the auth provider's user table. The core only reads
// it for ownership checks and author display.
type User struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// Session is a bearer token tied to a user.
type Session struct {
	ID        string    `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;not null"`
	UserID    string    `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string { return "sessions" }

// CardRecord is one catalog card row.
type CardRecord struct {
	ID       int    `gorm:"primaryKey"`
	Name     string `gorm:"uniqueIndex;not null"`
	Category string `gorm:"not null"`
	Color    string `gorm:"not null"`
	Rarity   string `gorm:"not null"`
	Cost     int    `gorm:"not null"`
	Img      string
}

func (CardRecord) TableName() string { return "cards" }

// ColorStatsColumn stores deck.ColorStats as jsonb. A nil map stays
// NULL, which is how decks saved before the column existed look.
type ColorStatsColumn deck.ColorStats

func (s ColorStatsColumn) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *ColorStatsColumn) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported color stats column type %T", value)
	}
}

// DeckRecord is a persisted deck plus its card rows.
type DeckRecord struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	UserID      string           `gorm:"index;not null"`
	IsPublic    bool             `gorm:"index;not null;default:false"`
	ColorStats  ColorStatsColumn `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Cards []DeckCardRecord `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`
}

func (DeckRecord) TableName() string { return "decks" }

// DeckCardRecord is one (deck, card, quantity) association row.
type DeckCardRecord struct {
	DeckID   int `gorm:"primaryKey"`
	CardID   int `gorm:"primaryKey"`
	Quantity int `gorm:"not null;default:1"`

	Card CardRecord `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

func (DeckCardRecord) TableName() string { return "deck_cards" }
