package deck

import (
	"time"

	"github.com/youruser/pengdeck/internal/cards"
)

// ColorStats maps a color to the number of cards of that color in a
// deck. Colors with no cards are omitted.
type ColorStats map[cards.Color]int

// DeckCard pairs a resolved catalog card with its quantity in a deck.
type DeckCard struct {
	Card     cards.Card `json:"card"`
	Quantity int        `json:"quantity"`
}

// Summary is a persisted deck as returned by the store. ColorStats is
// nil on decks saved before color statistics were recorded.
type Summary struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	UserID      string     `json:"userId"`
	IsPublic    bool       `json:"isPublic"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	AuthorName  string     `json:"authorName,omitempty"`
	ColorStats  ColorStats `json:"colorStats,omitempty"`
	Cards       []DeckCard `json:"cards,omitempty"`
}

// CardQuantity is one line of a save request.
type CardQuantity struct {
	CardID   int `json:"cardId"`
	Quantity int `json:"quantity"`
}

// SaveRequest is the payload handed to the persistence collaborator.
// ID zero means create; otherwise the target deck's metadata is
// replaced and its card rows are fully swapped for Cards.
type SaveRequest struct {
	ID          int            `json:"id,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	IsPublic    bool           `json:"isPublic"`
	Cards       []CardQuantity `json:"cards"`
	ColorStats  ColorStats     `json:"colorStats,omitempty"`
}

type SaveResult struct {
	Success bool   `json:"success"`
	DeckID  int    `json:"deckId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Saver persists whole decks atomically. A returned error means the
// call itself failed; a SaveResult with Success false carries a
// rejection (ownership, validation) from the store.
type Saver interface {
	SaveDeck(req SaveRequest) (SaveResult, error)
}

type Deleter interface {
	DeleteDeck(id int) (DeleteResult, error)
}
