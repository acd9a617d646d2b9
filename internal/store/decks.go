package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/youruser/pengdeck/internal/deck"
)

type DeckRepository struct {
	db *gorm.DB
}

func NewDeckRepository(db *gorm.DB) *DeckRepository {
	return &DeckRepository{db: db}
}

// ForUser scopes save/delete to one owner. The returned value
// satisfies deck.Saver and deck.Deleter.
func (r *DeckRepository) ForUser(userID string) *UserDecks {
	return &UserDecks{repo: r, userID: userID}
}

// UserDecks is the persistence collaborator handed to the deck
// engine: every write it performs is checked against its owner.
type UserDecks struct {
	repo   *DeckRepository
	userID string
}

// SaveDeck creates or fully replaces a deck in one transaction. On
// update the metadata is rewritten and the card associations are
// deleted then reinserted, so the stored card list is always exactly
// the request's. Ownership and validation rejections come back as a
// failure result, not an error.
func (u *UserDecks) SaveDeck(req deck.SaveRequest) (deck.SaveResult, error) {
	if req.Name == "" {
		return deck.SaveResult{Success: false, Error: "name is required"}, nil
	}
	for _, line := range req.Cards {
		if line.Quantity < 1 || line.Quantity > deck.MaxCopiesPerCard {
			return deck.SaveResult{
				Success: false,
				Error:   fmt.Sprintf("invalid quantity %d for card %d", line.Quantity, line.CardID),
			}, nil
		}
	}

	var deckID int
	var rejection string
	err := u.repo.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if req.ID != 0 {
			var existing DeckRecord
			err := tx.Where("id = ? AND user_id = ?", req.ID, u.userID).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				rejection = "deck not found or you don't have permission to edit it"
				return nil
			}
			if err != nil {
				return err
			}
			updates := map[string]interface{}{
				"name":        req.Name,
				"description": req.Description,
				"is_public":   req.IsPublic,
				"color_stats": ColorStatsColumn(req.ColorStats),
				"updated_at":  now,
			}
			if err := tx.Model(&DeckRecord{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
				return err
			}
			deckID = req.ID
			if err := tx.Where("deck_id = ?", deckID).Delete(&DeckCardRecord{}).Error; err != nil {
				return err
			}
		} else {
			rec := DeckRecord{
				Name:        req.Name,
				Description: req.Description,
				UserID:      u.userID,
				IsPublic:    req.IsPublic,
				ColorStats:  ColorStatsColumn(req.ColorStats),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			deckID = rec.ID
		}

		for _, line := range req.Cards {
			row := DeckCardRecord{DeckID: deckID, CardID: line.CardID, Quantity: line.Quantity}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return deck.SaveResult{}, err
	}
	if rejection != "" {
		return deck.SaveResult{Success: false, Error: rejection}, nil
	}
	return deck.SaveResult{Success: true, DeckID: deckID}, nil
}

// DeleteDeck removes a deck and its card rows, refusing decks the
// owner does not hold.
func (u *UserDecks) DeleteDeck(id int) (deck.DeleteResult, error) {
	var rejection string
	err := u.repo.db.Transaction(func(tx *gorm.DB) error {
		var existing DeckRecord
		err := tx.Where("id = ? AND user_id = ?", id, u.userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rejection = "deck not found or you don't have permission to delete it"
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("deck_id = ?", id).Delete(&DeckCardRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&DeckRecord{}, id).Error
	})
	if err != nil {
		return deck.DeleteResult{}, err
	}
	if rejection != "" {
		return deck.DeleteResult{Success: false, Error: rejection}, nil
	}
	return deck.DeleteResult{Success: true}, nil
}

func (r *DeckRepository) authorNames(userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}
	var users []User
	if err := r.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, usr := range users {
		names[usr.ID] = usr.Name
	}
	return names, nil
}

func toSummary(rec DeckRecord, authorName string) deck.Summary {
	s := deck.Summary{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		UserID:      rec.UserID,
		IsPublic:    rec.IsPublic,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		AuthorName:  authorName,
		ColorStats:  deck.ColorStats(rec.ColorStats),
	}
	for _, row := range rec.Cards {
		s.Cards = append(s.Cards, deck.DeckCard{Card: toCard(row.Card), Quantity: row.Quantity})
	}
	return s
}

func (r *DeckRepository) summaries(recs []DeckRecord) ([]deck.Summary, error) {
	ids := make([]string, 0, len(recs))
	seen := map[string]bool{}
	for _, rec := range recs {
		if !seen[rec.UserID] {
			seen[rec.UserID] = true
			ids = append(ids, rec.UserID)
		}
	}
	names, err := r.authorNames(ids)
	if err != nil {
		return nil, err
	}
	out := make([]deck.Summary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toSummary(rec, names[rec.UserID]))
	}
	return out, nil
}

// GetDeck fetches one deck with its card list resolved.
func (r *DeckRepository) GetDeck(id int) (deck.Summary, error) {
	var rec DeckRecord
	if err := r.db.Preload("Cards.Card").First(&rec, id).Error; err != nil {
		return deck.Summary{}, err
	}
	names, err := r.authorNames([]string{rec.UserID})
	if err != nil {
		return deck.Summary{}, err
	}
	return toSummary(rec, names[rec.UserID]), nil
}

// GetPublicDecks lists community decks, newest update first.
func (r *DeckRepository) GetPublicDecks() ([]deck.Summary, error) {
	var recs []DeckRecord
	if err := r.db.Where("is_public = ?", true).Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return r.summaries(recs)
}

// GetOwnedDecks lists every deck a user owns, public or not.
func (r *DeckRepository) GetOwnedDecks(userID string) ([]deck.Summary, error) {
	var recs []DeckRecord
	if err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return r.summaries(recs)
}
