package store

import (
	"gorm.io/gorm"

	"github.com/youruser/pengdeck/internal/cards"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func toCard(rec CardRecord) cards.Card {
	return cards.Card{
		ID:       rec.ID,
		Name:     rec.Name,
		Category: cards.Category(rec.Category),
		Color:    cards.Color(rec.Color),
		Rarity:   cards.Rarity(rec.Rarity),
		Cost:     rec.Cost,
		Img:      rec.Img,
	}
}

// GetAllCards returns the full catalog ordered by id.
func (r *CardRepository) GetAllCards() ([]cards.Card, error) {
	var recs []CardRecord
	if err := r.db.Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]cards.Card, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toCard(rec))
	}
	return out, nil
}

// SeedCards inserts catalog cards that are not present yet, matched
// by name. Existing rows are left alone so reseeding is idempotent.
// Returns how many rows were inserted.
func (r *CardRepository) SeedCards(all []cards.Card) (int, error) {
	inserted := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []CardRecord
		if err := tx.Select("name").Find(&existing).Error; err != nil {
			return err
		}
		known := make(map[string]bool, len(existing))
		for _, rec := range existing {
			known[rec.Name] = true
		}

		for _, c := range all {
			if known[c.Name] {
				continue
			}
			rec := CardRecord{
				ID:       c.ID,
				Name:     c.Name,
				Category: string(c.Category),
				Color:    string(c.Color),
				Rarity:   string(c.Rarity),
				Cost:     c.Cost,
				Img:      c.Img,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
