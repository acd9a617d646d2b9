package store

import (
	"github.com/youruser/pengdeck/internal/cards"
	"github.com/youruser/pengdeck/internal/deck"
)

// BackfillColorStats recomputes color statistics for decks saved
// before the column existed (NULL color_stats) from their card rows.
// Returns how many decks were updated. Decks with no card rows are
// left NULL; there is nothing to derive from.
func (r *DeckRepository) BackfillColorStats() (int, error) {
	var recs []DeckRecord
	err := r.db.Preload("Cards.Card").Where("color_stats IS NULL").Find(&recs).Error
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, rec := range recs {
		if len(rec.Cards) == 0 {
			continue
		}
		stats := deck.ColorStats{}
		for _, row := range rec.Cards {
			stats[cards.Color(row.Card.Color)] += row.Quantity
		}
		err := r.db.Model(&DeckRecord{}).Where("id = ?", rec.ID).
			Update("color_stats", ColorStatsColumn(stats)).Error
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// HasMissingColorStats reports whether any deck still lacks stats,
// letting the scheduler skip idle runs.
func (r *DeckRepository) HasMissingColorStats() (bool, error) {
	var count int64
	err := r.db.Model(&DeckRecord{}).Where("color_stats IS NULL").Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
