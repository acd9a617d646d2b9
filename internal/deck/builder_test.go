package deck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/pengdeck/internal/cards"
)

func card(id int, name string, cat cards.Category, col cards.Color, cost int) cards.Card {
	return cards.Card{ID: id, Name: name, Category: cat, Color: col, Rarity: cards.RarityCommon, Cost: cost}
}

func TestAddCardCapsAtFourCopies(t *testing.T) {
	b := NewBuilder(0)
	c := card(1, "Arctic Gale", cards.CategoryAction, cards.ColorBlue, 2)

	for i := 0; i < 4; i++ {
		b.AddCard(c)
	}
	e, ok := b.Entry("Arctic Gale")
	require.True(t, ok)
	assert.Equal(t, 4, e.Count)

	// fifth add and an increase are both no-ops
	b.AddCard(c)
	b.IncreaseCount("Arctic Gale")
	assert.Equal(t, 4, b.Stats().Total)
}

func TestDeckSizeCeiling(t *testing.T) {
	b := NewBuilder(40)
	for i := 0; i < 40; i++ {
		b.AddCard(card(i, fmt.Sprintf("Card %02d", i), cards.CategoryPenguin, cards.ColorRed, 1))
	}
	require.Equal(t, 40, b.TotalCount())

	b.AddCard(card(99, "One Too Many", cards.CategoryAction, cards.ColorBlue, 1))
	assert.Equal(t, 40, b.TotalCount())
	_, ok := b.Entry("One Too Many")
	assert.False(t, ok)

	b.IncreaseCount("Card 00")
	assert.Equal(t, 40, b.TotalCount())
}

func TestDecreaseCountRemovesAtOne(t *testing.T) {
	b := NewBuilder(0)
	c := card(1, "Copper Rod", cards.CategoryRod, cards.ColorYellow, 3)
	b.AddCard(c)
	b.AddCard(c)

	b.DecreaseCount("Copper Rod")
	e, ok := b.Entry("Copper Rod")
	require.True(t, ok)
	assert.Equal(t, 1, e.Count)

	b.DecreaseCount("Copper Rod")
	_, ok = b.Entry("Copper Rod")
	assert.False(t, ok)
	assert.Equal(t, 0, b.Stats().ByCategory[cards.CategoryRod])

	// decreasing an absent card is a no-op
	b.DecreaseCount("Copper Rod")
	assert.Equal(t, 0, b.TotalCount())
}

func TestStats(t *testing.T) {
	b := NewBuilder(0)
	assert.Equal(t, "0.0", b.Stats().AverageCost)

	c := card(1, "Drift Relic", cards.CategoryRelic, cards.ColorPurple, 3)
	b.AddCard(c)
	b.AddCard(c)

	stats := b.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, "3.0", stats.AverageCost)
	// every known category is present, zero or not
	require.Len(t, stats.ByCategory, len(cards.Categories))
	assert.Equal(t, 2, stats.ByCategory[cards.CategoryRelic])
	assert.Equal(t, 0, stats.ByCategory[cards.CategoryPenguin])
}

func TestColorStatsOmitsAbsentColors(t *testing.T) {
	b := NewBuilder(0)
	b.AddCard(card(1, "Arctic Gale", cards.CategoryAction, cards.ColorBlue, 2))
	b.AddCard(card(2, "Burly Penguin", cards.CategoryPenguin, cards.ColorRed, 5))
	b.AddCard(card(3, "Frost Penguin", cards.CategoryPenguin, cards.ColorBlue, 4))

	assert.Equal(t, ColorStats{cards.ColorBlue: 2, cards.ColorRed: 1}, b.ColorStats())
}

func TestClearKeepsMetadata(t *testing.T) {
	b := NewBuilder(0)
	b.SetName("Tide Rush")
	b.SetDescription("aggro list")
	b.SetPublic(true)
	b.AddCard(card(1, "Arctic Gale", cards.CategoryAction, cards.ColorBlue, 2))

	b.Clear()
	assert.Equal(t, 0, b.TotalCount())
	assert.Equal(t, "Tide Rush", b.Name())
	assert.Equal(t, "aggro list", b.Description())
	assert.True(t, b.IsPublic())
}

func TestNewBuilderFromSummary(t *testing.T) {
	s := Summary{
		Name:        "Tide Rush",
		Description: "aggro list",
		IsPublic:    true,
		Cards: []DeckCard{
			{Card: card(1, "Arctic Gale", cards.CategoryAction, cards.ColorBlue, 2), Quantity: 4},
			{Card: card(2, "Burly Penguin", cards.CategoryPenguin, cards.ColorRed, 5), Quantity: 2},
		},
	}
	b := NewBuilderFromSummary(40, s)
	assert.Equal(t, "Tide Rush", b.Name())
	assert.Equal(t, 6, b.TotalCount())
	e, ok := b.Entry("Burly Penguin")
	require.True(t, ok)
	assert.Equal(t, 2, e.Count)
}

type fakeSaver struct {
	req     SaveRequest
	result  SaveResult
	err     error
	sawBusy bool
	builder *Builder
}

func (f *fakeSaver) SaveDeck(req SaveRequest) (SaveResult, error) {
	f.req = req
	if f.builder != nil {
		f.sawBusy = f.builder.IsSaving()
	}
	return f.result, f.err
}

func TestSaveBuildsFullRequest(t *testing.T) {
	b := NewBuilder(0)
	b.SetName("Tide Rush")
	b.SetDescription("aggro list")
	b.SetPublic(true)
	b.AddCard(card(2, "Burly Penguin", cards.CategoryPenguin, cards.ColorRed, 5))
	b.AddCard(card(1, "Arctic Gale", cards.CategoryAction, cards.ColorBlue, 2))
	b.AddCard(card(1, "Arctic Gale", cards.CategoryAction, cards.ColorBlue, 2))

	saver := &fakeSaver{result: SaveResult{Success: true, DeckID: 7}, builder: b}
	result := b.Save(3, saver)

	require.True(t, result.Success)
	assert.Equal(t, 7, result.DeckID)
	assert.True(t, saver.sawBusy, "saving flag should be set during the call")
	assert.False(t, b.IsSaving())

	assert.Equal(t, 3, saver.req.ID)
	assert.Equal(t, "Tide Rush", saver.req.Name)
	assert.Equal(t, "aggro list", saver.req.Description)
	assert.True(t, saver.req.IsPublic)
	// ordered by card name
	assert.Equal(t, []CardQuantity{{CardID: 1, Quantity: 2}, {CardID: 2, Quantity: 1}}, saver.req.Cards)
	assert.Equal(t, ColorStats{cards.ColorBlue: 2, cards.ColorRed: 1}, saver.req.ColorStats)
}

func TestSaveConvertsCollaboratorError(t *testing.T) {
	b := NewBuilder(0)
	b.SetName("Tide Rush")
	saver := &fakeSaver{err: errors.New("connection refused")}

	result := b.Save(0, saver)
	assert.False(t, result.Success)
	assert.Equal(t, "connection refused", result.Error)
	assert.False(t, b.IsSaving(), "saving flag cleared after failure")
}

func TestSaveSurfacesRejectionUnchanged(t *testing.T) {
	b := NewBuilder(0)
	saver := &fakeSaver{result: SaveResult{Success: false, Error: "deck not found or you don't have permission to edit it"}}

	result := b.Save(12, saver)
	assert.False(t, result.Success)
	assert.Equal(t, saver.result.Error, result.Error)
}
