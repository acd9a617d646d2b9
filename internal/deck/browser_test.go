package deck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/pengdeck/internal/cards"
)

func summaries(n int) []Summary {
	out := make([]Summary, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Summary{
			ID:         i,
			Name:       fmt.Sprintf("Deck %02d", i),
			AuthorName: "Skipper",
			ColorStats: ColorStats{cards.ColorBlue: 30, cards.ColorRed: 10},
		})
	}
	return out
}

func TestFilterDecksFreeText(t *testing.T) {
	decks := []Summary{
		{ID: 1, Name: "Tide Rush", Description: "fast blue aggro", AuthorName: "Skipper"},
		{ID: 2, Name: "Relic Pile", AuthorName: "Kowalski"},
		{ID: 3, Name: "Control", Description: "grindy", AuthorName: "Rico"},
	}

	got := FilterDecks(decks, FilterState{SearchTerm: "AGGRO"})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got = FilterDecks(decks, FilterState{SearchTerm: "kowalski"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	// empty fields never match a non-empty term, but don't exclude the
	// deck when another field matches
	got = FilterDecks(decks, FilterState{SearchTerm: "relic"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilterDecksByMainColor(t *testing.T) {
	decks := []Summary{
		{ID: 1, ColorStats: ColorStats{cards.ColorBlue: 30, cards.ColorRed: 10}},
		{ID: 2, ColorStats: ColorStats{cards.ColorRed: 25, cards.ColorBlue: 15}},
		{ID: 3}, // no stats recorded
	}

	got := FilterDecks(decks, FilterState{SelectedColors: []cards.Color{cards.ColorBlue}})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// secondary colors do not count
	got = FilterDecks(decks, FilterState{SelectedColors: []cards.Color{cards.ColorYellow}})
	assert.Empty(t, got)
}

func TestBrowserEmptyResultHasOnePage(t *testing.T) {
	br := NewBrowser(summaries(5))
	br.SetSelectedColors([]cards.Color{cards.ColorGreen})

	assert.Empty(t, br.Page())
	assert.Equal(t, 1, br.TotalPages())
	assert.Equal(t, 1, br.CurrentPage())
}

func TestBrowserPagination(t *testing.T) {
	br := NewBrowser(summaries(30))

	assert.Equal(t, 3, br.TotalPages())
	assert.Len(t, br.Page(), DecksPerPage)

	br.SetPage(3)
	page := br.Page()
	require.Len(t, page, 6)
	assert.Equal(t, "Deck 25", page[0].Name)

	// out-of-range pages clamp
	br.SetPage(99)
	assert.Equal(t, 3, br.CurrentPage())
	br.SetPage(-1)
	assert.Equal(t, 1, br.CurrentPage())
}

func TestBrowserFilterChangeResetsPage(t *testing.T) {
	br := NewBrowser(summaries(30))
	br.SetPage(3)
	require.Equal(t, 3, br.CurrentPage())

	br.SetSearchTerm("Deck")
	assert.Equal(t, 1, br.CurrentPage())

	br.SetPage(2)
	br.SetSelectedColors([]cards.Color{cards.ColorBlue})
	assert.Equal(t, 1, br.CurrentPage())

	br.SetPage(2)
	br.ResetFilters()
	assert.Equal(t, 1, br.CurrentPage())
}

func TestBrowserCounts(t *testing.T) {
	br := NewBrowser(summaries(15))
	br.SetSearchTerm("Deck 0")
	filtered, total := br.Counts()
	assert.Equal(t, 9, filtered)
	assert.Equal(t, 15, total)
}

type fakeDeleter struct {
	result DeleteResult
	err    error
	calls  []int
}

func (f *fakeDeleter) DeleteDeck(id int) (DeleteResult, error) {
	f.calls = append(f.calls, id)
	return f.result, f.err
}

func TestBrowserDeleteDeck(t *testing.T) {
	br := NewBrowser(summaries(3))

	del := &fakeDeleter{result: DeleteResult{Success: true}}
	require.NoError(t, br.DeleteDeck(2, del))
	assert.Equal(t, []int{2}, del.calls)

	_, total := br.Counts()
	assert.Equal(t, 2, total)
	for _, d := range br.Filtered() {
		assert.NotEqual(t, 2, d.ID)
	}
}

func TestBrowserDeleteFailureKeepsList(t *testing.T) {
	br := NewBrowser(summaries(3))

	del := &fakeDeleter{result: DeleteResult{Success: false, Error: "deck not found or you don't have permission to delete it"}}
	err := br.DeleteDeck(2, del)
	require.Error(t, err)
	assert.Equal(t, del.result.Error, err.Error())

	_, total := br.Counts()
	assert.Equal(t, 3, total)

	del = &fakeDeleter{err: errors.New("connection refused")}
	require.Error(t, br.DeleteDeck(1, del))
	_, total = br.Counts()
	assert.Equal(t, 3, total)
}
