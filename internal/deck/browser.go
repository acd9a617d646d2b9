package deck

import (
	"errors"
	"strings"

	"github.com/youruser/pengdeck/internal/cards"
)

// DecksPerPage is the browse grid's fixed page size.
const DecksPerPage = 12

// FilterState is the browse view's ephemeral filter: a free-text term
// matched against name, description and author, plus an OR-combined
// color selection matched against each deck's main color.
type FilterState struct {
	SearchTerm     string        `json:"searchTerm"`
	SelectedColors []cards.Color `json:"selectedColors"`
}

func matchesDeck(d Summary, f FilterState) bool {
	term := strings.ToLower(f.SearchTerm)
	if term != "" {
		if !strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Description), term) &&
			!strings.Contains(strings.ToLower(d.AuthorName), term) {
			return false
		}
	}
	if len(f.SelectedColors) > 0 {
		main := MainColor(d.ColorStats)
		found := false
		for _, c := range f.SelectedColors {
			if c == main {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterDecks returns the decks matching f, in input order.
func FilterDecks(decks []Summary, f FilterState) []Summary {
	out := []Summary{}
	for _, d := range decks {
		if matchesDeck(d, f) {
			out = append(out, d)
		}
	}
	return out
}

// Browser pages through a deck collection under a FilterState. Any
// filter change snaps back to page one; page numbers are 1-indexed
// and clamped.
type Browser struct {
	decks  []Summary
	filter FilterState
	page   int
}

func NewBrowser(decks []Summary) *Browser {
	return &Browser{decks: decks, page: 1}
}

func (br *Browser) Filter() FilterState { return br.filter }

func (br *Browser) SetSearchTerm(term string) {
	br.filter.SearchTerm = term
	br.page = 1
}

func (br *Browser) SetSelectedColors(colors []cards.Color) {
	br.filter.SelectedColors = colors
	br.page = 1
}

// ResetFilters clears the filter state entirely.
func (br *Browser) ResetFilters() {
	br.filter = FilterState{}
	br.page = 1
}

// Filtered is the full match list before pagination.
func (br *Browser) Filtered() []Summary {
	return FilterDecks(br.decks, br.filter)
}

// Counts reports filtered vs total deck counts, the "Showing X of Y"
// line.
func (br *Browser) Counts() (filtered, total int) {
	return len(br.Filtered()), len(br.decks)
}

// TotalPages is ceil(filtered/DecksPerPage), never less than one even
// for an empty result.
func (br *Browser) TotalPages() int {
	n := len(br.Filtered())
	pages := (n + DecksPerPage - 1) / DecksPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (br *Browser) CurrentPage() int {
	return br.clampPage(br.page)
}

// SetPage moves to the given page, clamped into [1, TotalPages].
func (br *Browser) SetPage(page int) {
	br.page = br.clampPage(page)
}

func (br *Browser) clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if max := br.TotalPages(); page > max {
		return max
	}
	return page
}

// Page returns the current page's slice of the filtered decks.
func (br *Browser) Page() []Summary {
	filtered := br.Filtered()
	page := br.CurrentPage()
	start := (page - 1) * DecksPerPage
	if start >= len(filtered) {
		return []Summary{}
	}
	end := start + DecksPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// DeleteDeck asks the persistence collaborator to delete a deck and,
// only on confirmed success, drops it from the local list. On any
// failure the list is untouched and the store's message is returned.
func (br *Browser) DeleteDeck(id int, deleter Deleter) error {
	result, err := deleter.DeleteDeck(id)
	if err != nil {
		return err
	}
	if !result.Success {
		if result.Error != "" {
			return errors.New(result.Error)
		}
		return errors.New("failed to delete deck")
	}
	kept := br.decks[:0:0]
	for _, d := range br.decks {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	br.decks = kept
	return nil
}
