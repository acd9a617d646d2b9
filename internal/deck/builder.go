package deck

import (
	"fmt"
	"sort"

	"github.com/youruser/pengdeck/internal/cards"
)

// MaxCopiesPerCard caps how many copies of one card a deck may run.
const MaxCopiesPerCard = 4

// DefaultDeckSize is the legal deck size ceiling. An earlier revision
// of the game used 52; pass that to NewBuilder if compatibility with
// old decks is needed.
const DefaultDeckSize = 40

// Entry is one card's chosen quantity in the working deck. Count is
// always in [1, MaxCopiesPerCard]; an entry at zero is removed, never
// kept.
type Entry struct {
	Card  cards.Card
	Count int
}

// Stats aggregates the working deck. ByCategory carries every known
// category, zero or not. AverageCost is pre-formatted to one decimal
// and is "0.0" for an empty deck.
type Stats struct {
	Total       int                    `json:"total"`
	ByCategory  map[cards.Category]int `json:"byCategory"`
	AverageCost string                 `json:"averageCost"`
}

// Builder owns one deck-editing session: the working deck keyed by
// card name, the display metadata, and the saving flag. It is not
// safe for concurrent use; a session is single-threaded.
//
// Keying by name rather than id matches the deck-code format, which
// identifies cards by normalized name.
type Builder struct {
	limit       int
	name        string
	description string
	isPublic    bool
	entries     map[string]Entry
	saving      bool
}

// NewBuilder returns an empty builder with the given deck size
// ceiling. A limit of zero or less falls back to DefaultDeckSize.
func NewBuilder(limit int) *Builder {
	if limit <= 0 {
		limit = DefaultDeckSize
	}
	return &Builder{
		limit:   limit,
		name:    "New Deck",
		entries: make(map[string]Entry),
	}
}

// NewBuilderFromSummary seeds a builder from an existing deck's
// resolved card list for edit mode.
func NewBuilderFromSummary(limit int, s Summary) *Builder {
	b := NewBuilder(limit)
	b.name = s.Name
	b.description = s.Description
	b.isPublic = s.IsPublic
	for _, dc := range s.Cards {
		if dc.Quantity < 1 {
			continue
		}
		count := dc.Quantity
		if count > MaxCopiesPerCard {
			count = MaxCopiesPerCard
		}
		b.entries[dc.Card.Name] = Entry{Card: dc.Card, Count: count}
	}
	return b
}

func (b *Builder) Name() string        { return b.name }
func (b *Builder) Description() string { return b.description }
func (b *Builder) IsPublic() bool      { return b.isPublic }
func (b *Builder) IsSaving() bool      { return b.saving }
func (b *Builder) SizeLimit() int      { return b.limit }

func (b *Builder) SetName(name string)        { b.name = name }
func (b *Builder) SetDescription(desc string) { b.description = desc }
func (b *Builder) SetPublic(public bool)      { b.isPublic = public }

// TotalCount is the sum of all entry counts.
func (b *Builder) TotalCount() int {
	total := 0
	for _, e := range b.entries {
		total += e.Count
	}
	return total
}

// Entry looks up the working-deck entry for a card name.
func (b *Builder) Entry(cardName string) (Entry, bool) {
	e, ok := b.entries[cardName]
	return e, ok
}

// Entries returns the working deck ordered by cost, then name, the
// order the deck panel displays.
func (b *Builder) Entries() []Entry {
	out := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Card.Cost != out[j].Card.Cost {
			return out[i].Card.Cost < out[j].Card.Cost
		}
		return out[i].Card.Name < out[j].Card.Name
	})
	return out
}

// AddCard puts one copy of card into the deck: a new entry at count 1,
// or an increment on an existing entry below the per-card cap. No-op
// when the deck is full or the entry is already at the cap.
func (b *Builder) AddCard(card cards.Card) {
	if b.TotalCount() >= b.limit {
		return
	}
	e, ok := b.entries[card.Name]
	if !ok {
		b.entries[card.Name] = Entry{Card: card, Count: 1}
		return
	}
	if e.Count < MaxCopiesPerCard {
		e.Count++
		b.entries[card.Name] = e
	}
}

// IncreaseCount increments an existing entry, subject to the same
// caps as AddCard. Unknown names are ignored.
func (b *Builder) IncreaseCount(cardName string) {
	if b.TotalCount() >= b.limit {
		return
	}
	e, ok := b.entries[cardName]
	if !ok || e.Count >= MaxCopiesPerCard {
		return
	}
	e.Count++
	b.entries[cardName] = e
}

// DecreaseCount decrements an entry, removing it entirely when it
// drops from 1.
func (b *Builder) DecreaseCount(cardName string) {
	e, ok := b.entries[cardName]
	if !ok {
		return
	}
	if e.Count > 1 {
		e.Count--
		b.entries[cardName] = e
		return
	}
	delete(b.entries, cardName)
}

// Clear empties the working deck. Name, description and the public
// flag are untouched.
func (b *Builder) Clear() {
	b.entries = make(map[string]Entry)
}

// Stats computes the aggregate view of the working deck.
func (b *Builder) Stats() Stats {
	total := b.TotalCount()
	byCategory := make(map[cards.Category]int, len(cards.Categories))
	for _, cat := range cards.Categories {
		byCategory[cat] = 0
	}
	costSum := 0
	for _, e := range b.entries {
		byCategory[e.Card.Category] += e.Count
		costSum += e.Card.Cost * e.Count
	}
	avg := "0.0"
	if total > 0 {
		avg = fmt.Sprintf("%.1f", float64(costSum)/float64(total))
	}
	return Stats{Total: total, ByCategory: byCategory, AverageCost: avg}
}

// ColorStats sums entry counts per card color. Absent colors are
// omitted, unlike Stats.ByCategory.
func (b *Builder) ColorStats() ColorStats {
	stats := ColorStats{}
	for _, e := range b.entries {
		stats[e.Card.Color] += e.Count
	}
	return stats
}

// SaveRequest builds the persistence payload for the current state:
// every entry as a (cardId, quantity) line, ordered by card name, plus
// freshly computed color stats. id carries through for updates.
func (b *Builder) SaveRequest(id int) SaveRequest {
	lines := make([]CardQuantity, 0, len(b.entries))
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := b.entries[name]
		lines = append(lines, CardQuantity{CardID: e.Card.ID, Quantity: e.Count})
	}
	return SaveRequest{
		ID:          id,
		Name:        b.name,
		Description: b.description,
		IsPublic:    b.isPublic,
		Cards:       lines,
		ColorStats:  b.ColorStats(),
	}
}

// Save hands the whole deck to the persistence collaborator. The
// saving flag is set for the duration of the call; a collaborator
// error is converted into a failure result rather than propagated, so
// callers always get the result shape.
func (b *Builder) Save(id int, saver Saver) SaveResult {
	b.saving = true
	defer func() { b.saving = false }()

	result, err := saver.SaveDeck(b.SaveRequest(id))
	if err != nil {
		return SaveResult{Success: false, Error: err.Error()}
	}
	return result
}

// ImportResult reports a best-effort import: how many card copies
// landed in the deck and which code keys matched nothing in the
// catalog.
type ImportResult struct {
	ImportedCards int      `json:"importedCards"`
	SkippedNames  []string `json:"skippedNames"`
}

// ImportDeck replaces the working deck and display name from decoded
// deck-code data. Code keys are resolved against the catalog by
// normalized name; unresolved keys are skipped, not fatal. data is
// assumed to have passed DecodeCode validation, so quantities are
// already in range.
func (b *Builder) ImportDeck(data CodeData, catalog []cards.Card) ImportResult {
	byNormalized := make(map[string]cards.Card, len(catalog))
	for _, c := range catalog {
		byNormalized[NormalizeName(c.Name)] = c
	}

	entries := make(map[string]Entry, len(data.Counts))
	result := ImportResult{SkippedNames: []string{}}
	for key, count := range data.Counts {
		card, ok := byNormalized[key]
		if !ok {
			result.SkippedNames = append(result.SkippedNames, key)
			continue
		}
		entries[card.Name] = Entry{Card: card, Count: count}
		result.ImportedCards += count
	}
	sort.Strings(result.SkippedNames)

	b.entries = entries
	b.name = data.DeckName
	return result
}
