package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDeckCode marks any structural decode failure: bad JSON,
// missing fields or an out-of-range quantity. Wrapped errors name the
// offending field where possible.
var ErrInvalidDeckCode = errors.New("invalid deck code")

// CodeData is the interchange structure behind a deck code. Counts is
// keyed by normalized card name (see NormalizeName), so the mapping
// back to catalog cards is lossy by design.
type CodeData struct {
	DeckName string         `json:"deckName"`
	Counts   map[string]int `json:"counts"`
}

// NormalizeName strips all whitespace plus apostrophes, commas and
// exclamation marks from a card name. Two distinct names can collide
// after normalization; the format accepts that risk.
func NormalizeName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch {
		case r == ' ', r == '\t', r == '\n', r == '\r':
		case r == '\'', r == ',', r == '!':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// EncodeCode serializes a deck name and its card list into the
// portable deck-code string. Later duplicates after normalization
// overwrite earlier ones, matching the reference exporter.
func EncodeCode(deckName string, deckCards []DeckCard) (string, error) {
	counts := make(map[string]int, len(deckCards))
	for _, dc := range deckCards {
		if dc.Card.Name == "" {
			continue
		}
		counts[NormalizeName(dc.Card.Name)] = dc.Quantity
	}
	raw, err := json.Marshal(CodeData{DeckName: deckName, Counts: counts})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeCode parses and validates a deck-code string. It rejects
// anything structurally off (no deck name, counts missing or not a
// mapping, a quantity that is not an integer in [1, MaxCopiesPerCard])
// and touches no state, so a failed decode never disturbs an existing
// working deck.
func DecodeCode(text string) (CodeData, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CodeData{}, fmt.Errorf("%w: empty input", ErrInvalidDeckCode)
	}

	var raw struct {
		DeckName *string                    `json:"deckName"`
		Counts   map[string]json.RawMessage `json:"counts"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return CodeData{}, fmt.Errorf("%w: %v", ErrInvalidDeckCode, err)
	}
	if raw.DeckName == nil || *raw.DeckName == "" {
		return CodeData{}, fmt.Errorf("%w: missing deckName", ErrInvalidDeckCode)
	}
	if raw.Counts == nil {
		return CodeData{}, fmt.Errorf("%w: missing counts", ErrInvalidDeckCode)
	}

	data := CodeData{DeckName: *raw.DeckName, Counts: make(map[string]int, len(raw.Counts))}
	for name, val := range raw.Counts {
		var count int
		if err := json.Unmarshal(val, &count); err != nil {
			return CodeData{}, fmt.Errorf("%w: counts[%q] is not an integer", ErrInvalidDeckCode, name)
		}
		if count < 1 || count > MaxCopiesPerCard {
			return CodeData{}, fmt.Errorf("%w: counts[%q] quantity %d out of range", ErrInvalidDeckCode, name, count)
		}
		data.Counts[name] = count
	}
	return data, nil
}
