package cards

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CostBucketHigh matches every card with cost 9 or more.
const CostBucketHigh = "9+"

// FilterOptions selects cards along five axes. An empty axis places no
// restriction; values within one axis are ORed, the axes themselves are
// ANDed. Costs holds exact costs as decimal strings, plus optionally
// the "9+" catch-all bucket.
type FilterOptions struct {
	SearchTerm string     `json:"searchTerm"`
	Categories []Category `json:"categories"`
	Rarities   []Rarity   `json:"rarities"`
	Costs      []string   `json:"costs"`
	Colors     []Color    `json:"colors"`
}

func matchesCost(cost int, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b == CostBucketHigh {
			if cost >= 9 {
				return true
			}
			continue
		}
		if strconv.Itoa(cost) == b {
			return true
		}
	}
	return false
}

// Filter returns the cards satisfying every axis of opt, in input order.
// The input slice is never modified.
func Filter(all []Card, opt FilterOptions) []Card {
	search := strings.ToLower(opt.SearchTerm)
	out := []Card{}
	for _, c := range all {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if len(opt.Categories) > 0 {
			matched := false
			for _, cat := range opt.Categories {
				if c.Category == cat {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Rarities) > 0 {
			matched := false
			for _, r := range opt.Rarities {
				if c.Rarity == r {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if !matchesCost(c.Cost, opt.Costs) {
			continue
		}
		if len(opt.Colors) > 0 {
			matched := false
			for _, col := range opt.Colors {
				if c.Color == col {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Sort keys accepted by SortCards. Anything else leaves the order untouched.
const (
	SortNameAsc  = "name-asc"
	SortNameDesc = "name-desc"
	SortCostAsc  = "cost-asc"
	SortCostDesc = "cost-desc"
)

// A Collator mutates internal buffers on every comparison, so one
// instance must never be shared across goroutines. Each sort borrows
// its own from the pool.
var collators = sync.Pool{
	New: func() interface{} { return collate.New(language.English, collate.Loose) },
}

// SortCards returns a sorted copy of cards. Name ordering is
// locale-aware; cost ordering is numeric and stable, so equal-cost
// cards keep their relative input order. Safe for concurrent use.
func SortCards(all []Card, sortBy string) []Card {
	out := make([]Card, len(all))
	copy(out, all)
	switch sortBy {
	case SortNameAsc:
		col := collators.Get().(*collate.Collator)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
		collators.Put(col)
	case SortNameDesc:
		col := collators.Get().(*collate.Collator)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[j].Name, out[i].Name) < 0
		})
		collators.Put(col)
	case SortCostAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Cost < out[j].Cost
		})
	case SortCostDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Cost > out[j].Cost
		})
	}
	return out
}

// ActiveFilterCount counts a non-empty search term as one plus every
// individually selected value across the four set axes.
func ActiveFilterCount(opt FilterOptions) int {
	count := 0
	if opt.SearchTerm != "" {
		count++
	}
	count += len(opt.Categories)
	count += len(opt.Rarities)
	count += len(opt.Costs)
	count += len(opt.Colors)
	return count
}
