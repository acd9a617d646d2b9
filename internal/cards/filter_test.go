package cards

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Card {
	return []Card{
		{ID: 1, Name: "Arctic Gale", Category: CategoryAction, Color: ColorBlue, Rarity: RarityCommon, Cost: 2},
		{ID: 2, Name: "Burly Penguin", Category: CategoryPenguin, Color: ColorRed, Rarity: RarityRare, Cost: 5},
		{ID: 3, Name: "Copper Rod", Category: CategoryRod, Color: ColorYellow, Rarity: RarityUncommon, Cost: 3},
		{ID: 4, Name: "Drift Relic", Category: CategoryRelic, Color: ColorPurple, Rarity: RarityEpic, Cost: 9},
		{ID: 5, Name: "Ember Penguin", Category: CategoryPenguin, Color: ColorRed, Rarity: RarityCommon, Cost: 8},
		{ID: 6, Name: "Frost Penguin", Category: CategoryPenguin, Color: ColorBlue, Rarity: RarityCommon, Cost: 11},
	}
}

func TestFilterEmptySpecReturnsAll(t *testing.T) {
	all := testCatalog()
	got := Filter(all, FilterOptions{})
	assert.Equal(t, all, got)
}

func TestFilterSearchTerm(t *testing.T) {
	all := testCatalog()
	got := Filter(all, FilterOptions{SearchTerm: "penguin"})
	require.Len(t, got, 3)
	for _, c := range got {
		assert.Contains(t, c.Name, "Penguin")
	}

	// case-insensitive substring
	got = Filter(all, FilterOptions{SearchTerm: "ARCTIC"})
	require.Len(t, got, 1)
	assert.Equal(t, "Arctic Gale", got[0].Name)
}

func TestFilterCostBuckets(t *testing.T) {
	all := testCatalog()

	tests := []struct {
		name    string
		costs   []string
		wantIDs []int
	}{
		{"exact cost", []string{"5"}, []int{2}},
		{"high bucket matches 9 and up", []string{"9+"}, []int{4, 6}},
		{"cost 8 is not high", []string{"9+", "2"}, []int{1, 4, 6}},
		{"cost 9 has no exact bucket below", []string{"8"}, []int{5}},
		{"no buckets matches all", nil, []int{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, FilterOptions{Costs: tt.costs})
			ids := make([]int, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterAxesAreANDed(t *testing.T) {
	all := testCatalog()
	got := Filter(all, FilterOptions{
		SearchTerm: "penguin",
		Categories: []Category{CategoryPenguin},
		Rarities:   []Rarity{RarityCommon},
		Colors:     []Color{ColorRed, ColorBlue},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "Ember Penguin", got[0].Name)
	assert.Equal(t, "Frost Penguin", got[1].Name)
}

func TestFilterValuesWithinAxisAreORed(t *testing.T) {
	all := testCatalog()
	got := Filter(all, FilterOptions{Categories: []Category{CategoryRod, CategoryRelic}})
	require.Len(t, got, 2)
	assert.Equal(t, CategoryRod, got[0].Category)
	assert.Equal(t, CategoryRelic, got[1].Category)
}

func TestSortCardsByName(t *testing.T) {
	all := testCatalog()
	asc := SortCards(all, SortNameAsc)
	desc := SortCards(asc, SortNameDesc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
	// input untouched
	assert.Equal(t, testCatalog(), all)
}

func TestSortCardsByCostIsStable(t *testing.T) {
	all := []Card{
		{ID: 1, Name: "B", Cost: 3},
		{ID: 2, Name: "A", Cost: 3},
		{ID: 3, Name: "C", Cost: 1},
	}
	got := SortCards(all, SortCostAsc)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].ID)
	// equal costs keep input order
	assert.Equal(t, 1, got[1].ID)
	assert.Equal(t, 2, got[2].ID)

	got = SortCards(all, SortCostDesc)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestSortCardsConcurrent(t *testing.T) {
	all := testCatalog()
	want := SortCards(all, SortNameAsc)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := SortCards(all, SortNameAsc)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestSortCardsUnknownKeyKeepsOrder(t *testing.T) {
	all := testCatalog()
	got := SortCards(all, "bogus")
	assert.Equal(t, all, got)
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(FilterOptions{}))
	assert.Equal(t, 1, ActiveFilterCount(FilterOptions{SearchTerm: "x"}))
	assert.Equal(t, 5, ActiveFilterCount(FilterOptions{
		SearchTerm: "x",
		Categories: []Category{CategoryRod},
		Rarities:   []Rarity{RarityEpic, RarityRare},
		Colors:     []Color{ColorBlue},
	}))
}
