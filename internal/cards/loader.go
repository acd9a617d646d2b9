package cards

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// LoadCardsFromDataDir loads card CSVs from a data directory
// (best-effort). It expects at least cards.csv; promo_cards.csv is
// optional. Rows with an unknown category, color or rarity are
// rejected so a bad seed file cannot poison the catalog.
func LoadCardsFromDataDir(dataDir string) ([]Card, error) {
	files := []string{
		filepath.Join(dataDir, "cards.csv"),
		filepath.Join(dataDir, "promo_cards.csv"),
	}

	var all []Card
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		found = true
		cs, err := loadSingleCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, cs...)
	}
	if !found {
		return nil, fmt.Errorf("no card CSVs found in %s", dataDir)
	}
	return all, nil
}

func loadSingleCSV(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[h] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	out := []Card{}
	for i, row := range rows[1:] {
		c := Card{
			Name:     get(row, "name"),
			Category: Category(get(row, "category")),
			Color:    Color(get(row, "color")),
			Rarity:   Rarity(get(row, "rarity")),
			Img:      get(row, "img"),
		}
		if idStr := get(row, "id"); idStr != "" {
			v, err := strconv.Atoi(idStr)
			if err != nil {
				return nil, fmt.Errorf("csv %s row %d: bad id %q", path, i+2, idStr)
			}
			c.ID = v
		}
		costStr := get(row, "cost")
		if costStr != "" && costStr != "-" {
			v, err := strconv.Atoi(costStr)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("csv %s row %d: bad cost %q", path, i+2, costStr)
			}
			c.Cost = v
		}
		if c.Name == "" {
			return nil, fmt.Errorf("csv %s row %d: missing name", path, i+2)
		}
		if !ValidCategory(c.Category) {
			return nil, fmt.Errorf("csv %s row %d: unknown category %q", path, i+2, c.Category)
		}
		if !ValidColor(c.Color) {
			return nil, fmt.Errorf("csv %s row %d: unknown color %q", path, i+2, c.Color)
		}
		if !ValidRarity(c.Rarity) {
			return nil, fmt.Errorf("csv %s row %d: unknown rarity %q", path, i+2, c.Rarity)
		}
		out = append(out, c)
	}
	return out, nil
}
