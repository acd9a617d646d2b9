package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/youruser/pengdeck/internal/cards"
)

// FixedGradientScale is the denominator the reference visuals divided
// by: a full legacy deck. With this scale a part-filled deck's
// gradient deliberately stops short of 100%.
const FixedGradientScale = 52

// cssColors maps card colors onto CSS color names. Anything unknown
// falls back to gray.
var cssColors = map[cards.Color]string{
	cards.ColorBlue:      "blue",
	cards.ColorRed:       "red",
	cards.ColorYellow:    "yellow",
	cards.ColorGreen:     "green",
	cards.ColorPurple:    "purple",
	cards.ColorColorless: "gray",
}

func cssColor(c cards.Color) string {
	if mapped, ok := cssColors[c]; ok {
		return mapped
	}
	return "gray"
}

// GradientBand is one flat color stripe of a deck gradient, spanning
// [Start, End] in percent.
type GradientBand struct {
	Color string  `json:"color"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// sortedColors returns the stat map's colors ordered by count
// descending. Ties keep canonical color order (Go maps have no
// insertion order to preserve); colors outside the known set sort
// after it, alphabetically.
func sortedColors(stats ColorStats) []cards.Color {
	ordered := make([]cards.Color, 0, len(stats))
	for _, c := range cards.Colors {
		if _, ok := stats[c]; ok {
			ordered = append(ordered, c)
		}
	}
	var unknown []cards.Color
	for c := range stats {
		if !cards.ValidColor(c) {
			unknown = append(unknown, c)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	ordered = append(ordered, unknown...)

	sort.SliceStable(ordered, func(i, j int) bool {
		return stats[ordered[i]] > stats[ordered[j]]
	})
	return ordered
}

// GradientBands derives proportional color stripes from a deck's
// color stats. A positive denominator fixes the scale (see
// FixedGradientScale); zero or less divides by the map's own sum so
// the bands always reach 100%. An empty map yields no bands.
func GradientBands(stats ColorStats, denominator int) []GradientBand {
	if len(stats) == 0 {
		return nil
	}
	if denominator <= 0 {
		denominator = 0
		for _, count := range stats {
			denominator += count
		}
		if denominator == 0 {
			return nil
		}
	}

	bands := make([]GradientBand, 0, len(stats))
	position := 0.0
	for _, c := range sortedColors(stats) {
		width := float64(stats[c]) / float64(denominator) * 100
		bands = append(bands, GradientBand{
			Color: cssColor(c),
			Start: position,
			End:   position + width,
		})
		position += width
	}
	return bands
}

// CSSGradient renders the bands as a linear-gradient string with
// integer-rounded stops, e.g.
// "linear-gradient(to right,blue 0%,blue 50%,red 50%,red 100%)".
// Empty stats yield "".
func CSSGradient(stats ColorStats, denominator int) string {
	bands := GradientBands(stats, denominator)
	if len(bands) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("linear-gradient(to right")
	for _, band := range bands {
		fmt.Fprintf(&sb, ",%s %.0f%%", band.Color, band.Start)
		fmt.Fprintf(&sb, ",%s %.0f%%", band.Color, band.End)
	}
	sb.WriteString(")")
	return sb.String()
}

// MainColor is the color with the highest count in the stat map, the
// color a deck is filed under when browsing. Ties resolve to the
// first color in descending sort order. Empty stats have no main
// color.
func MainColor(stats ColorStats) cards.Color {
	if len(stats) == 0 {
		return ""
	}
	return sortedColors(stats)[0]
}
