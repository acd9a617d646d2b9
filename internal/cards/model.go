package cards

// Category is the card's type line: what kind of thing it is when played.
type Category string

const (
	CategoryAction  Category = "action"
	CategoryPenguin Category = "penguin"
	CategoryRod     Category = "rod"
	CategoryRelic   Category = "relic"
)

// Categories lists every known category in display order. Deck stats
// report a count for each of these even when it is zero.
var Categories = []Category{CategoryAction, CategoryPenguin, CategoryRod, CategoryRelic}

type Color string

const (
	ColorBlue      Color = "blue"
	ColorRed       Color = "red"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorPurple    Color = "purple"
	ColorColorless Color = "colorless"
)

// Colors is the canonical color order. Tie-breaks in gradient and
// main-color derivation follow this order.
var Colors = []Color{ColorBlue, ColorRed, ColorYellow, ColorGreen, ColorPurple, ColorColorless}

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic}

// Card is an immutable catalog entry. Name is unique within the catalog
// and doubles as the working-deck key.
type Card struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Color    Color    `json:"color"`
	Rarity   Rarity   `json:"rarity"`
	Cost     int      `json:"cost"`
	Img      string   `json:"img,omitempty"`
}

func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func ValidColor(c Color) bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

func ValidRarity(r Rarity) bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}
