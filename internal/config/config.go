package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the server's environment-driven configuration. Load reads
// it from the process environment; cmd/server loads .env first so a
// local file can supply these.
type Config struct {
	Port        string
	DatabaseURL string

	// DeckSizeLimit is the deck legality ceiling. The game shipped
	// with 40; a transitional season used 52.
	DeckSizeLimit int

	// GradientScale is the gradient denominator: 0 divides by each
	// stat map's own sum, a positive value fixes the visual scale.
	GradientScale int

	// SeedDataDir holds card CSVs seeded into the catalog at boot.
	// Empty disables seeding.
	SeedDataDir string
}

func Load() (Config, error) {
	cfg := Config{
		Port:          envOr("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DeckSizeLimit: 40,
		GradientScale: 0,
		SeedDataDir:   os.Getenv("SEED_DATA_DIR"),
	}

	if v := os.Getenv("DECK_SIZE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid DECK_SIZE_LIMIT %q", v)
		}
		cfg.DeckSizeLimit = n
	}

	if v := strings.TrimSpace(os.Getenv("GRADIENT_SCALE")); v != "" && v != "sum" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid GRADIENT_SCALE %q (want \"sum\" or a positive integer)", v)
		}
		cfg.GradientScale = n
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
