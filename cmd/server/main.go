package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/youruser/pengdeck/internal/api"
	"github.com/youruser/pengdeck/internal/cards"
	"github.com/youruser/pengdeck/internal/config"
	"github.com/youruser/pengdeck/internal/logging"
	"github.com/youruser/pengdeck/internal/session"
	"github.com/youruser/pengdeck/internal/store"
)

func main() {
	log := logging.New()
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading config failed", zap.Error(err))
	}

	db, err := store.NewGormDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("connecting to database failed", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		log.Fatal("migrating database failed", zap.Error(err))
	}

	cardRepo := store.NewCardRepository(db)
	deckRepo := store.NewDeckRepository(db)
	sessions := session.NewStore(db)

	// Seed the catalog from CSVs (best-effort).
	if cfg.SeedDataDir != "" {
		seed, err := cards.LoadCardsFromDataDir(cfg.SeedDataDir)
		if err != nil {
			log.Warn("loading seed CSVs failed", zap.Error(err))
		} else if inserted, err := cardRepo.SeedCards(seed); err != nil {
			log.Warn("seeding cards failed", zap.Error(err))
		} else if inserted > 0 {
			log.Info("seeded catalog", zap.Int("inserted", inserted))
		}
	}

	// Hourly backfill of color stats for decks saved before the
	// column existed.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("@hourly", func() {
		missing, err := deckRepo.HasMissingColorStats()
		if err != nil {
			log.Error("color stats check failed", zap.Error(err))
			return
		}
		if !missing {
			return
		}
		updated, err := deckRepo.BackfillColorStats()
		if err != nil {
			log.Error("color stats backfill failed", zap.Error(err))
			return
		}
		log.Info("backfilled color stats", zap.Int("decks", updated))
	})
	if err != nil {
		log.Fatal("scheduling backfill failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(cfg, cardRepo, deckRepo, sessions, log))

	log.Info("starting server", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
