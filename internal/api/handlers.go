package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/youruser/pengdeck/internal/cards"
	"github.com/youruser/pengdeck/internal/config"
	"github.com/youruser/pengdeck/internal/deck"
	imagepkg "github.com/youruser/pengdeck/internal/image"
	"github.com/youruser/pengdeck/internal/session"
	"github.com/youruser/pengdeck/internal/store"
)

// Handler wires the HTTP surface to the repositories and the deck
// engine.
type Handler struct {
	cfg      config.Config
	cards    *store.CardRepository
	decks    *store.DeckRepository
	sessions *session.Store
	log      *zap.Logger
}

func NewHandler(cfg config.Config, cardRepo *store.CardRepository, deckRepo *store.DeckRepository, sessions *session.Store, log *zap.Logger) *Handler {
	return &Handler{cfg: cfg, cards: cardRepo, decks: deckRepo, sessions: sessions, log: log}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUser resolves the caller from the session token header.
// Returns nil for anonymous requests.
func (h *Handler) currentUser(c *gin.Context) (*session.User, error) {
	token := c.GetHeader("X-Session-Token")
	if token == "" {
		auth := c.GetHeader("Authorization")
		token = strings.TrimPrefix(auth, "Bearer ")
		if token == auth {
			token = ""
		}
	}
	return h.sessions.CurrentUser(token)
}

func (h *Handler) requireUser(c *gin.Context) *session.User {
	user, err := h.currentUser(c)
	if err != nil {
		h.log.Error("session lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
		return nil
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in"})
		return nil
	}
	return user
}

func (h *Handler) listCards(c *gin.Context) {
	all, err := h.cards.GetAllCards()
	if err != nil {
		h.log.Error("loading cards failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(all), "cards": all})
}

func (h *Handler) filterCards(c *gin.Context) {
	var req struct {
		cards.FilterOptions
		SortBy string `json:"sortBy"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	all, err := h.cards.GetAllCards()
	if err != nil {
		h.log.Error("loading cards failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := cards.SortCards(cards.Filter(all, req.FilterOptions), req.SortBy)
	c.JSON(http.StatusOK, gin.H{
		"count":         len(out),
		"cards":         out,
		"activeFilters": cards.ActiveFilterCount(req.FilterOptions),
	})
}

// browseDecks applies the community browse pipeline server-side:
// free-text and main-color filters, then fixed-size pages.
func (h *Handler) browseDecks(c *gin.Context) {
	decks, err := h.decks.GetPublicDecks()
	if err != nil {
		h.log.Error("loading public decks failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	browser := deck.NewBrowser(decks)
	if term := c.Query("search"); term != "" {
		browser.SetSearchTerm(term)
	}
	if raw := c.Query("colors"); raw != "" {
		var selected []cards.Color
		for _, part := range strings.Split(raw, ",") {
			col := cards.Color(strings.TrimSpace(part))
			if !cards.ValidColor(col) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown color: " + string(col)})
				return
			}
			selected = append(selected, col)
		}
		browser.SetSelectedColors(selected)
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad page number"})
			return
		}
		browser.SetPage(page)
	}

	filtered, total := browser.Counts()
	c.JSON(http.StatusOK, gin.H{
		"decks":      browser.Page(),
		"page":       browser.CurrentPage(),
		"totalPages": browser.TotalPages(),
		"filtered":   filtered,
		"total":      total,
	})
}

func (h *Handler) myDecks(c *gin.Context) {
	user := h.requireUser(c)
	if user == nil {
		return
	}
	decks, err := h.decks.GetOwnedDecks(user.ID)
	if err != nil {
		h.log.Error("loading owned decks failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"decks": decks, "total": len(decks)})
}

// fetchDeck loads a deck and applies the visibility rule: private
// decks exist only for their owner.
func (h *Handler) fetchDeck(c *gin.Context) (deck.Summary, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad deck id"})
		return deck.Summary{}, false
	}
	s, err := h.decks.GetDeck(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
		return deck.Summary{}, false
	}
	if err != nil {
		h.log.Error("loading deck failed", zap.Int("deck_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return deck.Summary{}, false
	}
	if !s.IsPublic {
		user, err := h.currentUser(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return deck.Summary{}, false
		}
		if user == nil || user.ID != s.UserID {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return deck.Summary{}, false
		}
	}
	return s, true
}

func (h *Handler) getDeck(c *gin.Context) {
	s, ok := h.fetchDeck(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) saveDeck(c *gin.Context) {
	user := h.requireUser(c)
	if user == nil {
		return
	}
	var req deck.SaveRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.decks.ForUser(user.ID).SaveDeck(req)
	if err != nil {
		h.log.Error("saving deck failed", zap.Error(err))
		result = deck.SaveResult{Success: false, Error: err.Error()}
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

func (h *Handler) deleteDeck(c *gin.Context) {
	user := h.requireUser(c)
	if user == nil {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad deck id"})
		return
	}

	result, err := h.decks.ForUser(user.ID).DeleteDeck(id)
	if err != nil {
		h.log.Error("deleting deck failed", zap.Int("deck_id", id), zap.Error(err))
		result = deck.DeleteResult{Success: false, Error: err.Error()}
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

// importDeck decodes a deck code and resolves it against the catalog
// through the deck engine, returning the would-be working deck.
// Unresolved names come back as skippedNames, not a failure.
func (h *Handler) importDeck(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := deck.DecodeCode(req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	catalog, err := h.cards.GetAllCards()
	if err != nil {
		h.log.Error("loading cards failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	b := deck.NewBuilder(h.cfg.DeckSizeLimit)
	result := b.ImportDeck(data, catalog)

	entries := b.Entries()
	out := make([]deck.DeckCard, 0, len(entries))
	for _, e := range entries {
		out = append(out, deck.DeckCard{Card: e.Card, Quantity: e.Count})
	}
	c.JSON(http.StatusOK, gin.H{
		"deckName":      b.Name(),
		"cards":         out,
		"stats":         b.Stats(),
		"colorStats":    b.ColorStats(),
		"importedCards": result.ImportedCards,
		"skippedNames":  result.SkippedNames,
	})
}

func (h *Handler) deckCode(c *gin.Context) {
	s, ok := h.fetchDeck(c)
	if !ok {
		return
	}
	code, err := deck.EncodeCode(s.Name, s.Cards)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

// deckQR renders a deck's code as a QR PNG for sharing.
func (h *Handler) deckQR(c *gin.Context) {
	s, ok := h.fetchDeck(c)
	if !ok {
		return
	}
	code, err := deck.EncodeCode(s.Name, s.Cards)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	size := 400
	if raw := c.Query("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(code, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deckBanner renders a deck's color gradient as a PNG strip.
func (h *Handler) deckBanner(c *gin.Context) {
	s, ok := h.fetchDeck(c)
	if !ok {
		return
	}
	stats := s.ColorStats
	if stats == nil {
		// older deck: derive from the card list on the fly
		stats = deck.ColorStats{}
		for _, dc := range s.Cards {
			stats[dc.Card.Color] += dc.Quantity
		}
	}
	bands := deck.GradientBands(stats, h.cfg.GradientScale)
	png, err := imagepkg.RenderGradientBanner(bands, 600, 80)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
