package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/cards", h.listCards)
		api.POST("/cards/filter", h.filterCards)
		api.GET("/decks", h.browseDecks)
		api.POST("/decks", h.saveDeck)
		api.POST("/decks/import", h.importDeck)
		api.GET("/decks/:id", h.getDeck)
		api.DELETE("/decks/:id", h.deleteDeck)
		api.GET("/decks/:id/code", h.deckCode)
		api.GET("/decks/:id/qr", h.deckQR)
		api.GET("/decks/:id/banner", h.deckBanner)
		api.GET("/my-decks", h.myDecks)
	}
}
