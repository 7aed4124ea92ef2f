package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/services"
)

// GamesHandler handles individual game CRUD operations
type GamesHandler struct {
	games services.GameService
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(games services.GameService) *GamesHandler {
	return &GamesHandler{games: games}
}

// List returns all games as a bare JSON array, newest first
func (h *GamesHandler) List(c *gin.Context) {
	games, err := h.games.List()
	if err != nil {
		respondError(c, err)
		return
	}
	if games == nil {
		games = []models.Game{}
	}

	c.JSON(http.StatusOK, games)
}

// Create validates the JSON body and inserts one game record
func (h *GamesHandler) Create(c *gin.Context) {
	// An unreadable or empty body falls through to the required-fields
	// check, which reports "missing fields"
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		input = map[string]interface{}{}
	}

	id, err := h.games.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Delete removes a game by identifier
func (h *GamesHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := h.games.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
