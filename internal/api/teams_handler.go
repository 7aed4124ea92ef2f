package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/services"
)

// TeamsHandler handles team roster and team game operations
type TeamsHandler struct {
	teams services.TeamService
}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler(teams services.TeamService) *TeamsHandler {
	return &TeamsHandler{teams: teams}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

// ListTeams returns all teams as a bare JSON array
func (h *TeamsHandler) ListTeams(c *gin.Context) {
	teams, err := h.teams.ListTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	if teams == nil {
		teams = []models.Team{}
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam inserts a new team
func (h *TeamsHandler) CreateTeam(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		input = map[string]interface{}{}
	}

	id, err := h.teams.CreateTeam(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteTeam removes a team by identifier
func (h *TeamsHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.teams.DeleteTeam(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListMembers returns all team members as a bare JSON array
func (h *TeamsHandler) ListMembers(c *gin.Context) {
	members, err := h.teams.ListMembers()
	if err != nil {
		respondError(c, err)
		return
	}
	if members == nil {
		members = []models.TeamMember{}
	}
	c.JSON(http.StatusOK, members)
}

// AddMember inserts a team member
func (h *TeamsHandler) AddMember(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		input = map[string]interface{}{}
	}

	id, err := h.teams.AddMember(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// RemoveMember removes a team member by identifier
func (h *TeamsHandler) RemoveMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.teams.RemoveMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListTeamGames returns all team games as a bare JSON array
func (h *TeamsHandler) ListTeamGames(c *gin.Context) {
	games, err := h.teams.ListTeamGames()
	if err != nil {
		respondError(c, err)
		return
	}
	if games == nil {
		games = []models.TeamGame{}
	}
	c.JSON(http.StatusOK, games)
}

// CreateTeamGame inserts a team game record
func (h *TeamsHandler) CreateTeamGame(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		input = map[string]interface{}{}
	}

	id, err := h.teams.CreateTeamGame(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteTeamGame removes a team game by identifier
func (h *TeamsHandler) DeleteTeamGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.teams.DeleteTeamGame(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
