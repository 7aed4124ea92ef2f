package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/madangclub/mahjong-rating/internal/database"
	"github.com/madangclub/mahjong-rating/internal/logger"
	"github.com/madangclub/mahjong-rating/internal/services"
	"github.com/madangclub/mahjong-rating/pkg/config"
)

// SetupRoutes configures all routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config, log logger.Logger) error {
	// Create centralized services
	svcs := services.NewServices(db.DB, log)

	// Create handlers with service injection
	gamesHandler := NewGamesHandler(svcs.Game)
	teamsHandler := NewTeamsHandler(svcs.Team)
	exportHandler := NewExportHandler(svcs.Export)
	importHandler := NewImportHandler(svcs.Import)
	pagesHandler := NewPagesHandler()

	// JSON API
	api := r.Group("/api")
	{
		api.GET("/games", gamesHandler.List)
		api.POST("/games", gamesHandler.Create)
		api.DELETE("/games/:id", gamesHandler.Delete)

		api.GET("/teams", teamsHandler.ListTeams)
		api.POST("/teams", teamsHandler.CreateTeam)
		api.DELETE("/teams/:id", teamsHandler.DeleteTeam)

		api.GET("/team-members", teamsHandler.ListMembers)
		api.POST("/team-members", teamsHandler.AddMember)
		api.DELETE("/team-members/:id", teamsHandler.RemoveMember)

		api.GET("/team-games", teamsHandler.ListTeamGames)
		api.POST("/team-games", teamsHandler.CreateTeamGame)
		api.DELETE("/team-games/:id", teamsHandler.DeleteTeamGame)

		api.GET("/health", func(c *gin.Context) {
			if err := db.HealthCheck(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"healthy":   false,
					"error":     err.Error(),
					"timestamp": time.Now(),
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"healthy":   true,
				"timestamp": time.Now(),
			})
		})
	}

	// CSV interchange
	r.GET("/export", exportHandler.ExportCSV)
	r.GET("/import", importHandler.UploadForm)
	r.POST("/import", importHandler.Upload)

	// Pages
	r.GET("/", pagesHandler.Index)
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.Static("/static", cfg.StaticDir)
	}

	return nil
}
