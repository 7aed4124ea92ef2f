package services

import (
	"database/sql"

	"github.com/madangclub/mahjong-rating/internal/logger"
	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/repository"
)

// Services contains all application services
type Services struct {
	Game   GameService
	Team   TeamService
	Export ExportService
	Import ImportService
}

// GameService defines the interface for individual game business logic.
// Create takes the decoded JSON body as-is so missing keys can be told
// apart from present-but-empty values.
type GameService interface {
	List() ([]models.Game, error)
	Create(input map[string]interface{}) (int64, error)
	Delete(id int64) error
}

// TeamService defines the interface for team roster and team game logic
type TeamService interface {
	ListTeams() ([]models.Team, error)
	CreateTeam(input map[string]interface{}) (int64, error)
	DeleteTeam(id int64) error

	ListMembers() ([]models.TeamMember, error)
	AddMember(input map[string]interface{}) (int64, error)
	RemoveMember(id int64) error

	ListTeamGames() ([]models.TeamGame, error)
	CreateTeamGame(input map[string]interface{}) (int64, error)
	DeleteTeamGame(id int64) error
}

// ExportService produces the downloadable rating CSV
type ExportService interface {
	ExportRatingCSV() ([]byte, error)
}

// ImportService ingests an uploaded CSV and returns the inserted row count
type ImportService interface {
	Import(raw []byte) (int, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, log logger.Logger) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Game:   newGameService(repos),
		Team:   newTeamService(repos),
		Export: newExportService(repos),
		Import: newImportService(repos, log),
	}
}
