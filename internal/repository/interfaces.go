package repository

import (
	"errors"

	"github.com/madangclub/mahjong-rating/internal/models"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a unique name constraint is violated
var ErrDuplicateName = errors.New("duplicate name")

// SortOrder selects the identifier ordering of list queries
type SortOrder int

const (
	// NewestFirst orders by identifier descending (API listing)
	NewestFirst SortOrder = iota
	// OldestFirst orders by identifier ascending (CSV export)
	OldestFirst
)

// GameRepository defines the interface for individual game data access
type GameRepository interface {
	GetAll(order SortOrder) ([]models.Game, error)
	Create(game *models.Game) (int64, error)
	Delete(id int64) error
}

// TeamRepository defines the interface for team roster data access
type TeamRepository interface {
	GetAll() ([]models.Team, error)
	Create(team *models.Team) (int64, error)
	Delete(id int64) error

	// Member operations; membership is keyed by team name, not team id
	GetAllMembers() ([]models.TeamMember, error)
	AddMember(member *models.TeamMember) (int64, error)
	RemoveMember(id int64) error
}

// TeamGameRepository defines the interface for team game data access
type TeamGameRepository interface {
	GetAll(order SortOrder) ([]models.TeamGame, error)
	Create(game *models.TeamGame) (int64, error)
	Delete(id int64) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Game     GameRepository
	Team     TeamRepository
	TeamGame TeamGameRepository
	Tx       TransactionManager
}
