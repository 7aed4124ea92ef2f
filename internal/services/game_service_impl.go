package services

import (
	"fmt"
	"time"

	apperrors "github.com/madangclub/mahjong-rating/internal/errors"
	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/repository"
)

var gameRequiredFields = []string{
	"player1_name", "player2_name", "player3_name", "player4_name",
	"player1_score", "player2_score", "player3_score", "player4_score",
}

// gameServiceImpl implements GameService
type gameServiceImpl struct {
	repos *repository.Repositories
}

// newGameService creates a new game service implementation
func newGameService(repos *repository.Repositories) GameService {
	return &gameServiceImpl{repos: repos}
}

// List returns all games, newest first
func (s *gameServiceImpl) List() ([]models.Game, error) {
	games, err := s.repos.Game.GetAll(repository.NewestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// Create validates the raw input, stamps the creation time at minute
// precision and inserts one game record. Score sums are deliberately not
// checked against a fixed total.
func (s *gameServiceImpl) Create(input map[string]interface{}) (int64, error) {
	if !hasFields(input, gameRequiredFields...) {
		return 0, apperrors.ValidationError("missing fields", nil)
	}

	var names [4]string
	for i := 0; i < 4; i++ {
		names[i] = trimmedString(input[fmt.Sprintf("player%d_name", i+1)])
		if names[i] == "" {
			return 0, apperrors.ValidationError("all player names required", nil)
		}
	}

	var scores [4]int
	for i := 0; i < 4; i++ {
		n, err := toInt(input[fmt.Sprintf("player%d_score", i+1)])
		if err != nil {
			return 0, apperrors.ValidationError("scores must be integers", err)
		}
		scores[i] = n
	}

	game := &models.Game{
		CreatedAt:    time.Now().Format(models.TimestampLayout),
		Player1Name:  names[0],
		Player2Name:  names[1],
		Player3Name:  names[2],
		Player4Name:  names[3],
		Player1Score: scores[0],
		Player2Score: scores[1],
		Player3Score: scores[2],
		Player4Score: scores[3],
	}

	id, err := s.repos.Game.Create(game)
	if err != nil {
		return 0, fmt.Errorf("failed to create game: %w", err)
	}

	return id, nil
}

// Delete removes a game by identifier
func (s *gameServiceImpl) Delete(id int64) error {
	if err := s.repos.Game.Delete(id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("not found", err)
		}
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
