package repository

import (
	"fmt"

	"github.com/madangclub/mahjong-rating/internal/models"
)

// gameRepository implements GameRepository
type gameRepository struct {
	db dbExecutor
}

// NewGameRepository creates a new game repository
func NewGameRepository(db dbExecutor) GameRepository {
	return &gameRepository{db: db}
}

// GetAll retrieves every game record in the requested identifier order
func (r *gameRepository) GetAll(order SortOrder) ([]models.Game, error) {
	direction := "DESC"
	if order == OldestFirst {
		direction = "ASC"
	}
	query := `
		SELECT id, created_at,
			   player1_name, player2_name, player3_name, player4_name,
			   player1_score, player2_score, player3_score, player4_score
		FROM games
		ORDER BY id ` + direction

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(
			&g.ID, &g.CreatedAt,
			&g.Player1Name, &g.Player2Name, &g.Player3Name, &g.Player4Name,
			&g.Player1Score, &g.Player2Score, &g.Player3Score, &g.Player4Score,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}

// Create inserts a new game record and returns the assigned identifier
func (r *gameRepository) Create(game *models.Game) (int64, error) {
	query := `
		INSERT INTO games (
			created_at,
			player1_name, player2_name, player3_name, player4_name,
			player1_score, player2_score, player3_score, player4_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		game.CreatedAt,
		game.Player1Name, game.Player2Name, game.Player3Name, game.Player4Name,
		game.Player1Score, game.Player2Score, game.Player3Score, game.Player4Score,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new game id: %w", err)
	}

	game.ID = id
	return id, nil
}

// Delete removes a game by identifier. Returns ErrNotFound when no row
// matched, making repeated deletes of the same id report not-found.
func (r *gameRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
