package repository

import (
	"fmt"

	"github.com/madangclub/mahjong-rating/internal/models"
)

// teamGameRepository implements TeamGameRepository
type teamGameRepository struct {
	db dbExecutor
}

// NewTeamGameRepository creates a new team game repository
func NewTeamGameRepository(db dbExecutor) TeamGameRepository {
	return &teamGameRepository{db: db}
}

// GetAll retrieves every team game record in the requested identifier order
func (r *teamGameRepository) GetAll(order SortOrder) ([]models.TeamGame, error) {
	direction := "DESC"
	if order == OldestFirst {
		direction = "ASC"
	}
	query := `
		SELECT id, created_at,
			   p1_player_name, p1_team_name, p1_score,
			   p2_player_name, p2_team_name, p2_score,
			   p3_player_name, p3_team_name, p3_score,
			   p4_player_name, p4_team_name, p4_score
		FROM team_games
		ORDER BY id ` + direction

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team games: %w", err)
	}
	defer rows.Close()

	var games []models.TeamGame
	for rows.Next() {
		var g models.TeamGame
		if err := rows.Scan(
			&g.ID, &g.CreatedAt,
			&g.P1PlayerName, &g.P1TeamName, &g.P1Score,
			&g.P2PlayerName, &g.P2TeamName, &g.P2Score,
			&g.P3PlayerName, &g.P3TeamName, &g.P3Score,
			&g.P4PlayerName, &g.P4TeamName, &g.P4Score,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team games: %w", err)
	}

	return games, nil
}

// Create inserts a new team game record and returns the assigned identifier
func (r *teamGameRepository) Create(game *models.TeamGame) (int64, error) {
	query := `
		INSERT INTO team_games (
			created_at,
			p1_player_name, p1_team_name, p1_score,
			p2_player_name, p2_team_name, p2_score,
			p3_player_name, p3_team_name, p3_score,
			p4_player_name, p4_team_name, p4_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		game.CreatedAt,
		game.P1PlayerName, game.P1TeamName, game.P1Score,
		game.P2PlayerName, game.P2TeamName, game.P2Score,
		game.P3PlayerName, game.P3TeamName, game.P3Score,
		game.P4PlayerName, game.P4TeamName, game.P4Score,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create team game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new team game id: %w", err)
	}

	game.ID = id
	return id, nil
}

// Delete removes a team game by identifier
func (r *teamGameRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM team_games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete team game: %w", err)
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
