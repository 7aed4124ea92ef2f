package repository

import (
	"fmt"
	"strings"

	"github.com/madangclub/mahjong-rating/internal/models"
)

// teamRepository implements TeamRepository
type teamRepository struct {
	db dbExecutor
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db dbExecutor) TeamRepository {
	return &teamRepository{db: db}
}

// GetAll retrieves all teams ordered by identifier descending
func (r *teamRepository) GetAll() ([]models.Team, error) {
	rows, err := r.db.Query("SELECT id, name FROM teams ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// Create inserts a new team and returns the assigned identifier.
// The team name carries a UNIQUE constraint.
func (r *teamRepository) Create(team *models.Team) (int64, error) {
	result, err := r.db.Exec("INSERT INTO teams (name) VALUES (?)", team.Name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateName
		}
		return 0, fmt.Errorf("failed to create team: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new team id: %w", err)
	}

	team.ID = id
	return id, nil
}

// Delete removes a team by identifier. Members referencing the team by
// name are left untouched; the relation is informal by design.
func (r *teamRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM teams WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
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

// GetAllMembers retrieves all team members ordered by identifier descending
func (r *teamRepository) GetAllMembers() ([]models.TeamMember, error) {
	rows, err := r.db.Query(
		"SELECT id, team_name, player_name, joined_at FROM team_members ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamName, &m.PlayerName, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return members, nil
}

// AddMember inserts a team member row. The team name is not checked
// against the teams table.
func (r *teamRepository) AddMember(member *models.TeamMember) (int64, error) {
	result, err := r.db.Exec(
		"INSERT INTO team_members (team_name, player_name, joined_at) VALUES (?, ?, ?)",
		member.TeamName, member.PlayerName, member.JoinedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add team member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new member id: %w", err)
	}

	member.ID = id
	return id, nil
}

// RemoveMember removes a team member by identifier
func (r *teamRepository) RemoveMember(id int64) error {
	result, err := r.db.Exec("DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
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
