package services

import (
	"fmt"
	"time"

	apperrors "github.com/madangclub/mahjong-rating/internal/errors"
	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/repository"
)

var teamGameRequiredFields = []string{
	"p1_player_name", "p1_team_name", "p1_score",
	"p2_player_name", "p2_team_name", "p2_score",
	"p3_player_name", "p3_team_name", "p3_score",
	"p4_player_name", "p4_team_name", "p4_score",
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	repos *repository.Repositories
}

// newTeamService creates a new team service implementation
func newTeamService(repos *repository.Repositories) TeamService {
	return &teamServiceImpl{repos: repos}
}

// ListTeams returns all teams, newest first
func (s *teamServiceImpl) ListTeams() ([]models.Team, error) {
	teams, err := s.repos.Team.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// CreateTeam validates and inserts a new team
func (s *teamServiceImpl) CreateTeam(input map[string]interface{}) (int64, error) {
	if !hasFields(input, "name") {
		return 0, apperrors.ValidationError("missing fields", nil)
	}
	name := trimmedString(input["name"])
	if name == "" {
		return 0, apperrors.ValidationError("team name required", nil)
	}

	id, err := s.repos.Team.Create(&models.Team{Name: name})
	if err != nil {
		if err == repository.ErrDuplicateName {
			return 0, apperrors.Conflict("team name taken", err)
		}
		return 0, fmt.Errorf("failed to create team: %w", err)
	}

	return id, nil
}

// DeleteTeam removes a team by identifier
func (s *teamServiceImpl) DeleteTeam(id int64) error {
	if err := s.repos.Team.Delete(id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("not found", err)
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// ListMembers returns all team members, newest first
func (s *teamServiceImpl) ListMembers() ([]models.TeamMember, error) {
	members, err := s.repos.Team.GetAllMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// AddMember validates and inserts a team member. The team name is kept as
// free text and is not resolved against the teams table.
func (s *teamServiceImpl) AddMember(input map[string]interface{}) (int64, error) {
	if !hasFields(input, "team_name", "player_name") {
		return 0, apperrors.ValidationError("missing fields", nil)
	}
	teamName := trimmedString(input["team_name"])
	playerName := trimmedString(input["player_name"])
	if teamName == "" || playerName == "" {
		return 0, apperrors.ValidationError("team and player names required", nil)
	}

	member := &models.TeamMember{
		TeamName:   teamName,
		PlayerName: playerName,
		JoinedAt:   time.Now().Format(models.TimestampLayout),
	}

	id, err := s.repos.Team.AddMember(member)
	if err != nil {
		return 0, fmt.Errorf("failed to add team member: %w", err)
	}

	return id, nil
}

// RemoveMember removes a team member by identifier
func (s *teamServiceImpl) RemoveMember(id int64) error {
	if err := s.repos.Team.RemoveMember(id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("not found", err)
		}
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

// ListTeamGames returns all team games, newest first
func (s *teamServiceImpl) ListTeamGames() ([]models.TeamGame, error) {
	games, err := s.repos.TeamGame.GetAll(repository.NewestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to list team games: %w", err)
	}
	return games, nil
}

// CreateTeamGame validates the four seat triples and inserts one record.
// Validation mirrors the individual create path; seat team names are not
// checked for existence.
func (s *teamServiceImpl) CreateTeamGame(input map[string]interface{}) (int64, error) {
	if !hasFields(input, teamGameRequiredFields...) {
		return 0, apperrors.ValidationError("missing fields", nil)
	}

	var playerNames, teamNames [4]string
	for i := 0; i < 4; i++ {
		playerNames[i] = trimmedString(input[fmt.Sprintf("p%d_player_name", i+1)])
		teamNames[i] = trimmedString(input[fmt.Sprintf("p%d_team_name", i+1)])
		if playerNames[i] == "" || teamNames[i] == "" {
			return 0, apperrors.ValidationError("all player and team names required", nil)
		}
	}

	var scores [4]int
	for i := 0; i < 4; i++ {
		n, err := toInt(input[fmt.Sprintf("p%d_score", i+1)])
		if err != nil {
			return 0, apperrors.ValidationError("scores must be integers", err)
		}
		scores[i] = n
	}

	game := &models.TeamGame{
		CreatedAt:    time.Now().Format(models.TimestampLayout),
		P1PlayerName: playerNames[0], P1TeamName: teamNames[0], P1Score: scores[0],
		P2PlayerName: playerNames[1], P2TeamName: teamNames[1], P2Score: scores[1],
		P3PlayerName: playerNames[2], P3TeamName: teamNames[2], P3Score: scores[2],
		P4PlayerName: playerNames[3], P4TeamName: teamNames[3], P4Score: scores[3],
	}

	id, err := s.repos.TeamGame.Create(game)
	if err != nil {
		return 0, fmt.Errorf("failed to create team game: %w", err)
	}

	return id, nil
}

// DeleteTeamGame removes a team game by identifier
func (s *teamServiceImpl) DeleteTeamGame(id int64) error {
	if err := s.repos.TeamGame.Delete(id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("not found", err)
		}
		return fmt.Errorf("failed to delete team game: %w", err)
	}
	return nil
}
