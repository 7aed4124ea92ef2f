package services

import (
	"sort"

	"github.com/madangclub/mahjong-rating/internal/models"
	"github.com/madangclub/mahjong-rating/internal/repository"
)

// MockGameRepository implements repository.GameRepository for testing
type MockGameRepository struct {
	games  []models.Game
	nextID int64
	failed error
}

func (m *MockGameRepository) GetAll(order repository.SortOrder) ([]models.Game, error) {
	if m.failed != nil {
		return nil, m.failed
	}
	out := make([]models.Game, len(m.games))
	copy(out, m.games)
	sort.Slice(out, func(i, j int) bool {
		if order == repository.OldestFirst {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MockGameRepository) Create(game *models.Game) (int64, error) {
	if m.failed != nil {
		return 0, m.failed
	}
	m.nextID++
	game.ID = m.nextID
	m.games = append(m.games, *game)
	return game.ID, nil
}

func (m *MockGameRepository) Delete(id int64) error {
	for i, g := range m.games {
		if g.ID == id {
			m.games = append(m.games[:i], m.games[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// MockTeamRepository implements repository.TeamRepository for testing
type MockTeamRepository struct {
	teams   []models.Team
	members []models.TeamMember
	nextID  int64
}

func (m *MockTeamRepository) GetAll() ([]models.Team, error) {
	out := make([]models.Team, len(m.teams))
	copy(out, m.teams)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockTeamRepository) Create(team *models.Team) (int64, error) {
	for _, t := range m.teams {
		if t.Name == team.Name {
			return 0, repository.ErrDuplicateName
		}
	}
	m.nextID++
	team.ID = m.nextID
	m.teams = append(m.teams, *team)
	return team.ID, nil
}

func (m *MockTeamRepository) Delete(id int64) error {
	for i, t := range m.teams {
		if t.ID == id {
			m.teams = append(m.teams[:i], m.teams[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockTeamRepository) GetAllMembers() ([]models.TeamMember, error) {
	out := make([]models.TeamMember, len(m.members))
	copy(out, m.members)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockTeamRepository) AddMember(member *models.TeamMember) (int64, error) {
	m.nextID++
	member.ID = m.nextID
	m.members = append(m.members, *member)
	return member.ID, nil
}

func (m *MockTeamRepository) RemoveMember(id int64) error {
	for i, mem := range m.members {
		if mem.ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// MockTeamGameRepository implements repository.TeamGameRepository for testing
type MockTeamGameRepository struct {
	games  []models.TeamGame
	nextID int64
}

func (m *MockTeamGameRepository) GetAll(order repository.SortOrder) ([]models.TeamGame, error) {
	out := make([]models.TeamGame, len(m.games))
	copy(out, m.games)
	sort.Slice(out, func(i, j int) bool {
		if order == repository.OldestFirst {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MockTeamGameRepository) Create(game *models.TeamGame) (int64, error) {
	m.nextID++
	game.ID = m.nextID
	m.games = append(m.games, *game)
	return game.ID, nil
}

func (m *MockTeamGameRepository) Delete(id int64) error {
	for i, g := range m.games {
		if g.ID == id {
			m.games = append(m.games[:i], m.games[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// MockTransactionManager runs the function against the same repositories
// without transactional semantics
type MockTransactionManager struct {
	repos *repository.Repositories
}

func (m *MockTransactionManager) WithTransaction(fn func(repos *repository.Repositories) error) error {
	return fn(m.repos)
}

func newMockRepos() *repository.Repositories {
	repos := &repository.Repositories{
		Game:     &MockGameRepository{},
		Team:     &MockTeamRepository{},
		TeamGame: &MockTeamGameRepository{},
	}
	repos.Tx = &MockTransactionManager{repos: repos}
	return repos
}
