package services

import (
	"context"
	"sort"
	"sync"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/repositories"
)

// In-memory репозитории для юнит-тестов сервисов.

type stubUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[int]models.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: make(map[int]models.User)}
}

func (s *stubUserRepository) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return repositories.ErrUserUsernameConflict
		}
		if existing.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

func (s *stubUserRepository) GetByID(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (s *stubUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepository) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *stubUserRepository) UpdateRole(_ context.Context, id int, role models.UserRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = role
	s.users[id] = user
	return nil
}

func (s *stubUserRepository) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type stubPlayerRepository struct {
	players []models.Player
}

func (s *stubPlayerRepository) Create(_ context.Context, player *models.Player) error {
	player.ID = len(s.players) + 1
	s.players = append(s.players, *player)
	return nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, id int) (*models.Player, error) {
	for _, p := range s.players {
		if p.ID == id {
			player := p
			return &player, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (s *stubPlayerRepository) List(_ context.Context) ([]models.Player, error) {
	return append([]models.Player(nil), s.players...), nil
}

func (s *stubPlayerRepository) ListByTeamID(_ context.Context, teamID int) ([]models.Player, error) {
	players := make([]models.Player, 0)
	for _, p := range s.players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}
	return players, nil
}

func (s *stubPlayerRepository) Update(_ context.Context, player *models.Player) error {
	for i, p := range s.players {
		if p.ID == player.ID {
			s.players[i] = *player
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

func (s *stubPlayerRepository) Delete(_ context.Context, id int) error {
	for i, p := range s.players {
		if p.ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

type stubStatisticRepository struct {
	stats []models.MatchStatistic
}

func (s *stubStatisticRepository) Create(_ context.Context, stat *models.MatchStatistic) error {
	stat.ID = len(s.stats) + 1
	s.stats = append(s.stats, *stat)
	return nil
}

func (s *stubStatisticRepository) GetByID(_ context.Context, id int) (*models.MatchStatistic, error) {
	for _, st := range s.stats {
		if st.ID == id {
			stat := st
			return &stat, nil
		}
	}
	return nil, repositories.ErrStatisticNotFound
}

func (s *stubStatisticRepository) List(_ context.Context) ([]models.MatchStatistic, error) {
	return append([]models.MatchStatistic(nil), s.stats...), nil
}

func (s *stubStatisticRepository) ListByType(_ context.Context, statisticType string) ([]models.MatchStatistic, error) {
	stats := make([]models.MatchStatistic, 0)
	for _, st := range s.stats {
		if st.StatisticType == statisticType {
			stats = append(stats, st)
		}
	}
	return stats, nil
}

func (s *stubStatisticRepository) ListByMatchID(_ context.Context, matchID int) ([]models.MatchStatistic, error) {
	stats := make([]models.MatchStatistic, 0)
	for _, st := range s.stats {
		if st.MatchID == matchID {
			stats = append(stats, st)
		}
	}
	return stats, nil
}

func (s *stubStatisticRepository) ListByPlayerID(_ context.Context, playerID int) ([]models.MatchStatistic, error) {
	stats := make([]models.MatchStatistic, 0)
	for _, st := range s.stats {
		if st.PlayerID == playerID {
			stats = append(stats, st)
		}
	}
	return stats, nil
}

func (s *stubStatisticRepository) Update(_ context.Context, stat *models.MatchStatistic) error {
	for i, st := range s.stats {
		if st.ID == stat.ID {
			s.stats[i] = *stat
			return nil
		}
	}
	return repositories.ErrStatisticNotFound
}

func (s *stubStatisticRepository) Delete(_ context.Context, id int) error {
	for i, st := range s.stats {
		if st.ID == id {
			s.stats = append(s.stats[:i], s.stats[i+1:]...)
			return nil
		}
	}
	return repositories.ErrStatisticNotFound
}
