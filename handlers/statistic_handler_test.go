package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsService struct {
	stats *models.TeamStats
}

func (s *stubStatsService) TeamStats(_ context.Context) (*models.TeamStats, error) {
	return s.stats, nil
}

type stubStatisticService struct {
	stats []models.MatchStatistic
}

func (s *stubStatisticService) CreateStatistic(_ context.Context, input services.StatisticInput) (*models.MatchStatistic, error) {
	stat := models.MatchStatistic{
		ID:            len(s.stats) + 1,
		MatchID:       input.MatchID,
		PlayerID:      input.PlayerID,
		StatisticType: input.StatisticType,
		Value:         input.Value,
	}
	s.stats = append(s.stats, stat)
	return &stat, nil
}

func (s *stubStatisticService) GetStatisticByID(_ context.Context, id int) (*models.MatchStatistic, error) {
	for _, stat := range s.stats {
		if stat.ID == id {
			return &stat, nil
		}
	}
	return nil, services.ErrStatisticNotFound
}

func (s *stubStatisticService) ListStatistics(_ context.Context) ([]models.MatchStatistic, error) {
	return s.stats, nil
}

func (s *stubStatisticService) ListStatisticsByMatch(_ context.Context, matchID int) ([]models.MatchStatistic, error) {
	out := make([]models.MatchStatistic, 0)
	for _, stat := range s.stats {
		if stat.MatchID == matchID {
			out = append(out, stat)
		}
	}
	return out, nil
}

func (s *stubStatisticService) ListStatisticsByPlayer(_ context.Context, playerID int) ([]models.MatchStatistic, error) {
	out := make([]models.MatchStatistic, 0)
	for _, stat := range s.stats {
		if stat.PlayerID == playerID {
			out = append(out, stat)
		}
	}
	return out, nil
}

func (s *stubStatisticService) UpdateStatistic(_ context.Context, id int, input services.StatisticInput) (*models.MatchStatistic, error) {
	for i, stat := range s.stats {
		if stat.ID == id {
			stat.MatchID = input.MatchID
			stat.PlayerID = input.PlayerID
			stat.StatisticType = input.StatisticType
			stat.Value = input.Value
			s.stats[i] = stat
			return &stat, nil
		}
	}
	return nil, services.ErrStatisticNotFound
}

func (s *stubStatisticService) DeleteStatistic(_ context.Context, id int) error {
	for i, stat := range s.stats {
		if stat.ID == id {
			s.stats = append(s.stats[:i], s.stats[i+1:]...)
			return nil
		}
	}
	return services.ErrStatisticNotFound
}

func TestStatisticHandler_TeamStats_Shape(t *testing.T) {
	t.Parallel()

	statsSvc := &stubStatsService{stats: &models.TeamStats{
		Goals: []models.PlayerTotal{
			{PlayerID: 1, PlayerName: "Alice", Value: 4},
			{PlayerID: 2, PlayerName: "Bob", Value: 3},
		},
		Assists: []models.PlayerTotal{
			{PlayerID: 2, PlayerName: "Bob", Value: 2},
		},
	}}

	h := NewStatisticHandler(&stubStatisticService{}, statsSvc)
	router := chi.NewRouter()
	router.Get("/match-statistics/team-stats", h.TeamStats)

	req := httptest.NewRequest(http.MethodGet, "/match-statistics/team-stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Goals []struct {
			PlayerID   int    `json:"player_id"`
			PlayerName string `json:"player_name"`
			Value      int    `json:"value"`
		} `json:"goals"`
		Assists []struct {
			PlayerID   int    `json:"player_id"`
			PlayerName string `json:"player_name"`
			Value      int    `json:"value"`
		} `json:"assists"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Goals, 2)
	assert.Equal(t, "Alice", body.Goals[0].PlayerName)
	assert.Equal(t, 4, body.Goals[0].Value)
	assert.Equal(t, "Bob", body.Goals[1].PlayerName)

	require.Len(t, body.Assists, 1)
	assert.Equal(t, 2, body.Assists[0].PlayerID)
	assert.Equal(t, 2, body.Assists[0].Value)
}

func TestStatisticHandler_TeamStats_EmptyArraysNotNull(t *testing.T) {
	t.Parallel()

	statsSvc := &stubStatsService{stats: &models.TeamStats{
		Goals:   []models.PlayerTotal{},
		Assists: []models.PlayerTotal{},
	}}

	h := NewStatisticHandler(&stubStatisticService{}, statsSvc)
	router := chi.NewRouter()
	router.Get("/match-statistics/team-stats", h.TeamStats)

	req := httptest.NewRequest(http.MethodGet, "/match-statistics/team-stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Пустые таблицы сериализуются как [], а не null.
	assert.NotContains(t, rec.Body.String(), "null")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "goals")
	assert.Contains(t, body, "assists")
}

func TestStatisticHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	h := NewStatisticHandler(&stubStatisticService{}, &stubStatsService{stats: &models.TeamStats{}})
	router := chi.NewRouter()
	router.Get("/match-statistics/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/match-statistics/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
