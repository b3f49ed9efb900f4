package services

import (
	"context"
	"testing"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_TeamStats_SumsPerPlayer(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{players: []models.Player{
		{ID: 1, Name: "Alice", TeamID: 1},
		{ID: 2, Name: "Bob", TeamID: 1},
		{ID: 3, Name: "Carol", TeamID: 2},
	}}
	statRepo := &stubStatisticRepository{stats: []models.MatchStatistic{
		{ID: 1, MatchID: 1, PlayerID: 1, StatisticType: models.StatisticTypeGoal, Value: 1},
		{ID: 2, MatchID: 1, PlayerID: 1, StatisticType: models.StatisticTypeGoal, Value: 2},
		{ID: 3, MatchID: 2, PlayerID: 1, StatisticType: models.StatisticTypeGoal, Value: 1},
		{ID: 4, MatchID: 2, PlayerID: 2, StatisticType: models.StatisticTypeGoal, Value: 3},
		{ID: 5, MatchID: 1, PlayerID: 3, StatisticType: models.StatisticTypeAssist, Value: 2},
		// Жёлтые карточки в таблицы не попадают.
		{ID: 6, MatchID: 1, PlayerID: 2, StatisticType: "yellow card", Value: 1},
	}}

	svc := NewStatsService(statRepo, playerRepo)
	stats, err := svc.TeamStats(context.Background())
	require.NoError(t, err)

	// Три записи Alice (1+2+1=4) выше одной записи Bob (3).
	require.Len(t, stats.Goals, 2)
	assert.Equal(t, models.PlayerTotal{PlayerID: 1, PlayerName: "Alice", Value: 4}, stats.Goals[0])
	assert.Equal(t, models.PlayerTotal{PlayerID: 2, PlayerName: "Bob", Value: 3}, stats.Goals[1])

	require.Len(t, stats.Assists, 1)
	assert.Equal(t, models.PlayerTotal{PlayerID: 3, PlayerName: "Carol", Value: 2}, stats.Assists[0])
}

func TestStatsService_TeamStats_PlayersWithoutRowsAbsent(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{players: []models.Player{
		{ID: 1, Name: "Alice", TeamID: 1},
		{ID: 2, Name: "Bob", TeamID: 1},
	}}
	statRepo := &stubStatisticRepository{stats: []models.MatchStatistic{
		{ID: 1, MatchID: 1, PlayerID: 1, StatisticType: models.StatisticTypeGoal, Value: 1},
	}}

	svc := NewStatsService(statRepo, playerRepo)
	stats, err := svc.TeamStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Goals, 1)
	assert.Equal(t, 1, stats.Goals[0].PlayerID)
	assert.Empty(t, stats.Assists)
}

func TestStatsService_TeamStats_TieBreakByPlayerID(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{players: []models.Player{
		{ID: 5, Name: "Eve", TeamID: 1},
		{ID: 2, Name: "Bob", TeamID: 1},
		{ID: 9, Name: "Ivan", TeamID: 2},
	}}
	statRepo := &stubStatisticRepository{stats: []models.MatchStatistic{
		{ID: 1, MatchID: 1, PlayerID: 5, StatisticType: models.StatisticTypeGoal, Value: 2},
		{ID: 2, MatchID: 1, PlayerID: 2, StatisticType: models.StatisticTypeGoal, Value: 2},
		{ID: 3, MatchID: 1, PlayerID: 9, StatisticType: models.StatisticTypeGoal, Value: 2},
	}}

	svc := NewStatsService(statRepo, playerRepo)

	// При равных суммах порядок задаёт ID игрока и не меняется между вызовами.
	for i := 0; i < 5; i++ {
		stats, err := svc.TeamStats(context.Background())
		require.NoError(t, err)
		require.Len(t, stats.Goals, 3)
		assert.Equal(t, 2, stats.Goals[0].PlayerID)
		assert.Equal(t, 5, stats.Goals[1].PlayerID)
		assert.Equal(t, 9, stats.Goals[2].PlayerID)
	}
}

func TestStatsService_TeamStats_SkipsOrphanedRows(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{players: []models.Player{
		{ID: 1, Name: "Alice", TeamID: 1},
	}}
	statRepo := &stubStatisticRepository{stats: []models.MatchStatistic{
		{ID: 1, MatchID: 1, PlayerID: 1, StatisticType: models.StatisticTypeGoal, Value: 2},
		// Игрок 42 удалён, его записи молча пропускаются.
		{ID: 2, MatchID: 1, PlayerID: 42, StatisticType: models.StatisticTypeGoal, Value: 7},
		{ID: 3, MatchID: 1, PlayerID: 42, StatisticType: models.StatisticTypeAssist, Value: 1},
	}}

	svc := NewStatsService(statRepo, playerRepo)
	stats, err := svc.TeamStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Goals, 1)
	assert.Equal(t, 1, stats.Goals[0].PlayerID)
	assert.Equal(t, 2, stats.Goals[0].Value)
	assert.Empty(t, stats.Assists)
}

func TestStatsService_TeamStats_EmptyDataset(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&stubStatisticRepository{}, &stubPlayerRepository{})
	stats, err := svc.TeamStats(context.Background())
	require.NoError(t, err)

	assert.Empty(t, stats.Goals)
	assert.Empty(t, stats.Assists)
}
