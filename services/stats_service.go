package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/repositories"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	TeamStats(ctx context.Context) (*models.TeamStats, error)
}

type statsService struct {
	statRepo   repositories.StatisticRepository
	playerRepo repositories.PlayerRepository
}

func NewStatsService(statRepo repositories.StatisticRepository, playerRepo repositories.PlayerRepository) StatsService {
	return &statsService{
		statRepo:   statRepo,
		playerRepo: playerRepo,
	}
}

// TeamStats считает таблицы бомбардиров и ассистентов по всем матчам.
// Каждый вызов пересчитывает всё заново: записей немного, кеш не нужен,
// а слегка устаревший снимок при параллельных записях допустим.
func (s *statsService) TeamStats(ctx context.Context) (*models.TeamStats, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	playerNames := make(map[int]string, len(players))
	for _, p := range players {
		playerNames[p.ID] = p.Name
	}

	result := &models.TeamStats{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		goals, err := s.totalsByType(gCtx, models.StatisticTypeGoal, playerNames)
		if err != nil {
			return err
		}
		result.Goals = goals
		return nil
	})

	g.Go(func() error {
		assists, err := s.totalsByType(gCtx, models.StatisticTypeAssist, playerNames)
		if err != nil {
			return err
		}
		result.Assists = assists
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// totalsByType суммирует value по игрокам для одного типа статистики.
// Записи, ссылающиеся на уже удалённого игрока, молча пропускаются.
func (s *statsService) totalsByType(ctx context.Context, statisticType string, playerNames map[int]string) ([]models.PlayerTotal, error) {
	stats, err := s.statRepo.ListByType(ctx, statisticType)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q statistics: %w", statisticType, err)
	}

	sums := make(map[int]int)
	for _, stat := range stats {
		if _, ok := playerNames[stat.PlayerID]; !ok {
			continue
		}
		sums[stat.PlayerID] += stat.Value
	}

	totals := make([]models.PlayerTotal, 0, len(sums))
	for playerID, value := range sums {
		totals = append(totals, models.PlayerTotal{
			PlayerID:   playerID,
			PlayerName: playerNames[playerID],
			Value:      value,
		})
	}

	// Сортировка по сумме по убыванию, при равенстве — по ID игрока,
	// чтобы порядок был детерминированным между вызовами.
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Value != totals[j].Value {
			return totals[i].Value > totals[j].Value
		}
		return totals[i].PlayerID < totals[j].PlayerID
	})

	return totals, nil
}
