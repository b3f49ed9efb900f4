package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/sports-league-api/live"
	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/repositories"
)

type StatisticService interface {
	CreateStatistic(ctx context.Context, input StatisticInput) (*models.MatchStatistic, error)
	GetStatisticByID(ctx context.Context, id int) (*models.MatchStatistic, error)
	ListStatistics(ctx context.Context) ([]models.MatchStatistic, error)
	ListStatisticsByMatch(ctx context.Context, matchID int) ([]models.MatchStatistic, error)
	ListStatisticsByPlayer(ctx context.Context, playerID int) ([]models.MatchStatistic, error)
	UpdateStatistic(ctx context.Context, id int, input StatisticInput) (*models.MatchStatistic, error)
	DeleteStatistic(ctx context.Context, id int) error
}

type StatisticInput struct {
	MatchID       int    `json:"match_id" validate:"required,gt=0"`
	PlayerID      int    `json:"player_id" validate:"required,gt=0"`
	StatisticType string `json:"statistic_type" validate:"required,max=100"`
	Value         int    `json:"value" validate:"gte=0"`
}

type statisticService struct {
	statRepo repositories.StatisticRepository
	hub      *live.Hub
}

func NewStatisticService(statRepo repositories.StatisticRepository, hub *live.Hub) StatisticService {
	return &statisticService{
		statRepo: statRepo,
		hub:      hub,
	}
}

// CreateStatistic добавляет запись в журнал. Дубликаты по
// (матч, игрок, тип) допустимы: повторные и корректирующие записи
// складываются при агрегации, а не затирают друг друга.
func (s *statisticService) CreateStatistic(ctx context.Context, input StatisticInput) (*models.MatchStatistic, error) {
	if input.Value < 0 {
		return nil, ErrStatisticNegative
	}

	stat := &models.MatchStatistic{
		MatchID:       input.MatchID,
		PlayerID:      input.PlayerID,
		StatisticType: input.StatisticType,
		Value:         input.Value,
	}

	if err := s.statRepo.Create(ctx, stat); err != nil {
		return nil, translateStatisticRepoError(err)
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(MatchRoomID(stat.MatchID), live.Message{
			Type:    live.EventStatisticRecorded,
			Payload: stat,
		})
	}
	return stat, nil
}

func (s *statisticService) GetStatisticByID(ctx context.Context, id int) (*models.MatchStatistic, error) {
	stat, err := s.statRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStatisticRepoError(err)
	}
	return stat, nil
}

func (s *statisticService) ListStatistics(ctx context.Context) ([]models.MatchStatistic, error) {
	stats, err := s.statRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list match statistics: %w", err)
	}
	return stats, nil
}

func (s *statisticService) ListStatisticsByMatch(ctx context.Context, matchID int) ([]models.MatchStatistic, error) {
	stats, err := s.statRepo.ListByMatchID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics of match %d: %w", matchID, err)
	}
	return stats, nil
}

func (s *statisticService) ListStatisticsByPlayer(ctx context.Context, playerID int) ([]models.MatchStatistic, error) {
	stats, err := s.statRepo.ListByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics of player %d: %w", playerID, err)
	}
	return stats, nil
}

func (s *statisticService) UpdateStatistic(ctx context.Context, id int, input StatisticInput) (*models.MatchStatistic, error) {
	if input.Value < 0 {
		return nil, ErrStatisticNegative
	}

	stat, err := s.statRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStatisticRepoError(err)
	}

	stat.MatchID = input.MatchID
	stat.PlayerID = input.PlayerID
	stat.StatisticType = input.StatisticType
	stat.Value = input.Value

	if err := s.statRepo.Update(ctx, stat); err != nil {
		return nil, translateStatisticRepoError(err)
	}
	return stat, nil
}

func (s *statisticService) DeleteStatistic(ctx context.Context, id int) error {
	if err := s.statRepo.Delete(ctx, id); err != nil {
		return translateStatisticRepoError(err)
	}
	return nil
}

func translateStatisticRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrStatisticNotFound):
		return ErrStatisticNotFound
	case errors.Is(err, repositories.ErrStatisticMatchInvalid),
		errors.Is(err, repositories.ErrStatisticPlayerInvalid):
		return ErrStatisticRefInvalid
	}
	return err
}
