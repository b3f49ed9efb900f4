package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Dosada05/sports-league-api/live"
	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/repositories"
)

type MatchService interface {
	CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type MatchInput struct {
	DateTime      time.Time `json:"date_time" validate:"required"`
	HomeTeamID    int       `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID    int       `json:"away_team_id" validate:"required,gt=0"`
	LeagueID      int       `json:"league_id" validate:"required,gt=0"`
	HomeTeamScore int       `json:"home_team_score" validate:"gte=0"`
	AwayTeamScore int       `json:"away_team_score" validate:"gte=0"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       *live.Hub
}

func NewMatchService(matchRepo repositories.MatchRepository, hub *live.Hub) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		hub:       hub,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error) {
	if input.HomeTeamScore < 0 || input.AwayTeamScore < 0 {
		return nil, ErrScoreNegative
	}

	match := &models.Match{
		DateTime:      input.DateTime,
		HomeTeamID:    input.HomeTeamID,
		AwayTeamID:    input.AwayTeamID,
		LeagueID:      input.LeagueID,
		HomeTeamScore: input.HomeTeamScore,
		AwayTeamScore: input.AwayTeamScore,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, translateMatchRepoError(err)
	}

	// Перечитываем, чтобы отдать вложенные команды и лигу.
	return s.GetMatchByID(ctx, match.ID)
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateMatchRepoError(err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	if input.HomeTeamScore < 0 || input.AwayTeamScore < 0 {
		return nil, ErrScoreNegative
	}

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateMatchRepoError(err)
	}

	match.DateTime = input.DateTime
	match.HomeTeamID = input.HomeTeamID
	match.AwayTeamID = input.AwayTeamID
	match.LeagueID = input.LeagueID
	match.HomeTeamScore = input.HomeTeamScore
	match.AwayTeamScore = input.AwayTeamScore

	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, translateMatchRepoError(err)
	}

	updated, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(MatchRoomID(id), live.Message{
			Type:    live.EventMatchUpdated,
			Payload: updated,
		})
	}
	return updated, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return translateMatchRepoError(err)
	}
	return nil
}

// MatchRoomID возвращает имя live-комнаты матча.
func MatchRoomID(matchID int) string {
	return "match_" + strconv.Itoa(matchID)
}

func translateMatchRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchTeamInvalid):
		return ErrMatchTeamInvalid
	case errors.Is(err, repositories.ErrMatchLeagueInvalid):
		return ErrMatchLeagueInvalid
	}
	return err
}
