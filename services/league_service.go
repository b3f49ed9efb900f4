package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/repositories"
)

type LeagueService interface {
	CreateLeague(ctx context.Context, input LeagueInput) (*models.League, error)
	GetLeagueByID(ctx context.Context, id int) (*models.League, error)
	ListLeagues(ctx context.Context) ([]models.League, error)
	UpdateLeague(ctx context.Context, id int, input LeagueInput) (*models.League, error)
	DeleteLeague(ctx context.Context, id int) error
}

type LeagueInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Country *string `json:"country" validate:"omitempty,max=100"`
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
}

func NewLeagueService(leagueRepo repositories.LeagueRepository) LeagueService {
	return &leagueService{
		leagueRepo: leagueRepo,
	}
}

func (s *leagueService) CreateLeague(ctx context.Context, input LeagueInput) (*models.League, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrLeagueNameRequired
	}

	league := &models.League{
		Name:    name,
		Country: input.Country,
	}

	if err := s.leagueRepo.Create(ctx, league); err != nil {
		return nil, translateLeagueRepoError(err)
	}
	return league, nil
}

func (s *leagueService) GetLeagueByID(ctx context.Context, id int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateLeagueRepoError(err)
	}
	return league, nil
}

func (s *leagueService) ListLeagues(ctx context.Context) ([]models.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

func (s *leagueService) UpdateLeague(ctx context.Context, id int, input LeagueInput) (*models.League, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrLeagueNameRequired
	}

	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateLeagueRepoError(err)
	}

	league.Name = name
	league.Country = input.Country

	if err := s.leagueRepo.Update(ctx, league); err != nil {
		return nil, translateLeagueRepoError(err)
	}
	return league, nil
}

func (s *leagueService) DeleteLeague(ctx context.Context, id int) error {
	if err := s.leagueRepo.Delete(ctx, id); err != nil {
		return translateLeagueRepoError(err)
	}
	return nil
}

func translateLeagueRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrLeagueNotFound):
		return ErrLeagueNotFound
	case errors.Is(err, repositories.ErrLeagueNameConflict):
		return ErrLeagueNameConflict
	}
	return err
}
