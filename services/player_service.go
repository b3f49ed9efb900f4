package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/repositories"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}

type PlayerInput struct {
	Name     string  `json:"name" validate:"required,max=255"`
	TeamID   int     `json:"team_id" validate:"required,gt=0"`
	Position *string `json:"position" validate:"omitempty,max=100"`
	Number   *int    `json:"number" validate:"omitempty,gte=0"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		Name:     name,
		TeamID:   input.TeamID,
		Position: input.Position,
		Number:   input.Number,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, translatePlayerRepoError(err)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translatePlayerRepoError(err)
	}
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translatePlayerRepoError(err)
	}

	player.Name = name
	player.TeamID = input.TeamID
	player.Position = input.Position
	player.Number = input.Number

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, translatePlayerRepoError(err)
	}

	// Команда могла смениться, вложенные данные больше не актуальны.
	player.Team = nil
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return translatePlayerRepoError(err)
	}
	return nil
}

func translatePlayerRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrPlayerNumberConflict):
		return ErrPlayerNumberConflict
	case errors.Is(err, repositories.ErrPlayerTeamInvalid):
		return ErrPlayerTeamInvalid
	}
	return err
}
