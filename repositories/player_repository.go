package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerNumberConflict = errors.New("player number already taken in team")
	ErrPlayerTeamInvalid    = errors.New("player team invalid")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, team_id, position, number)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.TeamID,
		player.Position,
		player.Number,
	).Scan(&player.ID)

	if err != nil {
		return translatePlayerError(err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	// Команда подгружается сразу: ответы API отдают игрока вместе с командой.
	query := `
		SELECT
			p.id, p.name, p.team_id, p.position, p.number,
			t.id, t.name
		FROM players p
		JOIN teams t ON p.team_id = t.id
		WHERE p.id = $1`

	player := &models.Player{}
	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.Name,
		&player.TeamID,
		&player.Position,
		&player.Number,
		&team.ID,
		&team.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player with team: %w", err)
	}

	player.Team = team
	return player, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT id, name, team_id, position, number
		FROM players
		ORDER BY name ASC`
	return r.queryPlayers(ctx, query)
}

func (r *postgresPlayerRepository) ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `
		SELECT id, name, team_id, position, number
		FROM players
		WHERE team_id = $1
		ORDER BY number ASC NULLS LAST, name ASC`
	return r.queryPlayers(ctx, query, teamID)
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players SET
			name = $1,
			team_id = $2,
			position = $3,
			number = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		player.Name,
		player.TeamID,
		player.Position,
		player.Number,
		player.ID,
	)
	if err != nil {
		return translatePlayerError(err)
	}

	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	// Статистика игрока удаляется каскадно на уровне схемы.
	query := `DELETE FROM players WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) queryPlayers(ctx context.Context, query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		scanErr := rows.Scan(
			&player.ID,
			&player.Name,
			&player.TeamID,
			&player.Position,
			&player.Number,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func translatePlayerError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "players_team_id_number_key" {
				return ErrPlayerNumberConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "players_team_id_fkey" {
				return ErrPlayerTeamInvalid
			}
		}
	}
	return err
}
