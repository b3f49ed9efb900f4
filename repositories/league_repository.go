package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/lib/pq"
)

var (
	ErrLeagueNotFound     = errors.New("league not found")
	ErrLeagueNameConflict = errors.New("league name conflict")
)

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByID(ctx context.Context, id int) (*models.League, error)
	List(ctx context.Context) ([]models.League, error)
	Update(ctx context.Context, league *models.League) error
	Delete(ctx context.Context, id int) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

func (r *postgresLeagueRepository) Create(ctx context.Context, league *models.League) error {
	query := `INSERT INTO leagues (name, country) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, league.Name, league.Country).Scan(&league.ID)
	if err != nil {
		return translateLeagueError(err)
	}
	return nil
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	query := `SELECT id, name, country FROM leagues WHERE id = $1`

	league := &models.League{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&league.ID, &league.Name, &league.Country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	return league, nil
}

func (r *postgresLeagueRepository) List(ctx context.Context) ([]models.League, error) {
	query := `SELECT id, name, country FROM leagues ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leagues := make([]models.League, 0)
	for rows.Next() {
		var league models.League
		if scanErr := rows.Scan(&league.ID, &league.Name, &league.Country); scanErr != nil {
			return nil, scanErr
		}
		leagues = append(leagues, league)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leagues, nil
}

func (r *postgresLeagueRepository) Update(ctx context.Context, league *models.League) error {
	query := `UPDATE leagues SET name = $1, country = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, league.Name, league.Country, league.ID)
	if err != nil {
		return translateLeagueError(err)
	}

	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) Delete(ctx context.Context, id int) error {
	// Матчи лиги (и их статистика) удаляются каскадно на уровне схемы.
	query := `DELETE FROM leagues WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrLeagueNotFound)
}

func translateLeagueError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		if pqErr.Constraint == "leagues_name_key" {
			return ErrLeagueNameConflict
		}
	}
	return err
}
