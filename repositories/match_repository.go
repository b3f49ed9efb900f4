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
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchTeamInvalid   = errors.New("match team invalid")
	ErrMatchLeagueInvalid = errors.New("match league invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (date_time, home_team_id, away_team_id, league_id, home_team_score, away_team_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		match.DateTime,
		match.HomeTeamID,
		match.AwayTeamID,
		match.LeagueID,
		match.HomeTeamScore,
		match.AwayTeamScore,
	).Scan(&match.ID)

	if err != nil {
		return translateMatchError(err)
	}
	return nil
}

const matchSelect = `
	SELECT
		m.id, m.date_time, m.home_team_id, m.away_team_id, m.league_id,
		m.home_team_score, m.away_team_score,
		ht.id, ht.name,
		at.id, at.name,
		l.id, l.name, l.country
	FROM matches m
	JOIN teams ht ON m.home_team_id = ht.id
	JOIN teams at ON m.away_team_id = at.id
	JOIN leagues l ON m.league_id = l.id`

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	row := r.db.QueryRowContext(ctx, matchSelect+` WHERE m.id = $1`, id)

	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return match, nil
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, matchSelect+` ORDER BY m.date_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, *match)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			date_time = $1,
			home_team_id = $2,
			away_team_id = $3,
			league_id = $4,
			home_team_score = $5,
			away_team_score = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		match.DateTime,
		match.HomeTeamID,
		match.AwayTeamID,
		match.LeagueID,
		match.HomeTeamScore,
		match.AwayTeamScore,
		match.ID,
	)
	if err != nil {
		return translateMatchError(err)
	}

	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	// Статистика матча удаляется каскадно на уровне схемы.
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrMatchNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	match := &models.Match{}
	homeTeam := &models.Team{}
	awayTeam := &models.Team{}
	league := &models.League{}

	err := row.Scan(
		&match.ID,
		&match.DateTime,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.LeagueID,
		&match.HomeTeamScore,
		&match.AwayTeamScore,
		&homeTeam.ID,
		&homeTeam.Name,
		&awayTeam.ID,
		&awayTeam.Name,
		&league.ID,
		&league.Name,
		&league.Country,
	)
	if err != nil {
		return nil, err
	}

	match.HomeTeam = homeTeam
	match.AwayTeam = awayTeam
	match.League = league
	return match, nil
}

func translateMatchError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
		switch pqErr.Constraint {
		case "matches_home_team_id_fkey", "matches_away_team_id_fkey":
			return ErrMatchTeamInvalid
		case "matches_league_id_fkey":
			return ErrMatchLeagueInvalid
		}
	}
	return err
}
