package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/lib/pq"
)

var (
	ErrStatisticNotFound      = errors.New("match statistic not found")
	ErrStatisticMatchInvalid  = errors.New("statistic match invalid")
	ErrStatisticPlayerInvalid = errors.New("statistic player invalid")
)

// StatisticRepository хранит записи статистики как журнал: несколько строк
// на пару (матч, игрок, тип) допустимы, суммирование делает сервис.
type StatisticRepository interface {
	Create(ctx context.Context, stat *models.MatchStatistic) error
	GetByID(ctx context.Context, id int) (*models.MatchStatistic, error)
	List(ctx context.Context) ([]models.MatchStatistic, error)
	ListByType(ctx context.Context, statisticType string) ([]models.MatchStatistic, error)
	ListByMatchID(ctx context.Context, matchID int) ([]models.MatchStatistic, error)
	ListByPlayerID(ctx context.Context, playerID int) ([]models.MatchStatistic, error)
	Update(ctx context.Context, stat *models.MatchStatistic) error
	Delete(ctx context.Context, id int) error
}

type postgresStatisticRepository struct {
	db *sql.DB
}

func NewPostgresStatisticRepository(db *sql.DB) StatisticRepository {
	return &postgresStatisticRepository{db: db}
}

func (r *postgresStatisticRepository) Create(ctx context.Context, stat *models.MatchStatistic) error {
	query := `
		INSERT INTO match_statistics (match_id, player_id, statistic_type, value)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		stat.MatchID,
		stat.PlayerID,
		stat.StatisticType,
		stat.Value,
	).Scan(&stat.ID)

	if err != nil {
		return translateStatisticError(err)
	}
	return nil
}

func (r *postgresStatisticRepository) GetByID(ctx context.Context, id int) (*models.MatchStatistic, error) {
	query := `
		SELECT id, match_id, player_id, statistic_type, value
		FROM match_statistics
		WHERE id = $1`

	stat := &models.MatchStatistic{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&stat.ID,
		&stat.MatchID,
		&stat.PlayerID,
		&stat.StatisticType,
		&stat.Value,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatisticNotFound
		}
		return nil, err
	}
	return stat, nil
}

func (r *postgresStatisticRepository) List(ctx context.Context) ([]models.MatchStatistic, error) {
	query := `
		SELECT id, match_id, player_id, statistic_type, value
		FROM match_statistics
		ORDER BY id ASC`
	return r.queryStatistics(ctx, query)
}

func (r *postgresStatisticRepository) ListByType(ctx context.Context, statisticType string) ([]models.MatchStatistic, error) {
	query := `
		SELECT id, match_id, player_id, statistic_type, value
		FROM match_statistics
		WHERE statistic_type = $1
		ORDER BY id ASC`
	return r.queryStatistics(ctx, query, statisticType)
}

func (r *postgresStatisticRepository) ListByMatchID(ctx context.Context, matchID int) ([]models.MatchStatistic, error) {
	query := `
		SELECT id, match_id, player_id, statistic_type, value
		FROM match_statistics
		WHERE match_id = $1
		ORDER BY id ASC`
	return r.queryStatistics(ctx, query, matchID)
}

func (r *postgresStatisticRepository) ListByPlayerID(ctx context.Context, playerID int) ([]models.MatchStatistic, error) {
	query := `
		SELECT id, match_id, player_id, statistic_type, value
		FROM match_statistics
		WHERE player_id = $1
		ORDER BY id ASC`
	return r.queryStatistics(ctx, query, playerID)
}

func (r *postgresStatisticRepository) Update(ctx context.Context, stat *models.MatchStatistic) error {
	query := `
		UPDATE match_statistics SET
			match_id = $1,
			player_id = $2,
			statistic_type = $3,
			value = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		stat.MatchID,
		stat.PlayerID,
		stat.StatisticType,
		stat.Value,
		stat.ID,
	)
	if err != nil {
		return translateStatisticError(err)
	}

	return checkAffectedRows(result, ErrStatisticNotFound)
}

func (r *postgresStatisticRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM match_statistics WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrStatisticNotFound)
}

func (r *postgresStatisticRepository) queryStatistics(ctx context.Context, query string, args ...interface{}) ([]models.MatchStatistic, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]models.MatchStatistic, 0)
	for rows.Next() {
		var stat models.MatchStatistic
		scanErr := rows.Scan(
			&stat.ID,
			&stat.MatchID,
			&stat.PlayerID,
			&stat.StatisticType,
			&stat.Value,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func translateStatisticError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
		switch pqErr.Constraint {
		case "match_statistics_match_id_fkey":
			return ErrStatisticMatchInvalid
		case "match_statistics_player_id_fkey":
			return ErrStatisticPlayerInvalid
		}
	}
	return err
}
