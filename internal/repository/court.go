package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CourtRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourtRepo(db *dbpg.DB) *CourtRepository {
	return &CourtRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	query := `INSERT INTO courts (id, name, surface, indoor, hourly_rate, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Surface, c.Indoor, c.HourlyRate, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert court: %w", err)
	}

	return nil
}

func (r *CourtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query := `SELECT id, name, surface, indoor, hourly_rate, created_at, updated_at
			  FROM courts
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}

	var c domain.Court
	if err = row.Scan(&c.ID, &c.Name, &c.Surface, &c.Indoor, &c.HourlyRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("scan court: %w", err)
	}

	return &c, nil
}

func (r *CourtRepository) List(ctx context.Context) ([]*domain.Court, error) {
	query := `SELECT id, name, surface, indoor, hourly_rate, created_at, updated_at
			  FROM courts
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Court
	for rows.Next() {
		var c domain.Court
		if err = rows.Scan(&c.ID, &c.Name, &c.Surface, &c.Indoor, &c.HourlyRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CourtRepository) Update(ctx context.Context, id string, in domain.UpdateCourtInput) (*domain.Court, error) {
	query := `UPDATE courts
			  SET name = COALESCE($2, name),
			      surface = COALESCE($3, surface),
			      indoor = COALESCE($4, indoor),
			      hourly_rate = COALESCE($5, hourly_rate),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, name, surface, indoor, hourly_rate, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, in.Name, in.Surface, in.Indoor, in.HourlyRate)
	if err != nil {
		return nil, fmt.Errorf("update court: %w", err)
	}

	var c domain.Court
	if err = row.Scan(&c.ID, &c.Name, &c.Surface, &c.Indoor, &c.HourlyRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("scan court: %w", err)
	}

	return &c, nil
}

func (r *CourtRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete court: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("court rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCourtNotFound
	}

	return nil
}
