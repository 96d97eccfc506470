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

type AnnouncementRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAnnouncementRepo(db *dbpg.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (id, title, body, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Title, a.Body, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}

	return nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	query := `SELECT id, title, body, created_at, updated_at
			  FROM announcements
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}

	var a domain.Announcement
	if err = row.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("scan announcement: %w", err)
	}

	return &a, nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]*domain.Announcement, error) {
	query := `SELECT id, title, body, created_at, updated_at
			  FROM announcements
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var res []*domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err = rows.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AnnouncementRepository) Update(ctx context.Context, id string, in domain.UpdateAnnouncementInput) (*domain.Announcement, error) {
	query := `UPDATE announcements
			  SET title = COALESCE($2, title),
			      body = COALESCE($3, body),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, title, body, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, in.Title, in.Body)
	if err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}

	var a domain.Announcement
	if err = row.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("scan announcement: %w", err)
	}

	return &a, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("announcement rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAnnouncementNotFound
	}

	return nil
}
