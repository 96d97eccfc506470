package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CouponRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCouponRepo(db *dbpg.DB) *CouponRepository {
	return &CouponRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CouponRepository) Create(ctx context.Context, c *domain.Coupon) error {
	query := `INSERT INTO coupons (id, code, amount_off, valid_until, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Code, c.AmountOff, c.ValidUntil, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCouponCodeTaken
		}
		return fmt.Errorf("insert coupon: %w", err)
	}

	return nil
}

func (r *CouponRepository) GetByID(ctx context.Context, id string) (*domain.Coupon, error) {
	query := `SELECT id, code, amount_off, valid_until, created_at, updated_at
			  FROM coupons
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	var c domain.Coupon
	if err = row.Scan(&c.ID, &c.Code, &c.AmountOff, &c.ValidUntil, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("scan coupon: %w", err)
	}

	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]*domain.Coupon, error) {
	query := `SELECT id, code, amount_off, valid_until, created_at, updated_at
			  FROM coupons
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var res []*domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		if err = rows.Scan(&c.ID, &c.Code, &c.AmountOff, &c.ValidUntil, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CouponRepository) Update(ctx context.Context, id string, in domain.UpdateCouponInput) (*domain.Coupon, error) {
	query := `UPDATE coupons
			  SET amount_off = COALESCE($2, amount_off),
			      valid_until = COALESCE($3, valid_until),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, code, amount_off, valid_until, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, in.AmountOff, in.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}

	var c domain.Coupon
	if err = row.Scan(&c.ID, &c.Code, &c.AmountOff, &c.ValidUntil, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("scan coupon: %w", err)
	}

	return &c, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("coupon rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCouponNotFound
	}

	return nil
}
