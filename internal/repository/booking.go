package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// scanBooking works for both *sql.Row and *sql.Rows. The extra column is
// jsonb and is decoded back into the open part of the record.
func scanBooking(s interface{ Scan(dest ...any) error }) (*domain.Booking, error) {
	var (
		b   domain.Booking
		raw []byte
	)
	if err := s.Scan(&b.ID, &b.RequesterContact, &b.Status, &raw, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &b.Extra); err != nil {
			return nil, fmt.Errorf("decode extra: %w", err)
		}
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	extra := []byte("{}")
	if len(b.Extra) > 0 {
		var err error
		extra, err = json.Marshal(b.Extra)
		if err != nil {
			return fmt.Errorf("encode extra: %w", err)
		}
	}

	query := `INSERT INTO bookings (id, requester_contact, status, extra, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.RequesterContact, b.Status, extra, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, requester_contact, status, extra, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus reports how many rows the update matched so the caller can
// tell a clean write from one that hit nothing.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (int64, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return 0, fmt.Errorf("update booking status: %w", err)
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("booking rows affected: %w", err)
	}

	return matched, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, requester_contact, status, extra, created_at, updated_at
			  FROM bookings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT id, requester_contact, status, extra, created_at, updated_at
			  FROM bookings
			  WHERE status = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings by status: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListForRequester(ctx context.Context, contact string, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT id, requester_contact, status, extra, created_at, updated_at
			  FROM bookings
			  WHERE requester_contact = $1 AND status = $2
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, contact, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings for requester: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
