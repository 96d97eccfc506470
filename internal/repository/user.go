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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, contact, phone, role, created_at, updated_at)
 			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Contact, user.Phone, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrContactTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, contact, phone, role, created_at, updated_at
    		  FROM users
    		  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Contact, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByContact(ctx context.Context, contact string) (*domain.User, error) {
	query := `SELECT id, name, contact, phone, role, created_at, updated_at
    		  FROM users
    		  WHERE contact=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, contact)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Contact, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, contact, phone, role, created_at, updated_at
			  FROM users
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Contact, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error) {
	query := `UPDATE users
			  SET name = COALESCE($2, name),
			      phone = COALESCE($3, phone),
			      role = COALESCE($4, role),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, name, contact, phone, role, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, in.Name, in.Phone, in.Role)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Contact, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Promote flips the role only while the stored row still matches from.
// A zero match means the user vanished or was already changed, and the
// caller decides what that outcome means.
func (r *UserRepository) Promote(ctx context.Context, contact string, from, to domain.Role) (bool, error) {
	query := `UPDATE users
			  SET role = $3, updated_at = now()
			  WHERE contact = $1 AND role = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, contact, from, to)
	if err != nil {
		return false, fmt.Errorf("promote user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("user rows affected: %w", err)
	}

	return rows > 0, nil
}

// PromoteApprovedRequesters closes the gap left when an approval wrote the
// booking but the follow-up role write never landed. Each row comes back
// already promoted.
func (r *UserRepository) PromoteApprovedRequesters(ctx context.Context) ([]*domain.User, error) {
	query := `
        UPDATE users u
        SET role = $2, updated_at = NOW()
        FROM bookings b
        WHERE b.requester_contact = u.contact
          AND b.status = $3
          AND u.role = $1
        RETURNING u.id, u.name, u.contact, u.phone, u.role, u.created_at, u.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RoleUser, domain.RoleMember, domain.BookingStatusApproved,
	)
	if err != nil {
		return nil, fmt.Errorf("promote approved requesters: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Contact, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		res = append(res, &u)
	}

	return res, rows.Err()
}
