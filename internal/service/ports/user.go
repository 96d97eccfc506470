package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByContact(ctx context.Context, contact string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Promote(ctx context.Context, contact string, from, to domain.Role) (bool, error)
	PromoteApprovedRequesters(ctx context.Context) ([]*domain.User, error)
}
