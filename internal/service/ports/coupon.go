package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type CouponRepo interface {
	Create(ctx context.Context, c *domain.Coupon) error
	GetByID(ctx context.Context, id string) (*domain.Coupon, error)
	List(ctx context.Context) ([]*domain.Coupon, error)
	Update(ctx context.Context, id string, in domain.UpdateCouponInput) (*domain.Coupon, error)
	Delete(ctx context.Context, id string) error
}
