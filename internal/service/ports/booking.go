package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (int64, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	ListForRequester(ctx context.Context, contact string, status domain.BookingStatus) ([]*domain.Booking, error)
}
