package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type AnnouncementRepo interface {
	Create(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
	Update(ctx context.Context, id string, in domain.UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
