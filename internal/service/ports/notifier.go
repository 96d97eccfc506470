package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// ClubNotifier pushes operational updates to the club channel. Implementations
// are fire-and-forget and must never fail the calling flow.
type ClubNotifier interface {
	NotifyBookingApproved(ctx context.Context, b *domain.Booking)
	NotifyBookingRejected(ctx context.Context, b *domain.Booking)
	NotifyMemberPromoted(ctx context.Context, u *domain.User)
}
