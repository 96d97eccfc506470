package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// Promoter applies the membership rule for a booking requester. Outcomes are
// reported, not raised: only a store failure comes back as an error.
type Promoter interface {
	MaybePromote(ctx context.Context, contact string) (domain.PromotionOutcome, error)
}
