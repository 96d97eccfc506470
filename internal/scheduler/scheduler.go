package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type promotionSweeper interface {
	Reconcile(ctx context.Context) ([]*domain.User, error)
}

// Scheduler periodically reconciles promotions: an approval writes the
// booking first and the role second, so a crash in between leaves a member
// not yet promoted until a sweep picks them up.
type Scheduler struct {
	promotions promotionSweeper
	interval   time.Duration
	logger     logger.Logger
}

func New(
	promotions promotionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		promotions: promotions,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	promoted, err := s.promotions.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile promotions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, u := range promoted {
		s.logger.Info("requester promoted by sweep",
			logger.String("user_id", u.ID),
			logger.String("contact", u.Contact),
		)
	}
}
