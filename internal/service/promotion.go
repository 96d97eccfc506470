package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PromotionService struct {
	userRepo ports.UserRepo
	notifier ports.ClubNotifier
	logger   logger.Logger
}

func NewPromotionService(
	userRepo ports.UserRepo,
	notifier ports.ClubNotifier,
	logger logger.Logger,
) *PromotionService {
	return &PromotionService{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// MaybePromote applies the first-approval rule for a requester: an account
// holding the base role becomes a member, anyone else stays as they are.
// A requester without an account is a normal outcome, not a failure.
func (s *PromotionService) MaybePromote(ctx context.Context, contact string) (domain.PromotionOutcome, error) {
	user, err := s.userRepo.GetByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.PromotionNoAccount, nil
		}
		return domain.PromotionSkipped, fmt.Errorf("get user: %w", err)
	}

	if user.Role != domain.RoleUser {
		return domain.PromotionUnchanged, nil
	}

	promoted, err := s.userRepo.Promote(ctx, contact, domain.RoleUser, domain.RoleMember)
	if err != nil {
		return domain.PromotionSkipped, fmt.Errorf("promote user: %w", err)
	}
	if !promoted {
		// the role moved between read and write, nothing left to do
		return domain.PromotionUnchanged, nil
	}

	user.Role = domain.RoleMember

	s.logger.Info("member promoted",
		logger.String("user_id", user.ID),
		logger.String("contact", contact),
	)

	go s.notifier.NotifyMemberPromoted(context.WithoutCancel(ctx), user)

	return domain.PromotionPromoted, nil
}

// Reconcile promotes every base-role account that already holds an approved
// booking. It backstops approvals whose follow-up role write was lost.
func (s *PromotionService) Reconcile(ctx context.Context) ([]*domain.User, error) {
	promoted, err := s.userRepo.PromoteApprovedRequesters(ctx)
	if err != nil {
		return nil, fmt.Errorf("promote approved requesters: %w", err)
	}

	if len(promoted) > 0 {
		s.logger.Info("stale promotions applied",
			logger.Int("count", len(promoted)),
		)

		go s.notifyPromoted(context.WithoutCancel(ctx), promoted)
	}

	return promoted, nil
}

func (s *PromotionService) notifyPromoted(ctx context.Context, users []*domain.User) {
	for _, u := range users {
		s.notifier.NotifyMemberPromoted(ctx, u)
	}
}
