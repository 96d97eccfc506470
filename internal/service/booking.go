package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	promoter    ports.Promoter
	notifier    ports.ClubNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	promoter ports.Promoter,
	notifier ports.ClubNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		promoter:    promoter,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create stores a new request. Whatever the caller sent, the booking starts
// out pending with a server-side id and timestamps.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.RequesterContact == "" {
		return nil, fmt.Errorf("%w: requesterContact is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		RequesterContact: input.RequesterContact,
		Status:           domain.BookingStatusPending,
		Extra:            input.Extra,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("requester", booking.RequesterContact),
	)

	return booking, nil
}

// ChangeStatus moves a booking to the requested status. The status is parsed
// before any store access, the booking is loaded before any write, and on an
// approval the membership rule runs afterwards without being able to undo the
// status change.
func (s *BookingService) ChangeStatus(ctx context.Context, id, rawStatus string) (*domain.StatusChangeResult, error) {
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	matched, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	res := &domain.StatusChangeResult{
		Booking:   booking,
		Matched:   matched,
		Promotion: domain.PromotionSkipped,
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", booking.ID),
		logger.String("status", string(status)),
		logger.Int64("matched", matched),
	)

	switch status {
	case domain.BookingStatusApproved:
		outcome, err := s.promoter.MaybePromote(ctx, booking.RequesterContact)
		if err != nil {
			// the approval stands, the sweep picks the role up later
			s.logger.Error("promotion deferred",
				logger.String("booking_id", booking.ID),
				logger.String("requester", booking.RequesterContact),
				logger.String("error", err.Error()),
			)
		}
		res.Promotion = outcome

		go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), booking)
	case domain.BookingStatusRejected:
		go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), booking)
	}

	return res, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// List returns every booking, or only those in the given status when the
// filter is non-empty.
func (s *BookingService) List(ctx context.Context, rawStatus string) ([]*domain.Booking, error) {
	if rawStatus == "" {
		return s.bookingRepo.List(ctx)
	}

	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	return s.bookingRepo.ListByStatus(ctx, status)
}

func (s *BookingService) ListPendingFor(ctx context.Context, contact string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListForRequester(ctx, contact, domain.BookingStatusPending)
}

func (s *BookingService) ListApprovedFor(ctx context.Context, contact string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListForRequester(ctx, contact, domain.BookingStatusApproved)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", id),
	)

	return nil
}
