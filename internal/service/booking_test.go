package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBookingService_Create_StartsPending(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RequesterContact: "anna@club.io",
		Extra:            map[string]any{"court": "центральный", "slot": "2026-09-01T10:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "anna@club.io", booking.RequesterContact)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "центральный", booking.Extra["court"])
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingService_Create_MissingContact(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RequesterContact: "anna@club.io",
	})

	require.Error(t, err)
}

func TestBookingService_ChangeStatus_InvalidStatus(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	_, err := svc.ChangeStatus(context.Background(), "b1", "confirmed")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_ChangeStatus_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.ChangeStatus(context.Background(), "missing", "approved")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ChangeStatus_ApprovePromotes(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved).Return(int64(1), nil)
	promoter.EXPECT().MaybePromote(mock.Anything, "anna@club.io").Return(domain.PromotionPromoted, nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, mock.Anything).Return()

	res, err := svc.ChangeStatus(context.Background(), "b1", "approved")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, res.Booking.Status)
	assert.Equal(t, int64(1), res.Matched)
	assert.Equal(t, domain.PromotionPromoted, res.Promotion)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_ChangeStatus_ApproveWithoutAccount(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "stranger@mail.io",
		Status:           domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved).Return(int64(1), nil)
	promoter.EXPECT().MaybePromote(mock.Anything, "stranger@mail.io").Return(domain.PromotionNoAccount, nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, mock.Anything).Return()

	res, err := svc.ChangeStatus(context.Background(), "b1", "approved")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionNoAccount, res.Promotion)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_PromotionFailureKeepsApproval(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved).Return(int64(1), nil)
	promoter.EXPECT().MaybePromote(mock.Anything, "anna@club.io").Return(domain.PromotionSkipped, errors.New("db down"))
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, mock.Anything).Return()

	res, err := svc.ChangeStatus(context.Background(), "b1", "approved")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, res.Booking.Status)
	assert.Equal(t, domain.PromotionSkipped, res.Promotion)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_RepeatedApprove(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusApproved,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved).Return(int64(1), nil)
	promoter.EXPECT().MaybePromote(mock.Anything, "anna@club.io").Return(domain.PromotionUnchanged, nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, mock.Anything).Return()

	res, err := svc.ChangeStatus(context.Background(), "b1", "approved")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionUnchanged, res.Promotion)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_Reject(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusRejected).Return(int64(1), nil)
	notifier.EXPECT().NotifyBookingRejected(mock.Anything, mock.Anything).Return()

	res, err := svc.ChangeStatus(context.Background(), "b1", "rejected")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, res.Booking.Status)
	assert.Equal(t, domain.PromotionSkipped, res.Promotion)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_BackToPending(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusRejected,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending).Return(int64(1), nil)

	res, err := svc.ChangeStatus(context.Background(), "b1", "pending")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, res.Booking.Status)
}

func TestBookingService_ChangeStatus_UpdateError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	booking := &domain.Booking{
		ID:               "b1",
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved).Return(int64(0), errors.New("db down"))

	_, err := svc.ChangeStatus(context.Background(), "b1", "approved")

	require.Error(t, err)
}

func TestBookingService_List_All(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookings := []*domain.Booking{
		{ID: "b1", RequesterContact: "anna@club.io", Status: domain.BookingStatusPending},
		{ID: "b2", RequesterContact: "boris@club.io", Status: domain.BookingStatusApproved},
	}
	bookingRepo.EXPECT().List(mock.Anything).Return(bookings, nil)

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_List_ByStatus(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookings := []*domain.Booking{
		{ID: "b2", RequesterContact: "boris@club.io", Status: domain.BookingStatusApproved},
	}
	bookingRepo.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusApproved).Return(bookings, nil)

	got, err := svc.List(context.Background(), "approved")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingService_List_InvalidFilter(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	_, err := svc.List(context.Background(), "bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_ListPendingFor(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookings := []*domain.Booking{
		{ID: "b1", RequesterContact: "anna@club.io", Status: domain.BookingStatusPending},
	}
	bookingRepo.EXPECT().ListForRequester(mock.Anything, "anna@club.io", domain.BookingStatusPending).Return(bookings, nil)

	got, err := svc.ListPendingFor(context.Background(), "anna@club.io")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingService_ListApprovedFor(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookingRepo.EXPECT().ListForRequester(mock.Anything, "anna@club.io", domain.BookingStatusApproved).Return(nil, nil)

	got, err := svc.ListApprovedFor(context.Background(), "anna@club.io")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingService_Delete_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	err := svc.Delete(context.Background(), "b1")

	require.NoError(t, err)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, promoter, notifier, log)

	bookingRepo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
