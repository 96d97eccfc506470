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
)

func TestPromotionService_MaybePromote_PromotesBaseRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	user := &domain.User{ID: "u1", Name: "Анна", Contact: "anna@club.io", Role: domain.RoleUser}

	userRepo.EXPECT().GetByContact(mock.Anything, "anna@club.io").Return(user, nil)
	userRepo.EXPECT().Promote(mock.Anything, "anna@club.io", domain.RoleUser, domain.RoleMember).Return(true, nil)
	notifier.EXPECT().NotifyMemberPromoted(mock.Anything, mock.Anything).Return()

	outcome, err := svc.MaybePromote(context.Background(), "anna@club.io")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionPromoted, outcome)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPromotionService_MaybePromote_NoAccount(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	userRepo.EXPECT().GetByContact(mock.Anything, "stranger@mail.io").Return(nil, domain.ErrUserNotFound)

	outcome, err := svc.MaybePromote(context.Background(), "stranger@mail.io")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionNoAccount, outcome)
}

func TestPromotionService_MaybePromote_AlreadyMember(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	user := &domain.User{ID: "u1", Contact: "anna@club.io", Role: domain.RoleMember}
	userRepo.EXPECT().GetByContact(mock.Anything, "anna@club.io").Return(user, nil)

	outcome, err := svc.MaybePromote(context.Background(), "anna@club.io")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionUnchanged, outcome)
}

func TestPromotionService_MaybePromote_AdminStaysAdmin(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	user := &domain.User{ID: "u1", Contact: "coach@club.io", Role: domain.RoleAdmin}
	userRepo.EXPECT().GetByContact(mock.Anything, "coach@club.io").Return(user, nil)

	outcome, err := svc.MaybePromote(context.Background(), "coach@club.io")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionUnchanged, outcome)
}

func TestPromotionService_MaybePromote_LostRace(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	user := &domain.User{ID: "u1", Contact: "anna@club.io", Role: domain.RoleUser}

	userRepo.EXPECT().GetByContact(mock.Anything, "anna@club.io").Return(user, nil)
	userRepo.EXPECT().Promote(mock.Anything, "anna@club.io", domain.RoleUser, domain.RoleMember).Return(false, nil)

	outcome, err := svc.MaybePromote(context.Background(), "anna@club.io")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionUnchanged, outcome)
}

func TestPromotionService_MaybePromote_StoreError(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	user := &domain.User{ID: "u1", Contact: "anna@club.io", Role: domain.RoleUser}

	userRepo.EXPECT().GetByContact(mock.Anything, "anna@club.io").Return(user, nil)
	userRepo.EXPECT().Promote(mock.Anything, "anna@club.io", domain.RoleUser, domain.RoleMember).Return(false, errors.New("db down"))

	outcome, err := svc.MaybePromote(context.Background(), "anna@club.io")

	require.Error(t, err)
	assert.Equal(t, domain.PromotionSkipped, outcome)
}

func TestPromotionService_MaybePromote_LookupError(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	userRepo.EXPECT().GetByContact(mock.Anything, "anna@club.io").Return(nil, errors.New("db down"))

	outcome, err := svc.MaybePromote(context.Background(), "anna@club.io")

	require.Error(t, err)
	assert.Equal(t, domain.PromotionSkipped, outcome)
}

func TestPromotionService_Reconcile_PromotesBacklog(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	promoted := []*domain.User{
		{ID: "u1", Contact: "anna@club.io", Role: domain.RoleMember},
		{ID: "u2", Contact: "boris@club.io", Role: domain.RoleMember},
	}

	userRepo.EXPECT().PromoteApprovedRequesters(mock.Anything).Return(promoted, nil)
	notifier.EXPECT().NotifyMemberPromoted(mock.Anything, mock.Anything).Return().Times(2)

	got, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestPromotionService_Reconcile_NothingStale(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	userRepo.EXPECT().PromoteApprovedRequesters(mock.Anything).Return(nil, nil)

	got, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPromotionService_Reconcile_Error(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockClubNotifier(t)
	log := newTestLogger(t)

	svc := NewPromotionService(userRepo, notifier, log)

	userRepo.EXPECT().PromoteApprovedRequesters(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Reconcile(context.Background())

	require.Error(t, err)
}
