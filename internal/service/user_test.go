package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_DefaultsToBaseRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:    "Анна",
		Contact: "anna@club.io",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_ExplicitRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:    "Тренер",
		Contact: "coach@club.io",
		Role:    "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:    "Анна",
		Contact: "anna@club.io",
		Role:    "superuser",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_MissingName(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Contact: "anna@club.io"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_ContactTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrContactTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:    "Анна",
		Contact: "anna@club.io",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContactTaken)
}

func TestUserService_Update_RejectsUnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	role := "superuser"
	_, err := svc.Update(context.Background(), "u1", domain.UpdateUserInput{Role: &role})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Update_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	phone := "+7 900 000-00-00"
	updated := &domain.User{ID: "u1", Name: "Анна", Contact: "anna@club.io", Phone: phone, Role: domain.RoleMember}

	repo.EXPECT().Update(mock.Anything, "u1", mock.Anything).Return(updated, nil)

	user, err := svc.Update(context.Background(), "u1", domain.UpdateUserInput{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, phone, user.Phone)
}

func TestUserService_GetByContact_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByContact(mock.Anything, "missing@mail.io").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByContact(context.Background(), "missing@mail.io")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{
		{ID: "u1", Name: "Анна", Contact: "anna@club.io", Role: domain.RoleMember},
	}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrUserNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
