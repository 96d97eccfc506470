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

func TestAnnouncementService_Create_Success(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	svc := NewAnnouncementService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Create(context.Background(), domain.CreateAnnouncementInput{
		Title: "Турнир выходного дня",
		Body:  "Регистрация открыта до пятницы.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Турнир выходного дня", a.Title)
	assert.NotEmpty(t, a.ID)
}

func TestAnnouncementService_Create_MissingBody(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	svc := NewAnnouncementService(repo)

	_, err := svc.Create(context.Background(), domain.CreateAnnouncementInput{Title: "Турнир"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
