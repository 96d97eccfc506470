package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourtService_Create_Success(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	svc := NewCourtService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	court, err := svc.Create(context.Background(), domain.CreateCourtInput{
		Name:       "Центральный",
		Surface:    "hard",
		Indoor:     true,
		HourlyRate: decimal.RequireFromString("1500.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Центральный", court.Name)
	assert.NotEmpty(t, court.ID)
}

func TestCourtService_Create_NegativeRate(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	svc := NewCourtService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCourtInput{
		Name:       "Центральный",
		HourlyRate: decimal.NewFromInt(-100),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourtService_Create_MissingName(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	svc := NewCourtService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCourtInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
