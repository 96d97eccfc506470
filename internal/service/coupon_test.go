package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponService_Create_Success(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	svc := NewCouponService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	until := time.Now().Add(30 * 24 * time.Hour).UTC()
	coupon, err := svc.Create(context.Background(), domain.CreateCouponInput{
		Code:       "WELCOME10",
		AmountOff:  decimal.RequireFromString("10.50"),
		ValidUntil: &until,
	})

	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", coupon.Code)
	assert.True(t, coupon.AmountOff.Equal(decimal.RequireFromString("10.50")))
	assert.NotEmpty(t, coupon.ID)
}

func TestCouponService_Create_MissingCode(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	svc := NewCouponService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCouponInput{
		AmountOff: decimal.NewFromInt(10),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCouponService_Create_NonPositiveAmount(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	svc := NewCouponService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCouponInput{
		Code:      "ZERO",
		AmountOff: decimal.Zero,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCouponService_Create_CodeTaken(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	svc := NewCouponService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCouponCodeTaken)

	_, err := svc.Create(context.Background(), domain.CreateCouponInput{
		Code:      "WELCOME10",
		AmountOff: decimal.NewFromInt(10),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCouponCodeTaken)
}

func TestCouponService_Update_NonPositiveAmount(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	svc := NewCouponService(repo)

	bad := decimal.NewFromInt(-5)
	_, err := svc.Update(context.Background(), "c1", domain.UpdateCouponInput{AmountOff: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCouponService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	svc := NewCouponService(repo)

	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrCouponNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateCouponInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}
