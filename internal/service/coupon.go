package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
)

type CouponService struct {
	repo ports.CouponRepo
}

func NewCouponService(repo ports.CouponRepo) *CouponService {
	return &CouponService{repo: repo}
}

func (s *CouponService) Create(ctx context.Context, input domain.CreateCouponInput) (*domain.Coupon, error) {
	if input.Code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}
	if !input.AmountOff.IsPositive() {
		return nil, fmt.Errorf("%w: amount_off must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	coupon := &domain.Coupon{
		ID:         uuid.New().String(),
		Code:       input.Code,
		AmountOff:  input.AmountOff,
		ValidUntil: input.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}

	return coupon, nil
}

func (s *CouponService) GetByID(ctx context.Context, id string) (*domain.Coupon, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CouponService) List(ctx context.Context) ([]*domain.Coupon, error) {
	return s.repo.List(ctx)
}

func (s *CouponService) Update(ctx context.Context, id string, input domain.UpdateCouponInput) (*domain.Coupon, error) {
	if input.AmountOff != nil && !input.AmountOff.IsPositive() {
		return nil, fmt.Errorf("%w: amount_off must be positive", domain.ErrValidation)
	}

	coupon, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}

	return coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
