package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
)

type CourtService struct {
	repo ports.CourtRepo
}

func NewCourtService(repo ports.CourtRepo) *CourtService {
	return &CourtService{repo: repo}
}

func (s *CourtService) Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourly_rate must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	court := &domain.Court{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Surface:    input.Surface,
		Indoor:     input.Indoor,
		HourlyRate: input.HourlyRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("create court: %w", err)
	}

	return court, nil
}

func (s *CourtService) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CourtService) List(ctx context.Context) ([]*domain.Court, error) {
	return s.repo.List(ctx)
}

func (s *CourtService) Update(ctx context.Context, id string, input domain.UpdateCourtInput) (*domain.Court, error) {
	if input.HourlyRate != nil && input.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourly_rate must not be negative", domain.ErrValidation)
	}

	court, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update court: %w", err)
	}

	return court, nil
}

func (s *CourtService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
