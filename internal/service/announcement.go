package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
)

type AnnouncementService struct {
	repo ports.AnnouncementRepo
}

func NewAnnouncementService(repo ports.AnnouncementRepo) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

func (s *AnnouncementService) Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Body == "" {
		return nil, fmt.Errorf("%w: body is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	ann := &domain.Announcement{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, ann); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	return ann, nil
}

func (s *AnnouncementService) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AnnouncementService) List(ctx context.Context) ([]*domain.Announcement, error) {
	return s.repo.List(ctx)
}

func (s *AnnouncementService) Update(ctx context.Context, id string, input domain.UpdateAnnouncementInput) (*domain.Announcement, error) {
	ann, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}

	return ann, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
