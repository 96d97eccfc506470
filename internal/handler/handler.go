package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	ChangeStatus(ctx context.Context, id, status string) (*domain.StatusChangeResult, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, status string) ([]*domain.Booking, error)
	ListPendingFor(ctx context.Context, contact string) ([]*domain.Booking, error)
	ListApprovedFor(ctx context.Context, contact string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByContact(ctx context.Context, contact string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type CourtSvc interface {
	Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error)
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context) ([]*domain.Court, error)
	Update(ctx context.Context, id string, input domain.UpdateCourtInput) (*domain.Court, error)
	Delete(ctx context.Context, id string) error
}

type CouponSvc interface {
	Create(ctx context.Context, input domain.CreateCouponInput) (*domain.Coupon, error)
	GetByID(ctx context.Context, id string) (*domain.Coupon, error)
	List(ctx context.Context) ([]*domain.Coupon, error)
	Update(ctx context.Context, id string, input domain.UpdateCouponInput) (*domain.Coupon, error)
	Delete(ctx context.Context, id string) error
}

type AnnouncementSvc interface {
	Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error)
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
	Update(ctx context.Context, id string, input domain.UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	bookingService      BookingSvc
	userService         UserSvc
	courtService        CourtSvc
	couponService       CouponSvc
	announcementService AnnouncementSvc
}

func NewHandler(
	bookingService BookingSvc,
	userService UserSvc,
	courtService CourtSvc,
	couponService CouponSvc,
	announcementService AnnouncementSvc,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		userService:         userService,
		courtService:        courtService,
		couponService:       couponService,
		announcementService: announcementService,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrContactTaken),
		errors.Is(err, domain.ErrCouponCodeTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		// store failures keep their detail so the caller sees what broke
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
