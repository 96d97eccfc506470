package domain

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCourtNotFound        = errors.New("court not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

var (
	ErrCouponCodeTaken = errors.New("coupon code already exists")
	ErrContactTaken    = errors.New("contact is already registered")
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrValidation    = errors.New("validation error")
)
