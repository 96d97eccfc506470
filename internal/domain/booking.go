package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Booking keeps the fields the core interprets as typed columns; everything
// else the caller sent on create is stored opaquely in Extra.
type Booking struct {
	ID               string         `json:"id"`
	RequesterContact string         `json:"requester_contact"`
	Status           BookingStatus  `json:"status"`
	Extra            map[string]any `json:"extra,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type CreateBookingInput struct {
	RequesterContact string
	Extra            map[string]any
}

// PromotionOutcome is the promotion rule's report, merged into the
// status-change response. A missing account is a valid no-op, not an error.
type PromotionOutcome string

const (
	PromotionPromoted  PromotionOutcome = "promoted"
	PromotionUnchanged PromotionOutcome = "unchanged"
	PromotionNoAccount PromotionOutcome = "no_account"
	PromotionSkipped   PromotionOutcome = "skipped"
)

type StatusChangeResult struct {
	Booking   *Booking
	Matched   int64
	Promotion PromotionOutcome
}
