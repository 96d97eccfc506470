package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon.Code is the club-facing key and is unique; the id stays the
// storage key so a code is never reused as a foreign key.
type Coupon struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	AmountOff  decimal.Decimal `json:"amount_off"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CreateCouponInput struct {
	Code       string
	AmountOff  decimal.Decimal
	ValidUntil *time.Time
}

type UpdateCouponInput struct {
	AmountOff  *decimal.Decimal
	ValidUntil *time.Time
}
