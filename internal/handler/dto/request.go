package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Booking payloads stay open on purpose: requesterContact is the only field
// the server interprets, the server-owned keys are stripped, and whatever
// else the caller sent is carried into the stored record as-is.
type CreateBookingRequest struct {
	RequesterContact string
	Extra            map[string]any
}

// keys the server assigns itself, a caller may not set them on create
var reservedBookingKeys = []string{"id", "status", "createdAt", "updatedAt"}

func (r *CreateBookingRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["requesterContact"].(string); ok {
		r.RequesterContact = v
	}
	delete(raw, "requesterContact")
	for _, k := range reservedBookingKeys {
		delete(raw, k)
	}

	if len(raw) > 0 {
		r.Extra = raw
	}

	return nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}

type CreateCourtRequest struct {
	Name       string          `json:"name" binding:"required"`
	Surface    string          `json:"surface"`
	Indoor     bool            `json:"indoor"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

type UpdateCourtRequest struct {
	Name       *string          `json:"name"`
	Surface    *string          `json:"surface"`
	Indoor     *bool            `json:"indoor"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

type CreateCouponRequest struct {
	Code       string          `json:"code" binding:"required"`
	AmountOff  decimal.Decimal `json:"amount_off"`
	ValidUntil string          `json:"valid_until"`
}

type UpdateCouponRequest struct {
	AmountOff  *decimal.Decimal `json:"amount_off"`
	ValidUntil *string          `json:"valid_until"`
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type UpdateAnnouncementRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// ParseValidUntil accepts the coupon expiry as RFC3339 and rejects anything
// else before it reaches the store.
func ParseValidUntil(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
