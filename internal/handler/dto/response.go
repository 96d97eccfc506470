package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/domain"
)

// BookingResponse flattens the opaque extra fields back to the top level so
// callers read back exactly the shape they created. The typed keys win on a
// name clash.
type BookingResponse struct {
	ID               string
	RequesterContact string
	Status           string
	CreatedAt        string
	UpdatedAt        string
	Extra            map[string]any
}

func (r BookingResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+5)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["id"] = r.ID
	out["requesterContact"] = r.RequesterContact
	out["status"] = r.Status
	out["createdAt"] = r.CreatedAt
	out["updatedAt"] = r.UpdatedAt

	return json.Marshal(out)
}

type StatusChangeResponse struct {
	Message   string `json:"message"`
	Matched   int64  `json:"matched"`
	Promotion string `json:"promotion"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CourtResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Surface    string          `json:"surface,omitempty"`
	Indoor     bool            `json:"indoor"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type CouponResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	AmountOff  decimal.Decimal `json:"amount_off"`
	ValidUntil string          `json:"valid_until,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		RequesterContact: b.RequesterContact,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
		Extra:            b.Extra,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Contact:   u.Contact,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCourtResponse(c *domain.Court) CourtResponse {
	return CourtResponse{
		ID:         c.ID,
		Name:       c.Name,
		Surface:    c.Surface,
		Indoor:     c.Indoor,
		HourlyRate: c.HourlyRate,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCouponResponse(c *domain.Coupon) CouponResponse {
	resp := CouponResponse{
		ID:        c.ID,
		Code:      c.Code,
		AmountOff: c.AmountOff,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.ValidUntil != nil {
		resp.ValidUntil = c.ValidUntil.Format(time.RFC3339)
	}

	return resp
}

func ToAnnouncementResponse(a *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
