package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/CourtBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	booking      *hmocks.MockBookingSvc
	user         *hmocks.MockUserSvc
	court        *hmocks.MockCourtSvc
	coupon       *hmocks.MockCouponSvc
	announcement *hmocks.MockAnnouncementSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		booking:      hmocks.NewMockBookingSvc(t),
		user:         hmocks.NewMockUserSvc(t),
		court:        hmocks.NewMockCourtSvc(t),
		coupon:       hmocks.NewMockCouponSvc(t),
		announcement: hmocks.NewMockAnnouncementSvc(t),
	}

	h := NewHandler(m.booking, m.user, m.court, m.coupon, m.announcement)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/status", h.ChangeBookingStatus)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.GET("/bookings/requester/:contact/pending", h.GetPendingForRequester)
		api.GET("/bookings/requester/:contact/approved", h.GetApprovedForRequester)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/contact/:contact", h.GetUserByContact)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.POST("/courts", h.CreateCourt)
		api.GET("/courts", h.ListCourts)
		api.GET("/courts/:id", h.GetCourt)

		api.POST("/coupons", h.CreateCoupon)
		api.GET("/coupons/:id", h.GetCoupon)

		api.POST("/announcements", h.CreateAnnouncement)
		api.GET("/announcements/:id", h.GetAnnouncement)
	}

	return m, r
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{
		ID:               uuid.New().String(),
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusPending,
		Extra:            map[string]any{"court": "Центральный", "slot": "2026-09-01T10:00"},
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body := []byte(`{"requesterContact":"anna@club.io","court":"Центральный","slot":"2026-09-01T10:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "anna@club.io", resp["requesterContact"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "Центральный", resp["court"]) // extras rendered flat
	assert.NotEmpty(t, resp["id"])
}

func TestHandler_CreateBooking_ExtrasReachService(t *testing.T) {
	m, r := setupRouter(t)

	var got domain.CreateBookingInput
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateBookingInput) {
			got = input
		}).
		Return(&domain.Booking{ID: "b1", RequesterContact: "anna@club.io", Status: domain.BookingStatusPending}, nil)

	body := []byte(`{"requesterContact":"anna@club.io","id":"spoofed","status":"approved","note":"после 19:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "anna@club.io", got.RequesterContact)
	assert.Equal(t, "после 19:00", got.Extra["note"])
	assert.NotContains(t, got.Extra, "id")     // server-owned keys stripped
	assert.NotContains(t, got.Extra, "status")
}

func TestHandler_CreateBooking_MissingContact(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: requesterContact is required", domain.ErrValidation))

	body := []byte(`{"court":"Центральный"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeBookingStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	res := &domain.StatusChangeResult{
		Booking:   &domain.Booking{ID: bookingID, RequesterContact: "anna@club.io", Status: domain.BookingStatusApproved},
		Matched:   1,
		Promotion: domain.PromotionPromoted,
	}

	m.booking.EXPECT().ChangeStatus(mock.Anything, bookingID, "approved").Return(res, nil)

	body := []byte(`{"status":"approved"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking status updated", resp.Message)
	assert.Equal(t, int64(1), resp.Matched)
	assert.Equal(t, "promoted", resp.Promotion)
}

func TestHandler_ChangeBookingStatus_UnknownID(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().ChangeStatus(mock.Anything, "nonexistent-id", "approved").
		Return(nil, fmt.Errorf("get booking: %w", domain.ErrBookingNotFound))

	body := []byte(`{"status":"approved"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/nonexistent-id/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ChangeBookingStatus_InvalidStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().ChangeStatus(mock.Anything, "b1", "cancelled").
		Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, "cancelled"))

	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeBookingStatus_MissingBody(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:               bookingID,
		RequesterContact: "anna@club.io",
		Status:           domain.BookingStatusPending,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	m.booking.EXPECT().GetByID(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp["id"])
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_StatusFilter(t *testing.T) {
	m, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "b1", RequesterContact: "anna@club.io", Status: domain.BookingStatusPending},
	}
	m.booking.EXPECT().List(mock.Anything, "pending").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_DeleteBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetPendingForRequester_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "b1", RequesterContact: "anna@club.io", Status: domain.BookingStatusPending},
	}
	m.booking.EXPECT().ListPendingFor(mock.Anything, "anna@club.io").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/requester/anna@club.io/pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_HandleError_InternalDetail(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().List(mock.Anything, "").Return(nil, errors.New("pq: connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pq: connection refused", resp.Error)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Анна",
		Contact:   "anna@club.io",
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Анна", Contact: "anna@club.io"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "anna@club.io", resp.Contact)
	assert.Equal(t, "user", resp.Role)
}

func TestHandler_CreateUser_ContactTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create user: %w", domain.ErrContactTaken))

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Анна", Contact: "taken@club.io"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserByContact_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: "u1", Name: "Анна", Contact: "anna@club.io", Role: domain.RoleMember}
	m.user.EXPECT().GetByContact(mock.Anything, "anna@club.io").Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/contact/anna@club.io", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "member", resp.Role)
}

func TestHandler_UpdateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	updated := &domain.User{ID: "u1", Name: "Анна", Contact: "anna@club.io", Role: domain.RoleMember}
	m.user.EXPECT().Update(mock.Anything, "u1", mock.Anything).Return(updated, nil)

	body := []byte(`{"role":"member"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/u1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteUser_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Courts ---

func TestHandler_CreateCourt_Success(t *testing.T) {
	m, r := setupRouter(t)

	court := &domain.Court{
		ID:         uuid.New().String(),
		Name:       "Центральный",
		Surface:    "hard",
		Indoor:     true,
		HourlyRate: decimal.RequireFromString("1500.00"),
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	m.court.EXPECT().Create(mock.Anything, mock.Anything).Return(court, nil)

	body := []byte(`{"name":"Центральный","surface":"hard","indoor":true,"hourly_rate":"1500.00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CourtResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HourlyRate.Equal(decimal.RequireFromString("1500.00")))
}

func TestHandler_ListCourts_Success(t *testing.T) {
	m, r := setupRouter(t)

	courts := []*domain.Court{
		{ID: "c1", Name: "Центральный", HourlyRate: decimal.NewFromInt(1500)},
		{ID: "c2", Name: "Грунтовый", HourlyRate: decimal.NewFromInt(1200)},
	}
	m.court.EXPECT().List(mock.Anything).Return(courts, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CourtResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Coupons ---

func TestHandler_CreateCoupon_Success(t *testing.T) {
	m, r := setupRouter(t)

	until := time.Now().Add(30 * 24 * time.Hour).UTC()
	coupon := &domain.Coupon{
		ID:         uuid.New().String(),
		Code:       "WELCOME10",
		AmountOff:  decimal.RequireFromString("10.50"),
		ValidUntil: &until,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	m.coupon.EXPECT().Create(mock.Anything, mock.Anything).Return(coupon, nil)

	body := []byte(`{"code":"WELCOME10","amount_off":"10.50","valid_until":"` + until.Format(time.RFC3339) + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/coupons", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CouponResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WELCOME10", resp.Code)
	assert.NotEmpty(t, resp.ValidUntil)
}

func TestHandler_CreateCoupon_InvalidValidUntil(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"code":"WELCOME10","amount_off":"10.50","valid_until":"next friday"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/coupons", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCoupon_DuplicateCode(t *testing.T) {
	m, r := setupRouter(t)

	m.coupon.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create coupon: %w", domain.ErrCouponCodeTaken))

	body := []byte(`{"code":"WELCOME10","amount_off":"10.50"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/coupons", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Announcements ---

func TestHandler_CreateAnnouncement_Success(t *testing.T) {
	m, r := setupRouter(t)

	a := &domain.Announcement{
		ID:        uuid.New().String(),
		Title:     "Турнир выходного дня",
		Body:      "Регистрация открыта до пятницы.",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	m.announcement.EXPECT().Create(mock.Anything, mock.Anything).Return(a, nil)

	body, _ := json.Marshal(dto.CreateAnnouncementRequest{
		Title: "Турнир выходного дня",
		Body:  "Регистрация открыта до пятницы.",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AnnouncementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Турнир выходного дня", resp.Title)
}

func TestHandler_GetAnnouncement_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.announcement.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrAnnouncementNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/announcements/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
