package handler

import (
	"net/http"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/stpnv0/CourtBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// a caller with a token may omit the contact, the claim fills it in
	if req.RequesterContact == "" {
		req.RequesterContact, _ = middleware.IdentityFromCtx(c)
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		RequesterContact: req.RequesterContact,
		Extra:            req.Extra,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ChangeBookingStatus(c *ginext.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.bookingService.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusChangeResponse{
		Message:   "booking status updated",
		Matched:   res.Matched,
		Promotion: string(res.Promotion),
	})
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	if err := h.bookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "booking deleted"})
}

func (h *Handler) GetPendingForRequester(c *ginext.Context) {
	bookings, err := h.bookingService.ListPendingFor(c.Request.Context(), c.Param("contact"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetApprovedForRequester(c *ginext.Context) {
	bookings, err := h.bookingService.ListApprovedFor(c.Request.Context(), c.Param("contact"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}
