package handler

import (
	"net/http"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCourt(c *ginext.Context) {
	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	court, err := h.courtService.Create(c.Request.Context(), domain.CreateCourtInput{
		Name:       req.Name,
		Surface:    req.Surface,
		Indoor:     req.Indoor,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourtResponse(court))
}

func (h *Handler) ListCourts(c *ginext.Context) {
	courts, err := h.courtService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourtResponse, 0, len(courts))
	for _, court := range courts {
		resp = append(resp, dto.ToCourtResponse(court))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCourt(c *ginext.Context) {
	court, err := h.courtService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

func (h *Handler) UpdateCourt(c *ginext.Context) {
	var req dto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	court, err := h.courtService.Update(c.Request.Context(), c.Param("id"), domain.UpdateCourtInput{
		Name:       req.Name,
		Surface:    req.Surface,
		Indoor:     req.Indoor,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

func (h *Handler) DeleteCourt(c *ginext.Context) {
	if err := h.courtService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "court deleted"})
}
