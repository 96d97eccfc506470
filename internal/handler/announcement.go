package handler

import (
	"net/http"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateAnnouncement(c *ginext.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ann, err := h.announcementService.Create(c.Request.Context(), domain.CreateAnnouncementInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(ann))
}

func (h *Handler) ListAnnouncements(c *ginext.Context) {
	anns, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AnnouncementResponse, 0, len(anns))
	for _, a := range anns {
		resp = append(resp, dto.ToAnnouncementResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAnnouncement(c *ginext.Context) {
	ann, err := h.announcementService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(ann))
}

func (h *Handler) UpdateAnnouncement(c *ginext.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ann, err := h.announcementService.Update(c.Request.Context(), c.Param("id"), domain.UpdateAnnouncementInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(ann))
}

func (h *Handler) DeleteAnnouncement(c *ginext.Context) {
	if err := h.announcementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "announcement deleted"})
}
