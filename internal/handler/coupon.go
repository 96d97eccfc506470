package handler

import (
	"net/http"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCoupon(c *ginext.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	validUntil, err := dto.ParseValidUntil(req.ValidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid valid_until format, expected RFC3339",
		})
		return
	}

	coupon, err := h.couponService.Create(c.Request.Context(), domain.CreateCouponInput{
		Code:       req.Code,
		AmountOff:  req.AmountOff,
		ValidUntil: validUntil,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCouponResponse(coupon))
}

func (h *Handler) ListCoupons(c *ginext.Context) {
	coupons, err := h.couponService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		resp = append(resp, dto.ToCouponResponse(coupon))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCoupon(c *ginext.Context) {
	coupon, err := h.couponService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

func (h *Handler) UpdateCoupon(c *ginext.Context) {
	var req dto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateCouponInput{AmountOff: req.AmountOff}
	if req.ValidUntil != nil {
		validUntil, err := dto.ParseValidUntil(*req.ValidUntil)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid valid_until format, expected RFC3339",
			})
			return
		}
		input.ValidUntil = validUntil
	}

	coupon, err := h.couponService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

func (h *Handler) DeleteCoupon(c *ginext.Context) {
	if err := h.couponService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "coupon deleted"})
}
