package router

import (
	"context"
	"net/http"
	"time"

	"github.com/stpnv0/CourtBooker/internal/obs"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ChangeBookingStatus(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	GetPendingForRequester(c *ginext.Context)
	GetApprovedForRequester(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetUserByContact(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	CreateCourt(c *ginext.Context)
	ListCourts(c *ginext.Context)
	GetCourt(c *ginext.Context)
	UpdateCourt(c *ginext.Context)
	DeleteCourt(c *ginext.Context)

	CreateCoupon(c *ginext.Context)
	ListCoupons(c *ginext.Context)
	GetCoupon(c *ginext.Context)
	UpdateCoupon(c *ginext.Context)
	DeleteCoupon(c *ginext.Context)

	CreateAnnouncement(c *ginext.Context)
	ListAnnouncements(c *ginext.Context)
	GetAnnouncement(c *ginext.Context)
	UpdateAnnouncement(c *ginext.Context)
	DeleteAnnouncement(c *ginext.Context)
}

// ReadyCheck reports whether the store is reachable, backing /readyz.
type ReadyCheck func(ctx context.Context) error

// InitRouter builds the route table. advisory is attached to the admin-ish
// routes and only logs, it never blocks (role checks are not enforced here).
func InitRouter(mode string, h Handler, ready ReadyCheck, advisory ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", advisory, h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/status", advisory, h.ChangeBookingStatus)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.GET("/bookings/requester/:contact/pending", h.GetPendingForRequester)
		api.GET("/bookings/requester/:contact/approved", h.GetApprovedForRequester)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", advisory, h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/contact/:contact", h.GetUserByContact)
		api.PUT("/users/:id", advisory, h.UpdateUser)
		api.DELETE("/users/:id", advisory, h.DeleteUser)

		// Courts
		api.POST("/courts", advisory, h.CreateCourt)
		api.GET("/courts", h.ListCourts)
		api.GET("/courts/:id", h.GetCourt)
		api.PUT("/courts/:id", advisory, h.UpdateCourt)
		api.DELETE("/courts/:id", advisory, h.DeleteCourt)

		// Coupons
		api.POST("/coupons", advisory, h.CreateCoupon)
		api.GET("/coupons", h.ListCoupons)
		api.GET("/coupons/:id", h.GetCoupon)
		api.PUT("/coupons/:id", advisory, h.UpdateCoupon)
		api.DELETE("/coupons/:id", advisory, h.DeleteCoupon)

		// Announcements
		api.POST("/announcements", advisory, h.CreateAnnouncement)
		api.GET("/announcements", h.ListAnnouncements)
		api.GET("/announcements/:id", h.GetAnnouncement)
		api.PUT("/announcements/:id", advisory, h.UpdateAnnouncement)
		api.DELETE("/announcements/:id", advisory, h.DeleteAnnouncement)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *ginext.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, ginext.H{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := obs.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
