package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Reserve(c *ginext.Context)
	GetBooking(c *ginext.Context)
	Checkout(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	RefundBooking(c *ginext.Context)
	GetBookingLedger(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	CreatePitch(c *ginext.Context)
	GetPitch(c *ginext.Context)
	ListPitches(c *ginext.Context)
	UpdatePitchStatus(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetBalance(c *ginext.Context)
	GetRevenue(c *ginext.Context)
	ListReconciliationFlags(c *ginext.Context)
	SendCode(c *ginext.Context)
	CheckCode(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings/reserve", h.Reserve)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/checkout", h.Checkout)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/refund", h.RefundBooking)
		api.GET("/bookings/:id/ledger", h.GetBookingLedger)

		// Payments
		api.POST("/payments/verify/:ref", h.VerifyPayment)
		api.POST("/payments/webhook", h.PaymentWebhook)

		// Pitches
		api.POST("/pitches", h.CreatePitch)
		api.GET("/pitches", h.ListPitches)
		api.GET("/pitches/:id", h.GetPitch)
		api.PATCH("/pitches/:id/status", h.UpdatePitchStatus)
		api.GET("/pitches/:id/availability", h.GetAvailability)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Wallets
		api.GET("/wallets/:type/:id/balance", h.GetBalance)

		// Admin
		api.GET("/admin/revenue", h.GetRevenue)
		api.GET("/admin/reconciliation", h.ListReconciliationFlags)

		// Verification
		api.POST("/verification/send", h.SendCode)
		api.POST("/verification/check", h.CheckCode)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
