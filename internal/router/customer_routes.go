package router

import (
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/handler"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All routes
// require a valid JWT and the CUSTOMER role. Customers can book available
// slots, list their own bookings and cancel upcoming ones.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)
	// Note: browsing departments and their available slots is registered on
	// the public router so guests can look around before registering.
	// Customer-specific endpoints begin here.
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListMyBookings)
	g.DELETE("/bookings/:bookingID", h.CancelBooking)
}
