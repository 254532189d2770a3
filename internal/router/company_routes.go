package router // router defines how HTTP routes are registered for the API

import (
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/handler"    // company handlers
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterCompany registers COMPANY-scoped endpoints under /v1/company.
// All routes require a valid JWT and COMPANY role.
func RegisterCompany(e *echo.Echo, h *handler.CompanyHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1/company",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("COMPANY"),
	)

	// ---- Departments ----
	g.GET("/departments", h.ListDepartments)
	g.GET("/departments/:departmentID", h.GetDepartment)
	g.POST("/departments", h.CreateDepartment)
	// The department id rides in the body; absent fields keep their stored
	// values.
	g.PUT("/departments", h.UpdateDepartment)

	// ---- Schedule slots ----
	g.GET("/schedules/:departmentID", h.ListSchedules)
	g.POST("/schedules", h.CreateSchedule)
	g.PUT("/schedules", h.UpdateSchedule)
	g.DELETE("/schedules/:schedulesID", h.DeleteSchedule)

	// ---- Bookings ----
	// Redeem a scanned QR code (first scan wins).
	g.POST("/bookings/verify", h.VerifyBooking)
	// Every booking across one department's slots.
	g.GET("/bookings/:departmentID", h.ListDepartmentBookings)
}
