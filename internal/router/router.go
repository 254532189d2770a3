package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/handler"    // handlers implement the business logic
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/middleware" // middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems probe this endpoint to verify
	// the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth,
// while session-bound profile endpoints carry the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Register, login, refresh and logout operate without an existing
	// session; each handler generates or exchanges tokens itself.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the presented refresh token.
	g.POST("/refresh", a.Refresh)
	// Logout invalidates the refresh token from the JSON body, so it does
	// not require JWT authentication.
	g.POST("/logout", a.Logout)

	// Profile endpoints require a valid access token. Both account roles
	// may read and update their own profile.
	me := e.Group("/v1/auth",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("COMPANY", "CUSTOMER"),
	)
	me.GET("/me", a.Me)
	me.PUT("/me", a.UpdateProfile)
}

// RegisterPublic registers unauthenticated browse endpoints. The provided
// PublicHandler returns sanitized data only, so these routes apply no JWT or
// role middleware; callers usually attach the response cache and rate limiter
// as extra middleware instead.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	// Every department across all companies, with the owning company's
	// display name.
	g.GET("/departments/all", p.ListAllDepartments)
	// Only AVAILABLE slots of one department.
	g.GET("/departments/:departmentID/schedules", p.ListDepartmentSlots)
}
