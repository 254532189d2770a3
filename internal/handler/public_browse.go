package handler // handler package contains unauthenticated browse handlers

import (
	"net/http" // http defines status codes
	"strconv"  // strconv converts path params to integers

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers
)

// PublicHandler serves the unauthenticated browse surface customers use
// before logging in.  Responses never include company account details beyond
// the company's display name.
type PublicHandler struct {
	Departments DepartmentStore
	Schedules   ScheduleStore
}

// NewPublicHandler constructs a PublicHandler and panics on nil stores.
func NewPublicHandler(departments DepartmentStore, schedules ScheduleStore) *PublicHandler {
	if departments == nil || schedules == nil {
		panic("nil store passed to NewPublicHandler")
	}
	return &PublicHandler{Departments: departments, Schedules: schedules}
}

// ListAllDepartments handles GET /v1/departments/all.  These responses sit
// behind the Redis response cache, so repeated browses skip the database.
func (h *PublicHandler) ListAllDepartments(c echo.Context) error {
	deps, err := h.Departments.ListPublic(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list public departments: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load departments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "departments fetched", "departments": deps})
}

// ListDepartmentSlots handles GET /v1/departments/:departmentID/schedules and
// returns only AVAILABLE slots.  Booked, attended and cancelled slots never
// appear on the public surface.
func (h *PublicHandler) ListDepartmentSlots(c echo.Context) error {
	departmentID, err := strconv.ParseUint(c.Param("departmentID"), 10, 64)
	if err != nil || departmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid department id"})
	}
	slots, err := h.Schedules.ListAvailableByDepartment(c.Request().Context(), departmentID)
	if err != nil {
		c.Logger().Errorf("list department slots: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load schedules"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "schedules fetched", "schedules": slots})
}
