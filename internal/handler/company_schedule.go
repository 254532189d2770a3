package handler // handler package contains company-scoped schedule handlers

import (
	"database/sql" // sentinel errors during schedule updates
	"net/http"     // http defines status codes
	"strconv"      // strconv converts path params to integers
	"strings"      // strings helps with trimming whitespace
	"time"         // time validates date and clock formats

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/model"      // model defines status enums and transitions
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository" // repository defines data models
	"github.com/labstack/echo/v4"                                     // echo provides the web context and JSON helpers
)

const (
	slotDateLayout = "2006-01-02"
	slotTimeLayout = "15:04"
)

// ListSchedules handles GET /v1/company/schedules/:departmentID.  The
// department must belong to the caller before any slots are returned.
func (h *CompanyHandler) ListSchedules(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	departmentID, err := strconv.ParseUint(c.Param("departmentID"), 10, 64)
	if err != nil || departmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid department id"})
	}
	if _, err := h.Departments.GetByIDAndCompany(c.Request().Context(), departmentID, companyID); err != nil {
		if err == repository.ErrDepartmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "department not found"})
		}
		c.Logger().Errorf("list schedules: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to verify department"})
	}
	slots, err := h.Schedules.ListByDepartment(c.Request().Context(), departmentID)
	if err != nil {
		c.Logger().Errorf("list schedules: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load schedules"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "schedules fetched", "schedules": slots})
}

// CreateSchedule handles POST /v1/company/schedules.  All four fields are
// required and the department must belong to the authenticated company.  New
// slots always start AVAILABLE.
func (h *CompanyHandler) CreateSchedule(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		DepartmentID uint64 `json:"department_id"`
		Date         string `json:"date"`
		StartTime    string `json:"start_time"`
		EndTime      string `json:"end_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.DepartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "department_id is required"})
	}
	date := strings.TrimSpace(body.Date)
	start := strings.TrimSpace(body.StartTime)
	end := strings.TrimSpace(body.EndTime)
	if date == "" || start == "" || end == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date, start_time and end_time are required"})
	}
	if _, err := time.Parse(slotDateLayout, date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date format"})
	}
	startClock, err := time.Parse(slotTimeLayout, start)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start_time format"})
	}
	endClock, err := time.Parse(slotTimeLayout, end)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end_time format"})
	}
	if !endClock.After(startClock) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "end_time must be after start_time"})
	}
	if _, err := h.Departments.GetByIDAndCompany(c.Request().Context(), body.DepartmentID, companyID); err != nil {
		if err == repository.ErrDepartmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "department not found"})
		}
		c.Logger().Errorf("create schedule: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to verify department"})
	}

	slot := &repository.Schedule{
		DepartmentID: body.DepartmentID,
		SlotDate:     date,
		StartTime:    start,
		EndTime:      end,
	}
	if err := h.Schedules.Create(c.Request().Context(), slot); err != nil {
		c.Logger().Errorf("create schedule: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create schedule"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "schedule created", "schedule": slot})
}

// UpdateSchedule handles PUT /v1/company/schedules.  Only the fields present
// in the request change; the rest keep their stored values.  The ownership
// check joins through the slot's department and runs again on every call.
// Moving a slot to a different department requires owning the target
// department too.  Status changes must follow the slot transition table.
func (h *CompanyHandler) UpdateSchedule(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		ID           uint64  `json:"id"`
		DepartmentID *uint64 `json:"department_id"`
		Date         *string `json:"date"`
		StartTime    *string `json:"start_time"`
		EndTime      *string `json:"end_time"`
		Status       *string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "id is required"})
	}

	cur, err := h.Schedules.GetByIDAndCompany(c.Request().Context(), body.ID, companyID)
	if err != nil {
		if err == repository.ErrScheduleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "schedule not found"})
		}
		c.Logger().Errorf("update schedule: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load schedule"})
	}

	departmentID := cur.DepartmentID
	if body.DepartmentID != nil && *body.DepartmentID != 0 && *body.DepartmentID != cur.DepartmentID {
		if _, err := h.Departments.GetByIDAndCompany(c.Request().Context(), *body.DepartmentID, companyID); err != nil {
			if err == repository.ErrDepartmentNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "department not found"})
			}
			c.Logger().Errorf("update schedule: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to verify department"})
		}
		departmentID = *body.DepartmentID
	}

	date := cur.SlotDate
	if body.Date != nil && strings.TrimSpace(*body.Date) != "" {
		d := strings.TrimSpace(*body.Date)
		if _, err := time.Parse(slotDateLayout, d); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date format"})
		}
		date = d
	}
	start := cur.StartTime
	if body.StartTime != nil && strings.TrimSpace(*body.StartTime) != "" {
		s := strings.TrimSpace(*body.StartTime)
		if _, err := time.Parse(slotTimeLayout, s); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start_time format"})
		}
		start = s
	}
	end := cur.EndTime
	if body.EndTime != nil && strings.TrimSpace(*body.EndTime) != "" {
		e := strings.TrimSpace(*body.EndTime)
		if _, err := time.Parse(slotTimeLayout, e); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end_time format"})
		}
		end = e
	}
	if start >= end { // zero-padded HH:MM compares correctly as strings
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "end_time must be after start_time"})
	}

	status := cur.Status
	if body.Status != nil {
		next, ok := model.ParseScheduleStatus(*body.Status)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		}
		if !cur.Status.CanTransition(next) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "illegal status transition"})
		}
		status = next
	}

	upd := &repository.Schedule{
		ID:           cur.ID,
		DepartmentID: departmentID,
		SlotDate:     date,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
	}
	if err := h.Schedules.UpdateByIDAndCompany(c.Request().Context(), upd, companyID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "schedule not found"})
		}
		c.Logger().Errorf("update schedule: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	fresh, err := h.Schedules.GetByIDAndCompany(c.Request().Context(), cur.ID, companyID)
	if err != nil {
		c.Logger().Errorf("update schedule reload: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load schedule"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "schedule updated", "schedule": fresh})
}

// DeleteSchedule handles DELETE /v1/company/schedules/:schedulesID.  A slot
// that any booking references is never deleted; the request fails with 409
// and the slot is left untouched.
func (h *CompanyHandler) DeleteSchedule(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("schedulesID"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid schedule id"})
	}
	err = h.Schedules.DeleteByIDAndCompany(c.Request().Context(), id, companyID)
	if err != nil {
		switch err {
		case repository.ErrScheduleNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "schedule not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"message": "cannot delete schedule with existing bookings"})
		default:
			c.Logger().Errorf("delete schedule: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "schedule deleted"})
}
