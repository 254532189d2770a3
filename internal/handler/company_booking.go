package handler // handler package contains company-scoped booking handlers

import (
	"net/http" // http defines status codes
	"strconv"  // strconv converts path params to integers
	"strings"  // strings trims the submitted QR code

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository" // repository defines data models
	"github.com/labstack/echo/v4"                                     // echo provides the web context and JSON helpers
)

// VerifyBooking handles POST /v1/company/bookings/verify.  Redeeming a QR
// code is first-scan-wins: the repository consumes the code atomically, so a
// second scan, an unknown code and a code from another company's department
// all return the same 404.  On success the booking detail goes back to the
// operator and an event is published for downstream consumers.
func (h *CompanyHandler) VerifyBooking(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		QRCode string `json:"qr_code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	qr := strings.TrimSpace(body.QRCode)
	if qr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "qr_code is required"})
	}

	det, err := h.Bookings.VerifyByQRCode(c.Request().Context(), qr, companyID)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		c.Logger().Errorf("verify booking: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "verification failed"})
	}

	if h.Events != nil {
		h.Events.PublishBookingVerified(c.Request().Context(), det, companyID)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking verified", "booking": det})
}

// ListDepartmentBookings handles GET /v1/company/bookings/:departmentID and
// returns every booking across the department's slots.  The ownership check
// rides in the repository join, so a foreign department simply lists nothing;
// the explicit department probe keeps the 404 contract for missing ones.
func (h *CompanyHandler) ListDepartmentBookings(c echo.Context) error {
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
		c.Logger().Errorf("list department bookings: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to verify department"})
	}
	bookings, err := h.Bookings.ListByDepartmentForCompany(c.Request().Context(), departmentID, companyID)
	if err != nil {
		c.Logger().Errorf("list department bookings: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bookings fetched", "bookings": bookings})
}
