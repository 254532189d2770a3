package handler // handler package contains customer-facing booking handlers

import (
	"net/http" // http defines status codes
	"strconv"  // strconv converts path params to integers

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository" // repository defines data models
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/utils"      // utils generates QR codes
	"github.com/labstack/echo/v4"                                     // echo provides the web context and JSON helpers
)

// CustomerHandler bundles what customers need to book slots and manage their
// own bookings.
type CustomerHandler struct {
	Bookings BookingStore
}

// NewCustomerHandler constructs a CustomerHandler and panics on a nil store.
func NewCustomerHandler(bookings BookingStore) *CustomerHandler {
	if bookings == nil {
		panic("nil store passed to NewCustomerHandler")
	}
	return &CustomerHandler{Bookings: bookings}
}

// CreateBooking handles POST /v1/bookings.  The slot claim is atomic in the
// repository: when two customers race for the last slot, exactly one wins and
// the other gets 409.  The response carries the QR code the customer later
// presents at the department.
func (h *CustomerHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		ScheduleID uint64 `json:"schedule_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.ScheduleID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "schedule_id is required"})
	}

	b, err := h.Bookings.Create(c.Request().Context(), userID, body.ScheduleID, utils.NewQRCode())
	if err != nil {
		switch err {
		case repository.ErrScheduleNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "schedule not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"message": "schedule is no longer available"})
		default:
			c.Logger().Errorf("create booking: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create booking"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "booking created", "booking": b})
}

// ListMyBookings handles GET /v1/bookings and returns the caller's bookings
// with their slot and department context, newest first.
func (h *CustomerHandler) ListMyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	bookings, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("list my bookings: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bookings fetched", "bookings": bookings})
}

// CancelBooking handles DELETE /v1/bookings/:bookingID.  Only the booking
// owner can cancel, only while the booking is still upcoming; cancelling
// releases the slot for other customers.  A booking that was already verified
// or cancelled answers 409, someone else's booking answers the usual 404.
func (h *CustomerHandler) CancelBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("bookingID"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}
	b, err := h.Bookings.CancelByIDForUser(c.Request().Context(), id, userID)
	if err != nil {
		switch err {
		case repository.ErrBookingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"message": "booking can no longer be cancelled"})
		default:
			c.Logger().Errorf("cancel booking: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cancel failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking cancelled", "booking": b})
}
