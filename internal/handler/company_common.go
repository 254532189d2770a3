package handler // handler defines http handlers

import (
	"context" // context types appear in the store interfaces
	"errors"  // sentinel value used in getUserID
	"strconv" // strconv converts context values to numeric types

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository" // repository holds the data access layer
	"github.com/labstack/echo/v4"                                     // echo defines request context types
)

// DepartmentStore is the slice of the department repository the handlers
// need.  *repository.DepartmentRepo satisfies it; tests substitute mocks.
type DepartmentStore interface {
	Create(ctx context.Context, d *repository.Department) error
	GetByIDAndCompany(ctx context.Context, id, companyID uint64) (*repository.Department, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]*repository.Department, error)
	ListPublic(ctx context.Context) ([]*repository.PublicDepartment, error)
	UpdateByIDAndCompany(ctx context.Context, d *repository.Department) error
}

// ScheduleStore is implemented by *repository.ScheduleRepo.
type ScheduleStore interface {
	Create(ctx context.Context, s *repository.Schedule) error
	GetByIDAndCompany(ctx context.Context, id, companyID uint64) (*repository.Schedule, error)
	ListByDepartment(ctx context.Context, departmentID uint64) ([]repository.Schedule, error)
	ListAvailableByDepartment(ctx context.Context, departmentID uint64) ([]repository.Schedule, error)
	UpdateByIDAndCompany(ctx context.Context, s *repository.Schedule, companyID uint64) error
	DeleteByIDAndCompany(ctx context.Context, id, companyID uint64) error
}

// BookingStore is implemented by *repository.BookingRepo.
type BookingStore interface {
	Create(ctx context.Context, userID, scheduleID uint64, qrCode string) (*repository.Booking, error)
	VerifyByQRCode(ctx context.Context, qrCode string, companyID uint64) (*repository.BookingDetail, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
	ListByDepartmentForCompany(ctx context.Context, departmentID, companyID uint64) ([]repository.BookingDetail, error)
	CancelByIDForUser(ctx context.Context, id, userID uint64) (*repository.Booking, error)
}

// VerificationPublisher emits an event after a QR code is redeemed.
// *service.BookingEvents satisfies it; a nil publisher means events are off.
type VerificationPublisher interface {
	PublishBookingVerified(ctx context.Context, det *repository.BookingDetail, companyID uint64)
}

// CompanyHandler bundles the stores company administrators use to manage
// their departments, schedule slots and booking verification.
type CompanyHandler struct {
	Departments DepartmentStore
	Schedules   ScheduleStore
	Bookings    BookingStore
	Users       *repository.UserRepo
	Events      VerificationPublisher
}

// NewCompanyHandler constructs a CompanyHandler and panics if any dependency
// is nil.
func NewCompanyHandler(departments DepartmentStore, schedules ScheduleStore, bookings BookingStore, users *repository.UserRepo) *CompanyHandler {
	if departments == nil || schedules == nil || bookings == nil {
		panic("nil store passed to NewCompanyHandler")
	}
	return &CompanyHandler{
		Departments: departments,
		Schedules:   schedules,
		Bookings:    bookings,
		Users:       users,
	}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWT claims decode numbers as float64, so several representations are
// accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
