package handler

// Function-field mocks for the store interfaces so handler tests run without
// a database.  Each test assigns only the methods it expects to be called;
// an unassigned method panics, which surfaces unexpected calls immediately.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository"
)

type mockDepartmentStore struct {
	create            func(ctx context.Context, d *repository.Department) error
	getByIDAndCompany func(ctx context.Context, id, companyID uint64) (*repository.Department, error)
	listByCompany     func(ctx context.Context, companyID uint64) ([]*repository.Department, error)
	listPublic        func(ctx context.Context) ([]*repository.PublicDepartment, error)
	update            func(ctx context.Context, d *repository.Department) error
}

func (m *mockDepartmentStore) Create(ctx context.Context, d *repository.Department) error {
	return m.create(ctx, d)
}

func (m *mockDepartmentStore) GetByIDAndCompany(ctx context.Context, id, companyID uint64) (*repository.Department, error) {
	return m.getByIDAndCompany(ctx, id, companyID)
}

func (m *mockDepartmentStore) ListByCompany(ctx context.Context, companyID uint64) ([]*repository.Department, error) {
	return m.listByCompany(ctx, companyID)
}

func (m *mockDepartmentStore) ListPublic(ctx context.Context) ([]*repository.PublicDepartment, error) {
	return m.listPublic(ctx)
}

func (m *mockDepartmentStore) UpdateByIDAndCompany(ctx context.Context, d *repository.Department) error {
	return m.update(ctx, d)
}

type mockScheduleStore struct {
	create            func(ctx context.Context, s *repository.Schedule) error
	getByIDAndCompany func(ctx context.Context, id, companyID uint64) (*repository.Schedule, error)
	listByDepartment  func(ctx context.Context, departmentID uint64) ([]repository.Schedule, error)
	listAvailable     func(ctx context.Context, departmentID uint64) ([]repository.Schedule, error)
	update            func(ctx context.Context, s *repository.Schedule, companyID uint64) error
	delete            func(ctx context.Context, id, companyID uint64) error
}

func (m *mockScheduleStore) Create(ctx context.Context, s *repository.Schedule) error {
	return m.create(ctx, s)
}

func (m *mockScheduleStore) GetByIDAndCompany(ctx context.Context, id, companyID uint64) (*repository.Schedule, error) {
	return m.getByIDAndCompany(ctx, id, companyID)
}

func (m *mockScheduleStore) ListByDepartment(ctx context.Context, departmentID uint64) ([]repository.Schedule, error) {
	return m.listByDepartment(ctx, departmentID)
}

func (m *mockScheduleStore) ListAvailableByDepartment(ctx context.Context, departmentID uint64) ([]repository.Schedule, error) {
	return m.listAvailable(ctx, departmentID)
}

func (m *mockScheduleStore) UpdateByIDAndCompany(ctx context.Context, s *repository.Schedule, companyID uint64) error {
	return m.update(ctx, s, companyID)
}

func (m *mockScheduleStore) DeleteByIDAndCompany(ctx context.Context, id, companyID uint64) error {
	return m.delete(ctx, id, companyID)
}

type mockBookingStore struct {
	create         func(ctx context.Context, userID, scheduleID uint64, qrCode string) (*repository.Booking, error)
	verify         func(ctx context.Context, qrCode string, companyID uint64) (*repository.BookingDetail, error)
	listByUser     func(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
	listByDept     func(ctx context.Context, departmentID, companyID uint64) ([]repository.BookingDetail, error)
	cancelByIDUser func(ctx context.Context, id, userID uint64) (*repository.Booking, error)
}

func (m *mockBookingStore) Create(ctx context.Context, userID, scheduleID uint64, qrCode string) (*repository.Booking, error) {
	return m.create(ctx, userID, scheduleID, qrCode)
}

func (m *mockBookingStore) VerifyByQRCode(ctx context.Context, qrCode string, companyID uint64) (*repository.BookingDetail, error) {
	return m.verify(ctx, qrCode, companyID)
}

func (m *mockBookingStore) ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error) {
	return m.listByUser(ctx, userID)
}

func (m *mockBookingStore) ListByDepartmentForCompany(ctx context.Context, departmentID, companyID uint64) ([]repository.BookingDetail, error) {
	return m.listByDept(ctx, departmentID, companyID)
}

func (m *mockBookingStore) CancelByIDForUser(ctx context.Context, id, userID uint64) (*repository.Booking, error) {
	return m.cancelByIDUser(ctx, id, userID)
}

type mockPublisher struct {
	published []*repository.BookingDetail
}

func (m *mockPublisher) PublishBookingVerified(_ context.Context, det *repository.BookingDetail, _ uint64) {
	m.published = append(m.published, det)
}

// newJSONContext builds an echo.Context carrying a JSON body and an
// authenticated user id, mirroring what the JWT middleware sets.
func newJSONContext(method, target, body string, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}
