package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/model"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository"
)

func TestVerifyBookingSuccessPublishesEvent(t *testing.T) {
	det := &repository.BookingDetail{
		ID:             21,
		QRCode:         "abc123",
		Status:         model.BookingAttended,
		UserID:         5,
		UserName:       "Dana",
		DepartmentID:   3,
		DepartmentName: "Cardiology",
	}
	bookings := &mockBookingStore{
		verify: func(_ context.Context, qrCode string, companyID uint64) (*repository.BookingDetail, error) {
			assert.Equal(t, "abc123", qrCode)
			assert.Equal(t, uint64(7), companyID)
			return det, nil
		},
	}
	pub := &mockPublisher{}
	h := NewCompanyHandler(&mockDepartmentStore{}, &mockScheduleStore{}, bookings, nil)
	h.Events = pub

	c, rec := newJSONContext(http.MethodPost, "/v1/company/bookings/verify", `{"qr_code":"abc123"}`, 7)
	require.NoError(t, h.VerifyBooking(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Booking repository.BookingDetail `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(21), resp.Booking.ID)
	assert.Equal(t, model.BookingAttended, resp.Booking.Status)

	require.Len(t, pub.published, 1)
	assert.Equal(t, det, pub.published[0])
}

func TestVerifyBookingConsumedCodeIs404(t *testing.T) {
	// An already verified code, an unknown code and a foreign company's code
	// all surface as the same sentinel from the repository.
	bookings := &mockBookingStore{
		verify: func(_ context.Context, _ string, _ uint64) (*repository.BookingDetail, error) {
			return nil, repository.ErrBookingNotFound
		},
	}
	pub := &mockPublisher{}
	h := NewCompanyHandler(&mockDepartmentStore{}, &mockScheduleStore{}, bookings, nil)
	h.Events = pub

	c, rec := newJSONContext(http.MethodPost, "/v1/company/bookings/verify", `{"qr_code":"abc123"}`, 7)
	require.NoError(t, h.VerifyBooking(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, pub.published)
}

func TestVerifyBookingMissingCode(t *testing.T) {
	h := NewCompanyHandler(&mockDepartmentStore{}, &mockScheduleStore{}, &mockBookingStore{}, nil)

	c, rec := newJSONContext(http.MethodPost, "/v1/company/bookings/verify", `{"qr_code":"  "}`, 7)
	require.NoError(t, h.VerifyBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDepartmentBookings(t *testing.T) {
	deps := &mockDepartmentStore{
		getByIDAndCompany: func(_ context.Context, _, _ uint64) (*repository.Department, error) {
			return &repository.Department{ID: 3, CompanyID: 7}, nil
		},
	}
	bookings := &mockBookingStore{
		listByDept: func(_ context.Context, departmentID, companyID uint64) ([]repository.BookingDetail, error) {
			assert.Equal(t, uint64(3), departmentID)
			assert.Equal(t, uint64(7), companyID)
			return []repository.BookingDetail{{ID: 21}, {ID: 22}}, nil
		},
	}
	h := NewCompanyHandler(deps, &mockScheduleStore{}, bookings, nil)

	c, rec := newJSONContext(http.MethodGet, "/v1/company/bookings/3", "", 7)
	c.SetParamNames("departmentID")
	c.SetParamValues("3")
	require.NoError(t, h.ListDepartmentBookings(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Bookings []repository.BookingDetail `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)
}
