package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository"
)

func newDepartmentHandler(deps DepartmentStore) *CompanyHandler {
	return NewCompanyHandler(deps, &mockScheduleStore{}, &mockBookingStore{}, nil)
}

func TestCreateDepartmentSuccess(t *testing.T) {
	deps := &mockDepartmentStore{
		create: func(_ context.Context, d *repository.Department) error {
			assert.Equal(t, uint64(7), d.CompanyID)
			assert.Equal(t, "Cardiology", d.Name)
			assert.Equal(t, "HOSPITAL", d.DeptType)
			assert.Equal(t, uint32(2500), d.ChargeCents)
			d.ID = 3
			return nil
		},
	}
	h := newDepartmentHandler(deps)

	body := `{"name":"Cardiology","type":"hospital","charge_cents":2500}`
	c, rec := newJSONContext(http.MethodPost, "/v1/company/departments", body, 7)
	require.NoError(t, h.CreateDepartment(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Department departmentView `json:"department"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(3), resp.Department.ID)
	assert.Equal(t, "HOSPITAL", resp.Department.DeptType)
}

func TestCreateDepartmentInvalidType(t *testing.T) {
	h := newDepartmentHandler(&mockDepartmentStore{})

	body := `{"name":"Cardiology","type":"CLINIC"}`
	c, rec := newJSONContext(http.MethodPost, "/v1/company/departments", body, 7)
	require.NoError(t, h.CreateDepartment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDepartmentMissingName(t *testing.T) {
	h := newDepartmentHandler(&mockDepartmentStore{})

	c, rec := newJSONContext(http.MethodPost, "/v1/company/departments", `{"type":"BUSINESS"}`, 7)
	require.NoError(t, h.CreateDepartment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDepartmentForeignIs404(t *testing.T) {
	deps := &mockDepartmentStore{
		getByIDAndCompany: func(_ context.Context, id, companyID uint64) (*repository.Department, error) {
			assert.Equal(t, uint64(3), id)
			assert.Equal(t, uint64(7), companyID)
			return nil, repository.ErrDepartmentNotFound
		},
	}
	h := newDepartmentHandler(deps)

	c, rec := newJSONContext(http.MethodGet, "/v1/company/departments/3", "", 7)
	c.SetParamNames("departmentID")
	c.SetParamValues("3")
	require.NoError(t, h.GetDepartment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateDepartmentPartialFields(t *testing.T) {
	stored := repository.Department{
		ID: 3, CompanyID: 7, Name: "Cardiology", DeptType: "HOSPITAL", ChargeCents: 2500,
	}
	var written *repository.Department
	deps := &mockDepartmentStore{
		getByIDAndCompany: func(_ context.Context, _, _ uint64) (*repository.Department, error) {
			cp := stored
			return &cp, nil
		},
		update: func(_ context.Context, d *repository.Department) error {
			written = d
			return nil
		},
	}
	h := newDepartmentHandler(deps)

	// Only the charge changes; name and type keep their stored values.
	c, rec := newJSONContext(http.MethodPut, "/v1/company/departments", `{"id":3,"charge_cents":3000}`, 7)
	require.NoError(t, h.UpdateDepartment(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, written)
	assert.Equal(t, "Cardiology", written.Name)
	assert.Equal(t, "HOSPITAL", written.DeptType)
	assert.Equal(t, uint32(3000), written.ChargeCents)
}

func TestListDepartments(t *testing.T) {
	deps := &mockDepartmentStore{
		listByCompany: func(_ context.Context, companyID uint64) ([]*repository.Department, error) {
			assert.Equal(t, uint64(7), companyID)
			return []*repository.Department{
				{ID: 3, Name: "Cardiology"},
				{ID: 4, Name: "Front Desk"},
			}, nil
		},
	}
	h := newDepartmentHandler(deps)

	c, rec := newJSONContext(http.MethodGet, "/v1/company/departments", "", 7)
	require.NoError(t, h.ListDepartments(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Departments []departmentView `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Departments, 2)
}
