package handler // handler package contains company-scoped department handlers

import (
	"database/sql" // sentinel errors during updates
	"net/http"     // http defines status codes
	"strconv"      // strconv converts path params to integers
	"strings"      // strings helps with trimming and case folding

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository" // repository defines data models
	"github.com/labstack/echo/v4"                                     // echo provides the web context and JSON helpers
)

// departmentTypes is the closed set accepted for dept_type.
var departmentTypes = map[string]bool{
	"BUSINESS": true,
	"HOSPITAL": true,
}

// ListDepartments handles GET /v1/company/departments and returns every
// department of the authenticated company.
func (h *CompanyHandler) ListDepartments(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	deps, err := h.Departments.ListByCompany(c.Request().Context(), companyID)
	if err != nil {
		c.Logger().Errorf("list departments: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load departments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "departments fetched", "departments": toDepartmentViews(deps)})
}

// GetDepartment handles GET /v1/company/departments/:departmentID.  A
// department owned by another company yields the same 404 as a missing one.
func (h *CompanyHandler) GetDepartment(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("departmentID"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid department id"})
	}
	dep, err := h.Departments.GetByIDAndCompany(c.Request().Context(), id, companyID)
	if err != nil {
		if err == repository.ErrDepartmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "department not found"})
		}
		c.Logger().Errorf("get department: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load department"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "department fetched", "department": toDepartmentView(dep)})
}

// CreateDepartment handles POST /v1/company/departments.
func (h *CompanyHandler) CreateDepartment(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		Name        string  `json:"name"`
		DeptType    string  `json:"type"`
		ChargeCents *uint32 `json:"charge_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name is required"})
	}
	deptType := strings.ToUpper(strings.TrimSpace(body.DeptType))
	if !departmentTypes[deptType] {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid department type"})
	}
	var charge uint32
	if body.ChargeCents != nil {
		charge = *body.ChargeCents
	}
	dep := &repository.Department{
		CompanyID:   companyID,
		Name:        name,
		DeptType:    deptType,
		ChargeCents: charge,
	}
	if err := h.Departments.Create(c.Request().Context(), dep); err != nil {
		c.Logger().Errorf("create department: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create department"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "department created", "department": toDepartmentView(dep)})
}

// UpdateDepartment handles PUT /v1/company/departments.  The id rides in the
// body; absent fields keep their stored values (partial update semantics).
func (h *CompanyHandler) UpdateDepartment(c echo.Context) error {
	companyID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		ID          uint64  `json:"id"`
		Name        *string `json:"name"`
		DeptType    *string `json:"type"`
		ChargeCents *uint32 `json:"charge_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "id is required"})
	}

	// Load the current record; this doubles as the ownership check.
	cur, err := h.Departments.GetByIDAndCompany(c.Request().Context(), body.ID, companyID)
	if err != nil {
		if err == repository.ErrDepartmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "department not found"})
		}
		c.Logger().Errorf("update department: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load department"})
	}

	// Resolve partial input against the stored values.
	name := cur.Name
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		name = strings.TrimSpace(*body.Name)
	}
	deptType := cur.DeptType
	if body.DeptType != nil {
		t := strings.ToUpper(strings.TrimSpace(*body.DeptType))
		if !departmentTypes[t] {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid department type"})
		}
		deptType = t
	}
	charge := cur.ChargeCents
	if body.ChargeCents != nil {
		charge = *body.ChargeCents
	}

	upd := &repository.Department{
		ID:          cur.ID,
		CompanyID:   companyID,
		Name:        name,
		DeptType:    deptType,
		ChargeCents: charge,
	}
	if err := h.Departments.UpdateByIDAndCompany(c.Request().Context(), upd); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "department not found"})
		}
		c.Logger().Errorf("update department: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	fresh, err := h.Departments.GetByIDAndCompany(c.Request().Context(), cur.ID, companyID)
	if err != nil {
		c.Logger().Errorf("update department reload: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load department"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "department updated", "department": toDepartmentView(fresh)})
}

// departmentView is the JSON shape returned to company administrators.
type departmentView struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	DeptType    string `json:"type"`
	ChargeCents uint32 `json:"charge_cents"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toDepartmentView(d *repository.Department) departmentView {
	return departmentView{
		ID:          d.ID,
		Name:        d.Name,
		DeptType:    d.DeptType,
		ChargeCents: d.ChargeCents,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDepartmentViews(deps []*repository.Department) []departmentView {
	out := make([]departmentView, 0, len(deps))
	for _, d := range deps {
		out = append(out, toDepartmentView(d))
	}
	return out
}
