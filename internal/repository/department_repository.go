// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Department model and its repository.  A Department is
// a bookable service unit (a clinic, a counter, an office) owned by exactly
// one company account; schedules reference departments, never the company
// directly.
package repository

import (
	"context"      // context allows passing deadlines and cancellation to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define sentinel values
)

// Department represents a row in the `departments` table.  CompanyID
// references the owning users.id.  CreatedAt/UpdatedAt carry the DB
// timestamps as strings, matching how the rows are stored.
type Department struct {
	ID          uint64 // departments.id
	CompanyID   uint64 // departments.company_id (users.id of the owner)
	Name        string // departments.name
	DeptType    string // departments.dept_type (BUSINESS, HOSPITAL, ...)
	ChargeCents uint32 // departments.charge_cents
	CreatedAt   string // departments.created_at
	UpdatedAt   string // departments.updated_at
}

// PublicDepartment is the sanitized projection served to unauthenticated
// browsers.  Owner timestamps are withheld; the company name is joined in so
// guests can tell venues apart.
type PublicDepartment struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	DeptType    string `json:"type"`
	ChargeCents uint32 `json:"charge_cents"`
	CompanyID   uint64 `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// ErrDepartmentNotFound covers both "no such department" and "owned by a
// different company"; callers must not be able to tell the two apart.
var ErrDepartmentNotFound = errors.New("department not found")

// DepartmentRepo encapsulates all database queries related to departments.
type DepartmentRepo struct {
	db *sql.DB
}

// NewDepartmentRepo constructs a DepartmentRepo with the provided DB handle.
func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

// Create inserts a new department.  On success the ID field is populated and
// a follow-up SELECT fills the default timestamp columns so callers receive
// a fully populated record.
func (r *DepartmentRepo) Create(ctx context.Context, d *Department) error {
	const qInsert = "INSERT INTO departments (company_id, name, dept_type, charge_cents) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, d.CompanyID, d.Name, d.DeptType, d.ChargeCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)

	const qSelect = "SELECT company_id, name, dept_type, charge_cents, created_at, updated_at FROM departments WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, d.ID).
		Scan(&d.CompanyID, &d.Name, &d.DeptType, &d.ChargeCents, &d.CreatedAt, &d.UpdatedAt)
}

// GetByIDAndCompany fetches a department by id but only if it belongs to the
// given company.  A missing or foreign row both return ErrDepartmentNotFound.
func (r *DepartmentRepo) GetByIDAndCompany(ctx context.Context, id, companyID uint64) (*Department, error) {
	const q = "SELECT id, company_id, name, dept_type, charge_cents, created_at, updated_at FROM departments WHERE id = ? AND company_id = ?"
	var d Department
	if err := r.db.QueryRowContext(ctx, q, id, companyID).
		Scan(&d.ID, &d.CompanyID, &d.Name, &d.DeptType, &d.ChargeCents, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByCompany returns all departments for a company ordered by id.
func (r *DepartmentRepo) ListByCompany(ctx context.Context, companyID uint64) ([]*Department, error) {
	const q = `SELECT id, company_id, name, dept_type, charge_cents, created_at, updated_at
	           FROM departments WHERE company_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Department
	for rows.Next() {
		d := new(Department)
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.DeptType, &d.ChargeCents, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPublic returns the cross-company department list for the public browse
// endpoint.  Only sanitized fields are selected.
func (r *DepartmentRepo) ListPublic(ctx context.Context) ([]*PublicDepartment, error) {
	const q = `SELECT d.id, d.name, d.dept_type, d.charge_cents, u.id, u.name
	           FROM departments d
	           JOIN users u ON u.id = d.company_id
	           ORDER BY d.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*PublicDepartment
	for rows.Next() {
		d := new(PublicDepartment)
		if err := rows.Scan(&d.ID, &d.Name, &d.DeptType, &d.ChargeCents, &d.CompanyID, &d.CompanyName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByIDAndCompany writes name, type and charge for a department owned by
// the given company.  The handler resolves partial input against the current
// record first, so all three columns are always set.  The ownership predicate
// is part of the UPDATE itself; when zero rows are affected a follow-up
// existence probe distinguishes "not found / not owned" (sql.ErrNoRows) from
// an update that changed nothing.
func (r *DepartmentRepo) UpdateByIDAndCompany(ctx context.Context, d *Department) error {
	const q = `UPDATE departments
	           SET name = ?, dept_type = ?, charge_cents = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND company_id = ?`
	res, err := r.db.ExecContext(ctx, q, d.Name, d.DeptType, d.ChargeCents, d.ID, d.CompanyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	const qExists = `SELECT 1 FROM departments WHERE id = ? AND company_id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, d.ID, d.CompanyID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return err
	}
	return nil // row exists, values were already identical
}
