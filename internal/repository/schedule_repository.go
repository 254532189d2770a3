// Package repository contains data access logic for schedule slots.  A
// Schedule is a bookable time window offered by a department.  Ownership is
// never stored on the schedule itself: every owner-scoped query joins through
// departments to the company account, so the check is re-evaluated on each
// call rather than cached.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/model"
)

// Schedule represents a row in the `schedules` table.
// NOTE: SlotDate uses "2006-01-02" and the time bounds use "15:04", exactly
// as stored.
type Schedule struct {
	ID           uint64               `json:"id"`
	DepartmentID uint64               `json:"department_id"`
	SlotDate     string               `json:"date"`       // schedules.slot_date ("YYYY-MM-DD")
	StartTime    string               `json:"start_time"` // schedules.start_time ("HH:MM")
	EndTime      string               `json:"end_time"`   // schedules.end_time ("HH:MM")
	Status       model.ScheduleStatus `json:"status"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

// ErrScheduleNotFound covers both a missing schedule and one whose department
// belongs to a different company.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepo manages persistence for schedule slots.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo constructs a ScheduleRepo with the given DB handle.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// Create inserts a new slot and assigns the generated ID back to the struct.
// Status is written explicitly (new slots always start AVAILABLE) and the
// inserted row is read back so timestamp defaults are populated.
func (r *ScheduleRepo) Create(ctx context.Context, s *Schedule) error {
	s.Status = model.ScheduleAvailable
	const q = `INSERT INTO schedules (department_id, slot_date, start_time, end_time, status) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.DepartmentID, s.SlotDate, s.StartTime, s.EndTime, s.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const sel = `SELECT id, department_id, slot_date, start_time, end_time, status, created_at, updated_at
	             FROM schedules WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).Scan(
		&s.ID, &s.DepartmentID, &s.SlotDate, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}

// GetByIDAndCompany retrieves a slot only when its department belongs to the
// given company.  The ownership check is a join, not an id comparison on the
// schedule row.
func (r *ScheduleRepo) GetByIDAndCompany(ctx context.Context, id, companyID uint64) (*Schedule, error) {
	const q = `SELECT s.id, s.department_id, s.slot_date, s.start_time, s.end_time, s.status, s.created_at, s.updated_at
	           FROM schedules s
	           JOIN departments d ON d.id = s.department_id
	           WHERE s.id = ? AND d.company_id = ?`
	var s Schedule
	err := r.db.QueryRowContext(ctx, q, id, companyID).Scan(
		&s.ID, &s.DepartmentID, &s.SlotDate, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByDepartment returns all slots of a department ordered by date and
// start time.  Ownership of the department is checked by the caller.
func (r *ScheduleRepo) ListByDepartment(ctx context.Context, departmentID uint64) ([]Schedule, error) {
	const q = `SELECT id, department_id, slot_date, start_time, end_time, status, created_at, updated_at
	           FROM schedules
	           WHERE department_id = ?
	           ORDER BY slot_date ASC, start_time ASC`
	return r.list(ctx, q, departmentID)
}

// ListAvailableByDepartment returns only slots still open for booking.  Used
// by the public browse endpoint.
func (r *ScheduleRepo) ListAvailableByDepartment(ctx context.Context, departmentID uint64) ([]Schedule, error) {
	const q = `SELECT id, department_id, slot_date, start_time, end_time, status, created_at, updated_at
	           FROM schedules
	           WHERE department_id = ? AND status = 'AVAILABLE'
	           ORDER BY slot_date ASC, start_time ASC`
	return r.list(ctx, q, departmentID)
}

func (r *ScheduleRepo) list(ctx context.Context, q string, args ...any) ([]Schedule, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(
			&s.ID, &s.DepartmentID, &s.SlotDate, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateByIDAndCompany writes a slot's attributes when its department belongs
// to the given company.  The handler resolves partial input beforehand, so
// every column is set.  The join keeps the ownership re-check inside the
// UPDATE itself.  Zero affected rows either means the slot is invisible to
// this company (sql.ErrNoRows after the probe) or that nothing changed, which
// is not an error.
func (r *ScheduleRepo) UpdateByIDAndCompany(ctx context.Context, s *Schedule, companyID uint64) error {
	const q = `UPDATE schedules sc
	           JOIN departments d ON d.id = sc.department_id
	           SET sc.department_id = ?, sc.slot_date = ?, sc.start_time = ?, sc.end_time = ?, sc.status = ?, sc.updated_at = CURRENT_TIMESTAMP
	           WHERE sc.id = ? AND d.company_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		s.DepartmentID, s.SlotDate, s.StartTime, s.EndTime, s.Status,
		s.ID, companyID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	const qExists = `SELECT 1
	                 FROM schedules sc
	                 JOIN departments d ON d.id = sc.department_id
	                 WHERE sc.id = ? AND d.company_id = ?
	                 LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, s.ID, companyID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows // slot doesn't exist or belongs to another company
		}
		return err
	}
	return nil // values were already identical
}

// DeleteByIDAndCompany removes a slot provided it belongs to one of the
// company's departments and no booking references it.  The ownership check,
// the booking count and the delete run inside one transaction so the guard
// cannot be raced by a concurrent booking insert.  A slot with at least one
// booking is never deleted, regardless of the bookings' statuses.
func (r *ScheduleRepo) DeleteByIDAndCompany(ctx context.Context, id, companyID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM schedules sc JOIN departments d ON d.id = sc.department_id
		 WHERE sc.id = ? AND d.company_id = ? LIMIT 1`, id, companyID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrScheduleNotFound
		}
		return err
	}

	var bookings int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE schedule_id = ?`, id,
	).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		err = ErrConflict
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	return err
}
