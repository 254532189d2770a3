package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/model"
)

// Booking mirrors the `bookings` table.  Each booking is one customer's
// claim on one schedule slot, identified to the outside world by its unique
// QR code.  Status moves UPCOMING -> ATTENDED (verification) or UPCOMING ->
// CANCELLED; both end states are terminal.
type Booking struct {
	ID         uint64              `json:"id"`
	QRCode     string              `json:"qr_code"`
	UserID     uint64              `json:"user_id"`
	ScheduleID uint64              `json:"schedule_id"`
	Status     model.BookingStatus `json:"status"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// BookingDetail is a booking joined with the public fields of the booking
// customer and the slot/department context.  It is what verification and
// listing endpoints return.
type BookingDetail struct {
	ID             uint64              `json:"id"`
	QRCode         string              `json:"qr_code"`
	Status         model.BookingStatus `json:"status"`
	UserID         uint64              `json:"user_id"`
	UserName       string              `json:"user_name"`
	UserEmail      string              `json:"user_email"`
	ScheduleID     uint64              `json:"schedule_id"`
	SlotDate       string              `json:"date"`
	StartTime      string              `json:"start_time"`
	EndTime        string              `json:"end_time"`
	DepartmentID   uint64              `json:"department_id"`
	DepartmentName string              `json:"department_name"`
	DeptType       string              `json:"department_type"`
	CreatedAt      string              `json:"created_at"`
}

// ErrBookingNotFound deliberately conflates "no such booking" with "already
// verified or cancelled" and with "belongs to someone else's department" so
// a scanned QR code never reveals which case occurred.
var ErrBookingNotFound = errors.New("booking not found")

const bookingDetailSelect = `SELECT b.id, b.qr_code, b.status,
       u.id, u.name, u.email,
       s.id, s.slot_date, s.start_time, s.end_time,
       d.id, d.name, d.dept_type,
       b.created_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN schedules s ON s.id = b.schedule_id
JOIN departments d ON d.id = s.department_id`

// BookingRepo provides persistence for bookings and the slot-claiming logic
// that keeps one slot bound to at most one active booking.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create reserves a slot for a customer.  Claiming the slot is expressed as a
// conditional UPDATE (AVAILABLE -> BOOKED) so two concurrent requests for the
// same slot cannot both succeed; the loser sees zero affected rows.  The
// booking insert rides in the same transaction, keeping slot state and
// booking row consistent.  Returns ErrScheduleNotFound when the slot does not
// exist and ErrConflict when it is no longer available.
func (r *BookingRepo) Create(ctx context.Context, userID, scheduleID uint64, qrCode string) (*Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE schedules SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = ?`,
		model.ScheduleBooked, scheduleID, model.ScheduleAvailable)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a missing slot from one that is already taken.
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM schedules WHERE id = ? LIMIT 1`, scheduleID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrConflict
	}

	ins, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (qr_code, user_id, schedule_id, status) VALUES (?, ?, ?, ?)`,
		qrCode, userID, scheduleID, model.BookingUpcoming)
	if err != nil {
		return nil, err
	}
	id, err := ins.LastInsertId()
	if err != nil {
		return nil, err
	}

	b := &Booking{ID: uint64(id)}
	const sel = `SELECT id, qr_code, user_id, schedule_id, status, created_at, updated_at FROM bookings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(
		&b.ID, &b.QRCode, &b.UserID, &b.ScheduleID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

// VerifyByQRCode redeems a QR code on behalf of a company.  The transition is
// a single conditional UPDATE whose predicate includes the current status and
// the ownership join, so a code that was already consumed, never existed or
// belongs to another company's department all fail identically with
// ErrBookingNotFound, and two concurrent scans of the same code can never
// both succeed.  The matching schedule slot is marked ATTENDED in the same
// statement.
func (r *BookingRepo) VerifyByQRCode(ctx context.Context, qrCode string, companyID uint64) (*BookingDetail, error) {
	const q = `UPDATE bookings b
	           JOIN schedules s ON s.id = b.schedule_id
	           JOIN departments d ON d.id = s.department_id
	           SET b.status = ?, b.updated_at = CURRENT_TIMESTAMP,
	               s.status = ?, s.updated_at = CURRENT_TIMESTAMP
	           WHERE b.qr_code = ? AND b.status = ? AND d.company_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		model.BookingAttended, model.ScheduleAttended,
		qrCode, model.BookingUpcoming, companyID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrBookingNotFound
	}

	var det BookingDetail
	const sel = bookingDetailSelect + ` WHERE b.qr_code = ?`
	if err := r.db.QueryRowContext(ctx, sel, qrCode).Scan(
		&det.ID, &det.QRCode, &det.Status,
		&det.UserID, &det.UserName, &det.UserEmail,
		&det.ScheduleID, &det.SlotDate, &det.StartTime, &det.EndTime,
		&det.DepartmentID, &det.DepartmentName, &det.DeptType,
		&det.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &det, nil
}

// ListByUser returns a customer's bookings with their slot context, newest
// first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = bookingDetailSelect + ` WHERE b.user_id = ? ORDER BY b.id DESC`
	return r.listDetails(ctx, q, userID)
}

// ListByDepartmentForCompany returns all bookings across a department's
// slots, restricted to the department's owning company via the join.
func (r *BookingRepo) ListByDepartmentForCompany(ctx context.Context, departmentID, companyID uint64) ([]BookingDetail, error) {
	const q = bookingDetailSelect + ` WHERE d.id = ? AND d.company_id = ? ORDER BY s.slot_date ASC, s.start_time ASC`
	return r.listDetails(ctx, q, departmentID, companyID)
}

func (r *BookingRepo) listDetails(ctx context.Context, q string, args ...any) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BookingDetail
	for rows.Next() {
		var det BookingDetail
		if err := rows.Scan(
			&det.ID, &det.QRCode, &det.Status,
			&det.UserID, &det.UserName, &det.UserEmail,
			&det.ScheduleID, &det.SlotDate, &det.StartTime, &det.EndTime,
			&det.DepartmentID, &det.DepartmentName, &det.DeptType,
			&det.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, det)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelByIDForUser cancels a customer's own upcoming booking and releases
// the slot back to AVAILABLE within one transaction.  The booking update is
// conditional on status UPCOMING, so a booking that was verified or cancelled
// in the meantime fails with ErrConflict rather than silently reverting a
// terminal state.
func (r *BookingRepo) CancelByIDForUser(ctx context.Context, id, userID uint64) (*Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ? AND status = ?`,
		model.BookingCancelled, id, userID, model.BookingUpcoming)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM bookings WHERE id = ? AND user_id = ? LIMIT 1`, id, userID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrConflict // already attended or cancelled
	}

	b := &Booking{}
	const sel = `SELECT id, qr_code, user_id, schedule_id, status, created_at, updated_at FROM bookings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, id).Scan(
		&b.ID, &b.QRCode, &b.UserID, &b.ScheduleID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Free the slot so someone else can book it.
	if _, err := tx.ExecContext(ctx,
		`UPDATE schedules SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = ?`,
		model.ScheduleAvailable, b.ScheduleID, model.ScheduleBooked); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}
