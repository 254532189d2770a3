// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingVerifiedEvent is published when a QR code is redeemed at a
// department. It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingVerifiedEvent struct {
	BookingID      uint64 `json:"booking_id"`
	QRCode         string `json:"qr_code"`
	UserID         uint64 `json:"user_id"`
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	ScheduleID     uint64 `json:"schedule_id"`
	SlotDate       string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	DepartmentID   uint64 `json:"department_id"`
	DepartmentName string `json:"department_name"`
	DeptType       string `json:"department_type"`
	CompanyID      uint64 `json:"company_id"`
	VerifiedAt     string `json:"verified_at"`
}
