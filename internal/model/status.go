package model

import "strings"

// ScheduleStatus enumerates the lifecycle of a bookable time slot.  A slot
// starts AVAILABLE, becomes BOOKED when a customer claims it, ATTENDED once
// the booking's QR code is verified and CANCELLED when either side backs out.
type ScheduleStatus string

const (
	ScheduleAvailable ScheduleStatus = "AVAILABLE"
	ScheduleBooked    ScheduleStatus = "BOOKED"
	ScheduleAttended  ScheduleStatus = "ATTENDED"
	ScheduleCancelled ScheduleStatus = "CANCELLED"
)

// scheduleTransitions is the closed transition table for schedule slots.
// ATTENDED and CANCELLED are terminal.
var scheduleTransitions = map[ScheduleStatus][]ScheduleStatus{
	ScheduleAvailable: {ScheduleBooked, ScheduleCancelled},
	ScheduleBooked:    {ScheduleAvailable, ScheduleAttended, ScheduleCancelled},
	ScheduleAttended:  {},
	ScheduleCancelled: {},
}

// ParseScheduleStatus normalizes raw input to a ScheduleStatus.  The second
// return value is false when the input names no known status.
func ParseScheduleStatus(raw string) (ScheduleStatus, bool) {
	s := ScheduleStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case ScheduleAvailable, ScheduleBooked, ScheduleAttended, ScheduleCancelled:
		return s, true
	}
	return "", false
}

// CanTransition reports whether a schedule slot may move from one status to
// another.  A no-op transition (same status) is always permitted.
func (s ScheduleStatus) CanTransition(to ScheduleStatus) bool {
	if s == to {
		return true
	}
	for _, t := range scheduleTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// BookingStatus enumerates the lifecycle of a booking.  Transitions are
// one-way: UPCOMING -> ATTENDED (verification) or UPCOMING -> CANCELLED.
// Nothing leaves ATTENDED or CANCELLED.
type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "UPCOMING"
	BookingAttended  BookingStatus = "ATTENDED"
	BookingCancelled BookingStatus = "CANCELLED"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingUpcoming:  {BookingAttended, BookingCancelled},
	BookingAttended:  {},
	BookingCancelled: {},
}

// ParseBookingStatus normalizes raw input to a BookingStatus.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case BookingUpcoming, BookingAttended, BookingCancelled:
		return s, true
	}
	return "", false
}

// CanTransition reports whether a booking may move to the given status.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	if s == to {
		return true
	}
	for _, t := range bookingTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves the status.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}
