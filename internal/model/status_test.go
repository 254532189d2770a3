package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScheduleStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ScheduleStatus
		ok   bool
	}{
		{"AVAILABLE", ScheduleAvailable, true},
		{"booked", ScheduleBooked, true},
		{"  attended ", ScheduleAttended, true},
		{"Cancelled", ScheduleCancelled, true},
		{"", "", false},
		{"FREE", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseScheduleStatus(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestScheduleStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ScheduleStatus
		allowed  bool
	}{
		{ScheduleAvailable, ScheduleBooked, true},
		{ScheduleAvailable, ScheduleCancelled, true},
		{ScheduleAvailable, ScheduleAttended, false},
		{ScheduleBooked, ScheduleAvailable, true},
		{ScheduleBooked, ScheduleAttended, true},
		{ScheduleBooked, ScheduleCancelled, true},
		{ScheduleAttended, ScheduleAvailable, false},
		{ScheduleAttended, ScheduleCancelled, false},
		{ScheduleCancelled, ScheduleAvailable, false},
		// No-op transitions are always allowed.
		{ScheduleAttended, ScheduleAttended, true},
		{ScheduleAvailable, ScheduleAvailable, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{BookingUpcoming, BookingAttended, true},
		{BookingUpcoming, BookingCancelled, true},
		{BookingAttended, BookingUpcoming, false},
		{BookingAttended, BookingCancelled, false},
		{BookingCancelled, BookingUpcoming, false},
		{BookingCancelled, BookingAttended, false},
		{BookingCancelled, BookingCancelled, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingUpcoming.Terminal())
	assert.True(t, BookingAttended.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}
