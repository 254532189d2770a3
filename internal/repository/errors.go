// Package repository defines error values shared across repositories.  The
// sentinels let handlers distinguish failure scenarios without string
// matching: ErrConflict signals that an operation would violate dependent
// state (deleting a schedule that still has bookings, claiming a slot that is
// no longer available), while the per-entity not-found sentinels deliberately
// cover both "does not exist" and "not owned by the caller" so that foreign
// records are never revealed.
package repository

import "errors"

// ErrConflict is returned when a mutation cannot proceed because of
// conflicting state.  Handlers translate it into HTTP 409.
var ErrConflict = errors.New("conflict")
