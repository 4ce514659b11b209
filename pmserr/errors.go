// Package pmserr defines the error taxonomy shared by services and
// controllers. Every failure from a mutating operation is one of these; the
// HTTP layer maps them to status codes in a single place.
package pmserr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// NotFoundError: a referenced room/reservation/guest/item does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError: an operation was attempted against a reservation or
// room in the wrong lifecycle state. No partial effect.
type InvalidStateError struct {
	Op      string
	Current string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in state %q", e.Op, e.Current)
}

func InvalidState(op, current string) error {
	return &InvalidStateError{Op: op, Current: current}
}

// OverlapConflictError: a new booking collides with an existing active
// booking on the same room. Carries enough context for the front desk to
// tell the caller who is blocking.
type OverlapConflictError struct {
	RoomNumber string
	GuestName  string
	CheckIn    time.Time
	CheckOut   *time.Time
}

func (e *OverlapConflictError) Error() string {
	out := "open-ended"
	if e.CheckOut != nil {
		out = e.CheckOut.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("room %s already booked by %s from %s to %s",
		e.RoomNumber, e.GuestName, e.CheckIn.Format("2006-01-02 15:04"), out)
}

// RoomConflictError: the room still physically holds a different active
// reservation (guards double check-in).
type RoomConflictError struct {
	RoomNumber string
	GuestName  string
}

func (e *RoomConflictError) Error() string {
	return fmt.Sprintf("room %s is still occupied by %s", e.RoomNumber, e.GuestName)
}

// ValidationError: malformed or missing required input, rejected before any
// write.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// HTTPStatus maps a service error to the response code the controllers use.
// Unrecognized errors are internal.
func HTTPStatus(err error) int {
	var nf *NotFoundError
	var is *InvalidStateError
	var oc *OverlapConflictError
	var rc *RoomConflictError
	var ve *ValidationError

	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &is), errors.As(err, &oc), errors.As(err, &rc):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
