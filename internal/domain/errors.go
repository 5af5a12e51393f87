package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidRange         = errors.New("invalid time range")
	ErrInvalidAttendeeCount = errors.New("invalid attendee count")
	ErrInvalidRate          = errors.New("invalid hourly rate")
	ErrVenueUnavailable     = errors.New("venue is not available for booking")
	ErrConflict             = errors.New("time slot conflict")
	ErrUnauthorized         = errors.New("actor is not authorized for this action")
	ErrIllegalTransition    = errors.New("illegal booking transition")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
	ErrValidation = errors.New("validation error")
)

// ErrStaleStatus is returned by storage when a conditional status update
// finds the booking no longer in the expected state; the coordinator turns it
// into IllegalTransitionError against the fresh state.
var ErrStaleStatus = errors.New("booking status changed concurrently")

// ConflictError carries the bookings blocking the requested range so the
// caller can surface them.
type ConflictError struct {
	VenueID    string
	BookingIDs []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflict on venue %s with bookings [%s]",
		e.VenueID, strings.Join(e.BookingIDs, ", "))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// IllegalTransitionError names the current state and the rejected event.
// A retried already-applied transition fails with this error rather than
// silently succeeding.
type IllegalTransitionError struct {
	State BookingStatus
	Event BookingEvent
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: event %s in state %s", e.Event, e.State)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }
