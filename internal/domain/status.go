package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// ActiveStatuses are the statuses whose bookings hold their time slot.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

type BookingEvent string

const (
	BookingEventApprove  BookingEvent = "APPROVE"
	BookingEventReject   BookingEvent = "REJECT"
	BookingEventCancel   BookingEvent = "CANCEL"
	BookingEventComplete BookingEvent = "COMPLETE"
)

// transitions is the single source of truth for the booking lifecycle.
// REJECTED, CANCELLED and COMPLETED are terminal.
var transitions = map[BookingStatus]map[BookingEvent]BookingStatus{
	BookingStatusPending: {
		BookingEventApprove: BookingStatusApproved,
		BookingEventReject:  BookingStatusRejected,
		BookingEventCancel:  BookingStatusCancelled,
	},
	BookingStatusApproved: {
		BookingEventCancel:   BookingStatusCancelled,
		BookingEventComplete: BookingStatusCompleted,
	},
}

// NextStatus resolves the transition table. Any pair outside the table,
// including a retry of an already-applied event, fails with
// IllegalTransitionError.
func NextStatus(current BookingStatus, event BookingEvent) (BookingStatus, error) {
	next, ok := transitions[current][event]
	if !ok {
		return "", &IllegalTransitionError{State: current, Event: event}
	}
	return next, nil
}

func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}

func ParseBookingEvent(s string) (BookingEvent, error) {
	switch BookingEvent(s) {
	case BookingEventApprove, BookingEventReject, BookingEventCancel, BookingEventComplete:
		return BookingEvent(s), nil
	}
	return "", ErrValidation
}
