package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID          string          `json:"id"`
	VenueID     string          `json:"venue_id"`
	RequesterID string          `json:"requester_id"`
	Range       TimeRange       `json:"range"`
	Attendees   int             `json:"attendees"`
	EventName   string          `json:"event_name"`
	EventType   string          `json:"event_type"`
	Remarks     string          `json:"remarks"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      BookingStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateBookingInput struct {
	VenueID   string
	Start     time.Time
	End       time.Time
	Attendees int
	EventName string
	EventType string
	Remarks   string
}

// Hold is an availability-index entry: the slice of a venue's calendar a
// PENDING or APPROVED booking blocks.
type Hold struct {
	VenueID   string
	BookingID string
	Range     TimeRange
	Confirmed bool
}

// AvailabilityReport answers a free/busy query; Conflicts lists the blocking
// booking IDs when the slot is taken.
type AvailabilityReport struct {
	Available bool     `json:"available"`
	Conflicts []string `json:"conflicts"`
}
