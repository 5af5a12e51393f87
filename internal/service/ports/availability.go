package ports

import "github.com/stpnv0/HallBooker/internal/domain"

// AvailabilityIndex is the per-venue calendar of holds. InsertHold is atomic
// with respect to concurrent callers for the same venue.
type AvailabilityIndex interface {
	FindConflicts(venueID string, r domain.TimeRange) []string
	InsertHold(venueID, bookingID string, r domain.TimeRange) error
	Release(venueID, bookingID string)
	Confirm(venueID, bookingID string)
	Deactivate(venueID, bookingID string)
	Restore(holds []domain.Hold)
}
