package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is a half-open [Start, End) interval. Immutable once built.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() {
		return TimeRange{}, fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
// A range ending exactly when another starts does not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Hours returns the duration as an exact fraction of hours (1.5 for 90m).
func (r TimeRange) Hours() decimal.Decimal {
	seconds := int64(r.End.Sub(r.Start) / time.Second)
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(3600))
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
}
