package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Venue struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	ImageURL    string          `json:"image_url"`
	Capacity    int             `json:"capacity"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Facilities  []FacilityTag   `json:"facilities"`
	Available   bool            `json:"available"`
	OwnerID     string          `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateVenueInput struct {
	Name        string
	Description string
	Location    string
	ImageURL    string
	Capacity    int
	HourlyRate  decimal.Decimal
	Facilities  []FacilityTag
}

// UpdateVenueInput carries only the fields the caller wants changed.
type UpdateVenueInput struct {
	Name        *string
	Description *string
	Location    *string
	ImageURL    *string
	Capacity    *int
	HourlyRate  *decimal.Decimal
	Facilities  []FacilityTag
	Available   *bool
}
