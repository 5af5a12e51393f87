package dto

import (
	"time"

	"github.com/stpnv0/HallBooker/internal/domain"
)

type VenueResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	ImageURL    string   `json:"image_url"`
	Capacity    int      `json:"capacity"`
	HourlyRate  string   `json:"hourly_rate"`
	Facilities  []string `json:"facilities"`
	Available   bool     `json:"available"`
	OwnerID     string   `json:"owner_id"`
	CreatedAt   string   `json:"created_at"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	VenueID     string `json:"venue_id"`
	RequesterID string `json:"requester_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Attendees   int    `json:"attendees"`
	EventName   string `json:"event_name,omitempty"`
	EventType   string `json:"event_type,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool     `json:"available"`
	Conflicts []string `json:"conflicts"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error     string   `json:"error"`
	Conflicts []string `json:"conflicts,omitempty"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Location:    v.Location,
		ImageURL:    v.ImageURL,
		Capacity:    v.Capacity,
		HourlyRate:  v.HourlyRate.StringFixed(2),
		Facilities:  domain.FacilityStrings(v.Facilities),
		Available:   v.Available,
		OwnerID:     v.OwnerID,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		VenueID:     b.VenueID,
		RequesterID: b.RequesterID,
		StartTime:   b.Range.Start.Format(time.RFC3339),
		EndTime:     b.Range.End.Format(time.RFC3339),
		Attendees:   b.Attendees,
		EventName:   b.EventName,
		EventType:   b.EventType,
		Remarks:     b.Remarks,
		TotalAmount: b.TotalAmount.StringFixed(2),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(r *domain.AvailabilityReport) AvailabilityResponse {
	conflicts := r.Conflicts
	if conflicts == nil {
		conflicts = []string{}
	}
	return AvailabilityResponse{
		Available: r.Available,
		Conflicts: conflicts,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
