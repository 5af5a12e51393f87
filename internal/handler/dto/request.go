package dto

import "github.com/shopspring/decimal"

type CreateVenueRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	ImageURL    string          `json:"image_url"`
	Capacity    int             `json:"capacity" binding:"required,gt=0"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Facilities  []string        `json:"facilities"`
}

type UpdateVenueRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Location    *string          `json:"location"`
	ImageURL    *string          `json:"image_url"`
	Capacity    *int             `json:"capacity"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Facilities  []string         `json:"facilities"`
	Available   *bool            `json:"available"`
}

type CreateBookingRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Attendees int    `json:"attendees" binding:"required,gt=0"`
	EventName string `json:"event_name"`
	EventType string `json:"event_type"`
	Remarks   string `json:"remarks"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
