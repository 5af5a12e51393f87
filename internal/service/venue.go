package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HallBooker/internal/domain"
	"github.com/stpnv0/HallBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type VenueService struct {
	venueRepo   ports.VenueRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	index       ports.AvailabilityIndex
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewVenueService(
	venueRepo ports.VenueRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	index ports.AvailabilityIndex,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *VenueService {
	return &VenueService{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		index:       index,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *VenueService) Create(ctx context.Context, actor domain.Actor, input domain.CreateVenueInput) (*domain.Venue, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleHallOwner {
		return nil, domain.ErrUnauthorized
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must be non-negative", domain.ErrInvalidRate)
	}

	now := s.now().UTC()
	venue := &domain.Venue{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Capacity:    input.Capacity,
		HourlyRate:  input.HourlyRate,
		Facilities:  input.Facilities,
		Available:   true,
		OwnerID:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.logger.Info("venue created",
		logger.String("venue_id", venue.ID),
		logger.String("owner_id", venue.OwnerID),
	)

	return venue, nil
}

func (s *VenueService) Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateVenueInput) (*domain.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	if !actor.IsAdmin() && actor.ID != venue.OwnerID {
		return nil, domain.ErrUnauthorized
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		venue.Name = *input.Name
	}
	if input.Description != nil {
		venue.Description = *input.Description
	}
	if input.Location != nil {
		venue.Location = *input.Location
	}
	if input.ImageURL != nil {
		venue.ImageURL = *input.ImageURL
	}
	if input.Capacity != nil {
		if *input.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
		}
		venue.Capacity = *input.Capacity
	}
	if input.HourlyRate != nil {
		if input.HourlyRate.IsNegative() {
			return nil, fmt.Errorf("%w: rate must be non-negative", domain.ErrInvalidRate)
		}
		venue.HourlyRate = *input.HourlyRate
	}
	if input.Facilities != nil {
		venue.Facilities = input.Facilities
	}
	if input.Available != nil {
		venue.Available = *input.Available
	}
	venue.UpdatedAt = s.now().UTC()

	if err = s.venueRepo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	return venue, nil
}

// Delete retires a venue. Every active booking, in-progress ones included,
// is cancelled, its hold released, and the requester notified. Booking rows
// are kept for history.
func (s *VenueService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get venue: %w", err)
	}

	if !actor.IsAdmin() && actor.ID != venue.OwnerID {
		return domain.ErrUnauthorized
	}

	cancelled, err := s.bookingRepo.CancelActiveByVenue(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel venue bookings: %w", err)
	}
	for _, b := range cancelled {
		s.index.Release(id, b.ID)
	}

	if err = s.venueRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	s.logger.Info("venue deleted",
		logger.String("venue_id", id),
		logger.Int("cancelled_bookings", len(cancelled)),
	)

	if len(cancelled) > 0 {
		go s.notifyCancelled(context.WithoutCancel(ctx), venue, cancelled)
	}

	return nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context, onlyAvailable bool) ([]*domain.Venue, error) {
	return s.venueRepo.List(ctx, onlyAvailable)
}

func (s *VenueService) notifyCancelled(ctx context.Context, venue *domain.Venue, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.RequesterID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", b.RequesterID),
			)
			continue
		}
		s.notifier.NotifyBookingCancelled(ctx, user, venue, b)
	}
}
