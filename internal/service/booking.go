package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HallBooker/internal/domain"
	"github.com/stpnv0/HallBooker/internal/pricing"
	"github.com/stpnv0/HallBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService coordinates a reservation end to end: it validates the
// request, drives the availability index and the pricing engine, and applies
// lifecycle transitions with authorization checked up front.
type BookingService struct {
	bookingRepo ports.BookingRepo
	venueRepo   ports.VenueRepo
	userRepo    ports.UserRepo
	index       ports.AvailabilityIndex
	pricer      *pricing.Engine
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	userRepo ports.UserRepo,
	index ports.AvailabilityIndex,
	pricer *pricing.Engine,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		userRepo:    userRepo,
		index:       index,
		pricer:      pricer,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// WarmIndex rebuilds the availability index from the stored active bookings.
// Called once at startup before the server accepts requests.
func (s *BookingService) WarmIndex(ctx context.Context) error {
	holds, err := s.bookingRepo.ListActiveHolds(ctx)
	if err != nil {
		return fmt.Errorf("list active holds: %w", err)
	}
	s.index.Restore(holds)

	s.logger.Info("availability index restored",
		logger.Int("holds", len(holds)),
	)
	return nil
}

func (s *BookingService) Create(ctx context.Context, actor domain.Actor, input domain.CreateBookingInput) (*domain.Booking, error) {
	r, err := domain.NewTimeRange(input.Start, input.End)
	if err != nil {
		return nil, err
	}
	if r.Start.Before(s.now()) {
		return nil, fmt.Errorf("%w: start time is in the past", domain.ErrInvalidRange)
	}

	venue, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	if input.Attendees <= 0 {
		return nil, fmt.Errorf("%w: attendees must be positive", domain.ErrInvalidAttendeeCount)
	}
	if input.Attendees > venue.Capacity {
		return nil, fmt.Errorf("%w: %d attendees exceed capacity %d",
			domain.ErrInvalidAttendeeCount, input.Attendees, venue.Capacity)
	}

	if !venue.Available {
		return nil, domain.ErrVenueUnavailable
	}

	bookingID := uuid.New().String()

	// Atomic check-and-insert: the per-venue hold is the exclusion scope
	// that keeps two overlapping requests from both succeeding.
	if err = s.index.InsertHold(venue.ID, bookingID, r); err != nil {
		return nil, err
	}

	quote, err := s.pricer.Quote(venue.HourlyRate, r)
	if err != nil {
		s.index.Release(venue.ID, bookingID)
		return nil, err
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:          bookingID,
		VenueID:     venue.ID,
		RequesterID: actor.ID,
		Range:       r,
		Attendees:   input.Attendees,
		EventName:   input.EventName,
		EventType:   input.EventType,
		Remarks:     input.Remarks,
		TotalAmount: quote.Rounded().Total,
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Hold and booking row commit together: if persistence fails the hold
	// is rolled back and the storage error surfaces unchanged.
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		s.index.Release(venue.ID, bookingID)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", venue.ID),
		logger.String("requester_id", actor.ID),
		logger.String("range", r.String()),
		logger.String("total", booking.TotalAmount.StringFixed(2)),
	)

	go s.notify(context.WithoutCancel(ctx), booking, venue, s.notifier.NotifyBookingCreated)

	return booking, nil
}

// Decide applies an owner/admin APPROVE or REJECT.
func (s *BookingService) Decide(ctx context.Context, actor domain.Actor, bookingID string, event domain.BookingEvent) (*domain.Booking, error) {
	if event != domain.BookingEventApprove && event != domain.BookingEventReject {
		return nil, fmt.Errorf("%w: decision must be APPROVE or REJECT", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	venue, err := s.venueRepo.GetByID(ctx, booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	// Authorization comes before the transition table is ever consulted.
	if !actor.IsAdmin() && actor.ID != venue.OwnerID {
		return nil, domain.ErrUnauthorized
	}

	if err = s.applyTransition(ctx, booking, event); err != nil {
		return nil, err
	}

	switch event {
	case domain.BookingEventApprove:
		s.index.Confirm(venue.ID, booking.ID)
		go s.notify(context.WithoutCancel(ctx), booking, venue, s.notifier.NotifyBookingApproved)
	case domain.BookingEventReject:
		s.index.Release(venue.ID, booking.ID)
		go s.notify(context.WithoutCancel(ctx), booking, venue, s.notifier.NotifyBookingRejected)
	}

	s.logger.Info("booking decided",
		logger.String("booking_id", booking.ID),
		logger.String("event", string(event)),
		logger.String("status", string(booking.Status)),
	)

	return booking, nil
}

// Cancel withdraws a PENDING booking or releases an APPROVED one. Only the
// requester or an admin may cancel.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !actor.IsAdmin() && actor.ID != booking.RequesterID {
		return nil, domain.ErrUnauthorized
	}

	if err = s.applyTransition(ctx, booking, domain.BookingEventCancel); err != nil {
		return nil, err
	}

	s.index.Release(booking.VenueID, booking.ID)

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", booking.VenueID),
	)

	if venue, verr := s.venueRepo.GetByID(ctx, booking.VenueID); verr == nil {
		go s.notify(context.WithoutCancel(ctx), booking, venue, s.notifier.NotifyBookingCancelled)
	}

	return booking, nil
}

// CompleteElapsed moves APPROVED bookings whose end instant has passed to
// COMPLETED. Time-triggered, invoked by the scheduler.
func (s *BookingService) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteElapsed(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	for _, b := range completed {
		s.index.Deactivate(b.VenueID, b.ID)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed bookings completed",
			logger.Int("count", len(completed)),
		)

		go s.notifyCompleted(context.WithoutCancel(ctx), completed)
	}

	return completed, nil
}

// Availability answers a free/busy query for a venue and range.
func (s *BookingService) Availability(ctx context.Context, venueID string, start, end time.Time) (*domain.AvailabilityReport, error) {
	r, err := domain.NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	if _, err = s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	conflicts := s.index.FindConflicts(venueID, r)
	return &domain.AvailabilityReport{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

func (s *BookingService) ListByUser(ctx context.Context, actor domain.Actor, userID string) ([]*domain.Booking, error) {
	if !actor.IsAdmin() && actor.ID != userID {
		return nil, domain.ErrUnauthorized
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByVenue(ctx context.Context, actor domain.Actor, venueID string) ([]*domain.Booking, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if !actor.IsAdmin() && actor.ID != venue.OwnerID {
		return nil, domain.ErrUnauthorized
	}
	return s.bookingRepo.ListByVenue(ctx, venueID)
}

// applyTransition resolves the table and applies the conditional update,
// mutating the booking in place on success. A transition that raced another
// surfaces as IllegalTransition against the fresh state, never as a silent
// double-apply.
func (s *BookingService) applyTransition(ctx context.Context, booking *domain.Booking, event domain.BookingEvent) error {
	next, err := domain.NextStatus(booking.Status, event)
	if err != nil {
		return err
	}

	err = s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, next)
	if errors.Is(err, domain.ErrStaleStatus) {
		fresh, gerr := s.bookingRepo.GetByID(ctx, booking.ID)
		if gerr != nil {
			return fmt.Errorf("reload booking: %w", gerr)
		}
		return &domain.IllegalTransitionError{State: fresh.Status, Event: event}
	}
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	booking.Status = next
	booking.UpdatedAt = s.now().UTC()
	return nil
}

func (s *BookingService) notify(
	ctx context.Context,
	booking *domain.Booking,
	venue *domain.Venue,
	send func(context.Context, *domain.User, *domain.Venue, *domain.Booking),
) {
	user, err := s.userRepo.GetByID(ctx, booking.RequesterID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.RequesterID),
			logger.String("error", err.Error()),
		)
		return
	}
	send(ctx, user, venue, booking)
}

func (s *BookingService) notifyCompleted(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		venue, err := s.venueRepo.GetByID(ctx, b.VenueID)
		if err != nil {
			s.logger.Error("failed to get venue for completion notification",
				logger.String("venue_id", b.VenueID),
			)
			continue
		}
		s.notify(ctx, b, venue, s.notifier.NotifyBookingCompleted)
	}
}
