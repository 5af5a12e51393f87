package ports

import (
	"context"

	"github.com/stpnv0/HallBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking)
	NotifyBookingApproved(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking)
	NotifyBookingRejected(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking)
	NotifyBookingCompleted(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking)
}
