package ports

import (
	"context"
	"time"

	"github.com/stpnv0/HallBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus applies the transition only if the booking is still in
	// the from status; otherwise it returns domain.ErrStaleStatus.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	CompleteElapsed(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	CancelActiveByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	ListActiveHolds(ctx context.Context) ([]domain.Hold, error)
}
