package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HallBooker/internal/domain"
	"github.com/stpnv0/HallBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type venueFixture struct {
	venueRepo   *mocks.MockVenueRepo
	bookingRepo *mocks.MockBookingRepo
	userRepo    *mocks.MockUserRepo
	index       *mocks.MockAvailabilityIndex
	notifier    *mocks.MockBookingNotifier
	svc         *VenueService
}

func newVenueFixture(t *testing.T) *venueFixture {
	t.Helper()
	f := &venueFixture{
		venueRepo:   mocks.NewMockVenueRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		index:       mocks.NewMockAvailabilityIndex(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewVenueService(f.venueRepo, f.bookingRepo, f.userRepo, f.index, f.notifier, newTestLogger(t))
	return f
}

func TestVenueService_Create_Success(t *testing.T) {
	f := newVenueFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}

	f.venueRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := f.svc.Create(context.Background(), actor, domain.CreateVenueInput{
		Name:       "Grand Hall",
		Capacity:   200,
		HourlyRate: decimal.NewFromInt(1000),
		Facilities: []domain.FacilityTag{domain.FacilityWifi, domain.FacilityStage},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, venue.ID)
	assert.Equal(t, "owner1", venue.OwnerID)
	assert.True(t, venue.Available)
}

func TestVenueService_Create_PlainUserForbidden(t *testing.T) {
	f := newVenueFixture(t)

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleUser}, domain.CreateVenueInput{
		Name:     "Grand Hall",
		Capacity: 200,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVenueService_Create_Validation(t *testing.T) {
	f := newVenueFixture(t)
	actor := domain.Actor{ID: "admin1", Role: domain.RoleAdmin}

	_, err := f.svc.Create(context.Background(), actor, domain.CreateVenueInput{Capacity: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Create(context.Background(), actor, domain.CreateVenueInput{Name: "Hall"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Create(context.Background(), actor, domain.CreateVenueInput{
		Name:       "Hall",
		Capacity:   10,
		HourlyRate: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestVenueService_Update_PatchesFields(t *testing.T) {
	f := newVenueFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}

	existing := testVenue()
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	f.venueRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	name := "Renovated Hall"
	capacity := 300
	venue, err := f.svc.Update(context.Background(), actor, "v1", domain.UpdateVenueInput{
		Name:     &name,
		Capacity: &capacity,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renovated Hall", venue.Name)
	assert.Equal(t, 300, venue.Capacity)
	assert.Equal(t, "1000", venue.HourlyRate.String()) // untouched
}

func TestVenueService_Update_NotOwner(t *testing.T) {
	f := newVenueFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	name := "Hijacked"
	_, err := f.svc.Update(context.Background(), domain.Actor{ID: "stranger", Role: domain.RoleHallOwner}, "v1", domain.UpdateVenueInput{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVenueService_Delete_CancelsFutureBookings(t *testing.T) {
	f := newVenueFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}
	venue := testVenue()
	user := &domain.User{ID: "u1"}

	cancelled := []*domain.Booking{
		{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusCancelled},
	}

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.bookingRepo.EXPECT().CancelActiveByVenue(mock.Anything, "v1").Return(cancelled, nil)
	f.index.EXPECT().Release("v1", "b1").Return()
	f.venueRepo.EXPECT().Delete(mock.Anything, "v1").Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, venue, cancelled[0]).Return()

	err := f.svc.Delete(context.Background(), actor, "v1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestVenueService_Delete_CancelsInProgressBooking(t *testing.T) {
	f := newVenueFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}
	venue := testVenue()
	user := &domain.User{ID: "u1"}

	// Started an hour ago, still running at deletion time.
	now := time.Now().UTC()
	slot, err := domain.NewTimeRange(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	cancelled := []*domain.Booking{
		{ID: "b1", VenueID: "v1", RequesterID: "u1", Range: slot, Status: domain.BookingStatusCancelled},
	}

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.bookingRepo.EXPECT().CancelActiveByVenue(mock.Anything, "v1").Return(cancelled, nil)
	f.index.EXPECT().Release("v1", "b1").Return()
	f.venueRepo.EXPECT().Delete(mock.Anything, "v1").Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, venue, cancelled[0]).Return()

	require.NoError(t, f.svc.Delete(context.Background(), actor, "v1"))
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestVenueService_Delete_NoActiveBookings(t *testing.T) {
	f := newVenueFixture(t)
	actor := domain.Actor{ID: "admin1", Role: domain.RoleAdmin}

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.bookingRepo.EXPECT().CancelActiveByVenue(mock.Anything, "v1").Return(nil, nil)
	f.venueRepo.EXPECT().Delete(mock.Anything, "v1").Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), actor, "v1"))
}

func TestVenueService_Delete_Unauthorized(t *testing.T) {
	f := newVenueFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	err := f.svc.Delete(context.Background(), domain.Actor{ID: "stranger", Role: domain.RoleUser}, "v1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVenueService_List(t *testing.T) {
	f := newVenueFixture(t)

	f.venueRepo.EXPECT().List(mock.Anything, true).Return([]*domain.Venue{testVenue()}, nil)

	venues, err := f.svc.List(context.Background(), true)

	require.NoError(t, err)
	assert.Len(t, venues, 1)
}
