package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HallBooker/internal/domain"
	"github.com/stpnv0/HallBooker/internal/pricing"
	"github.com/stpnv0/HallBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testPricer() *pricing.Engine {
	return pricing.NewEngine(
		decimal.RequireFromString("0.05"),
		decimal.RequireFromString("0.18"),
	)
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	venueRepo   *mocks.MockVenueRepo
	userRepo    *mocks.MockUserRepo
	index       *mocks.MockAvailabilityIndex
	notifier    *mocks.MockBookingNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		venueRepo:   mocks.NewMockVenueRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		index:       mocks.NewMockAvailabilityIndex(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(f.bookingRepo, f.venueRepo, f.userRepo, f.index, testPricer(), f.notifier, newTestLogger(t))
	f.svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	}
	return f
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:         "v1",
		Name:       "Grand Hall",
		Capacity:   200,
		HourlyRate: decimal.NewFromInt(1000),
		Available:  true,
		OwnerID:    "owner1",
	}
}

func testInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		VenueID:   "v1",
		Start:     time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		End:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Attendees: 50,
		EventName: "Wedding",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "u1", Role: domain.RoleUser}
	venue := testVenue()
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.index.EXPECT().InsertHold("v1", mock.Anything, mock.Anything).Return(nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, venue, mock.Anything).Return()

	booking, err := f.svc.Create(context.Background(), actor, testInput())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "v1", booking.VenueID)
	assert.Equal(t, "u1", booking.RequesterID)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "2460.00", booking.TotalAmount.StringFixed(2))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_InvalidRange(t *testing.T) {
	f := newBookingFixture(t)

	input := testInput()
	input.End = input.Start

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestBookingService_Create_StartInPast(t *testing.T) {
	f := newBookingFixture(t)

	input := testInput()
	input.Start = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	input.End = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestBookingService_Create_VenueNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(nil, domain.ErrVenueNotFound)

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, testInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBookingService_Create_AttendeesExceedCapacity(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	input := testInput()
	input.Attendees = 500

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAttendeeCount)
}

func TestBookingService_Create_NonPositiveAttendees(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	input := testInput()
	input.Attendees = 0

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAttendeeCount)
}

func TestBookingService_Create_VenueUnavailable(t *testing.T) {
	f := newBookingFixture(t)

	venue := testVenue()
	venue.Available = false
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, testInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueUnavailable)
}

func TestBookingService_Create_SlotConflict(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.index.EXPECT().InsertHold("v1", mock.Anything, mock.Anything).
		Return(&domain.ConflictError{VenueID: "v1", BookingIDs: []string{"existing"}})

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, testInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"existing"}, conflict.BookingIDs)
}

func TestBookingService_Create_RepoFailureReleasesHold(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.index.EXPECT().InsertHold("v1", mock.Anything, mock.Anything).Return(nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.index.EXPECT().Release("v1", mock.Anything).Return()

	_, err := f.svc.Create(context.Background(), domain.Actor{ID: "u1"}, testInput())

	require.Error(t, err)
}

func TestBookingService_Decide_ApproveByOwner(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}
	venue := testVenue()
	user := &domain.User{ID: "u1"}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusPending}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusApproved).Return(nil)
	f.index.EXPECT().Confirm("v1", "b1").Return()
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingApproved(mock.Anything, user, venue, booking).Return()

	result, err := f.svc.Decide(context.Background(), actor, "b1", domain.BookingEventApprove)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Decide_RejectReleasesHold(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "admin1", Role: domain.RoleAdmin}
	venue := testVenue()
	user := &domain.User{ID: "u1"}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusPending}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusRejected).Return(nil)
	f.index.EXPECT().Release("v1", "b1").Return()
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, user, venue, booking).Return()

	result, err := f.svc.Decide(context.Background(), actor, "b1", domain.BookingEventReject)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Decide_OnlyApproveOrReject(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Decide(context.Background(), domain.Actor{ID: "owner1"}, "b1", domain.BookingEventCancel)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Decide_UnauthorizedBeforeTransition(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "stranger", Role: domain.RoleUser}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusPending}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	_, err := f.svc.Decide(context.Background(), actor, "b1", domain.BookingEventApprove)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Decide_DoubleApproveFails(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusApproved}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	_, err := f.svc.Decide(context.Background(), actor, "b1", domain.BookingEventApprove)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	var illegal *domain.IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, domain.BookingStatusApproved, illegal.State)
	assert.Equal(t, domain.BookingEventApprove, illegal.Event)
}

func TestBookingService_Decide_RacedTransitionSurfacesFreshState(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusPending}
	fresh := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusCancelled}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Once()
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusApproved).
		Return(domain.ErrStaleStatus)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(fresh, nil).Once()

	_, err := f.svc.Decide(context.Background(), actor, "b1", domain.BookingEventApprove)

	require.Error(t, err)

	var illegal *domain.IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, domain.BookingStatusCancelled, illegal.State)
}

func TestBookingService_Cancel_ByRequester(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "u1", Role: domain.RoleUser}
	venue := testVenue()
	user := &domain.User{ID: "u1"}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusApproved}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved, domain.BookingStatusCancelled).Return(nil)
	f.index.EXPECT().Release("v1", "b1").Return()
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, venue, booking).Return()

	result, err := f.svc.Cancel(context.Background(), actor, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Unauthorized(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "stranger", Role: domain.RoleUser}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusPending}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Cancel(context.Background(), actor, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Cancel_TerminalBookingFails(t *testing.T) {
	f := newBookingFixture(t)
	actor := domain.Actor{ID: "u1", Role: domain.RoleUser}
	booking := &domain.Booking{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusCompleted}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Cancel(context.Background(), actor, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestBookingService_CompleteElapsed_Success(t *testing.T) {
	f := newBookingFixture(t)
	venue := testVenue()
	user := &domain.User{ID: "u1"}

	completed := []*domain.Booking{
		{ID: "b1", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusCompleted},
		{ID: "b2", VenueID: "v1", RequesterID: "u1", Status: domain.BookingStatusCompleted},
	}

	f.bookingRepo.EXPECT().CompleteElapsed(mock.Anything, mock.Anything).Return(completed, nil)
	f.index.EXPECT().Deactivate("v1", "b1").Return()
	f.index.EXPECT().Deactivate("v1", "b2").Return()
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingCompleted(mock.Anything, user, venue, mock.Anything).Return()

	result, err := f.svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_CompleteElapsed_NoneElapsed(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().CompleteElapsed(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := f.svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_Availability(t *testing.T) {
	f := newBookingFixture(t)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.index.EXPECT().FindConflicts("v1", mock.Anything).Return([]string{"b1"})

	report, err := f.svc.Availability(context.Background(), "v1", start, end)

	require.NoError(t, err)
	assert.False(t, report.Available)
	assert.Equal(t, []string{"b1"}, report.Conflicts)
}

func TestBookingService_Availability_FreeSlot(t *testing.T) {
	f := newBookingFixture(t)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.index.EXPECT().FindConflicts("v1", mock.Anything).Return(nil)

	report, err := f.svc.Availability(context.Background(), "v1", start, start.Add(time.Hour))

	require.NoError(t, err)
	assert.True(t, report.Available)
	assert.Empty(t, report.Conflicts)
}

func TestBookingService_ListByUser_SelfOnly(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{{ID: "b1", RequesterID: "u1"}}
	f.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := f.svc.ListByUser(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleUser}, "u1")
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = f.svc.ListByUser(context.Background(), domain.Actor{ID: "u2", Role: domain.RoleUser}, "u1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_ListByVenue_OwnerOrAdmin(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	f.bookingRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Booking{{ID: "b1"}}, nil)

	result, err := f.svc.ListByVenue(context.Background(), domain.Actor{ID: "owner1", Role: domain.RoleHallOwner}, "v1")
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_ListByVenue_Unauthorized(t *testing.T) {
	f := newBookingFixture(t)

	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	_, err := f.svc.ListByVenue(context.Background(), domain.Actor{ID: "stranger", Role: domain.RoleUser}, "v1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_WarmIndex(t *testing.T) {
	f := newBookingFixture(t)

	holds := []domain.Hold{
		{VenueID: "v1", BookingID: "b1", Confirmed: true},
	}
	f.bookingRepo.EXPECT().ListActiveHolds(mock.Anything).Return(holds, nil)
	f.index.EXPECT().Restore(holds).Return()

	require.NoError(t, f.svc.WarmIndex(context.Background()))
}

func TestBookingService_WarmIndex_RepoError(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().ListActiveHolds(mock.Anything).Return(nil, errors.New("db down"))

	require.Error(t, f.svc.WarmIndex(context.Background()))
}
