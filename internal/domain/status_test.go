package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		current BookingStatus
		event   BookingEvent
		want    BookingStatus
	}{
		{BookingStatusPending, BookingEventApprove, BookingStatusApproved},
		{BookingStatusPending, BookingEventReject, BookingStatusRejected},
		{BookingStatusPending, BookingEventCancel, BookingStatusCancelled},
		{BookingStatusApproved, BookingEventCancel, BookingStatusCancelled},
		{BookingStatusApproved, BookingEventComplete, BookingStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"_"+string(tt.event), func(t *testing.T) {
			next, err := NextStatus(tt.current, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNextStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		current BookingStatus
		event   BookingEvent
	}{
		{BookingStatusPending, BookingEventComplete},
		{BookingStatusApproved, BookingEventApprove}, // retry of applied event
		{BookingStatusApproved, BookingEventReject},
		{BookingStatusRejected, BookingEventApprove},
		{BookingStatusRejected, BookingEventCancel},
		{BookingStatusCancelled, BookingEventApprove},
		{BookingStatusCancelled, BookingEventCancel},
		{BookingStatusCompleted, BookingEventCancel},
		{BookingStatusCompleted, BookingEventComplete},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"_"+string(tt.event), func(t *testing.T) {
			_, err := NextStatus(tt.current, tt.event)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIllegalTransition)

			var illegal *IllegalTransitionError
			require.ErrorAs(t, err, &illegal)
			assert.Equal(t, tt.current, illegal.State)
			assert.Equal(t, tt.event, illegal.Event)
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusApproved.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
}

func TestBookingStatus_IsActive(t *testing.T) {
	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusApproved.IsActive())
	assert.False(t, BookingStatusRejected.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
}

func TestParseBookingEvent(t *testing.T) {
	for _, s := range []string{"APPROVE", "REJECT", "CANCEL", "COMPLETE"} {
		event, err := ParseBookingEvent(s)
		require.NoError(t, err)
		assert.Equal(t, BookingEvent(s), event)
	}

	_, err := ParseBookingEvent("approve")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseBookingEvent("")
	assert.ErrorIs(t, err, ErrValidation)
}
