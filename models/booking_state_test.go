package models

import (
	"testing"

	"homestay/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStateTransitions(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusPending}
	state := GetBookingState(booking.Status)

	require.NoError(t, state.Confirm(booking))
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)

	booking.Status = constants.BookingStatusPending
	require.NoError(t, state.CancelByRenter(booking))
	assert.Equal(t, constants.BookingStatusCancelledByRenter, booking.Status)

	booking.Status = constants.BookingStatusPending
	require.NoError(t, state.CancelByOwner(booking))
	assert.Equal(t, constants.BookingStatusCancelledByOwner, booking.Status)

	booking.Status = constants.BookingStatusPending
	require.NoError(t, state.Fail(booking))
	assert.Equal(t, constants.BookingStatusFailed, booking.Status)

	booking.Status = constants.BookingStatusPending
	assert.Error(t, state.Complete(booking))
	assert.Equal(t, constants.BookingStatusPending, booking.Status)
}

func TestConfirmedStateTransitions(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusConfirmed}
	state := GetBookingState(booking.Status)

	assert.Error(t, state.Confirm(booking))
	assert.Error(t, state.Fail(booking))

	require.NoError(t, state.Complete(booking))
	assert.Equal(t, constants.BookingStatusCompleted, booking.Status)

	booking.Status = constants.BookingStatusConfirmed
	require.NoError(t, state.CancelByRenter(booking))
	assert.Equal(t, constants.BookingStatusCancelledByRenter, booking.Status)

	booking.Status = constants.BookingStatusConfirmed
	require.NoError(t, state.CancelByOwner(booking))
	assert.Equal(t, constants.BookingStatusCancelledByOwner, booking.Status)
}

func TestTerminalStates(t *testing.T) {
	terminalStatuses := []int{
		constants.BookingStatusCompleted,
		constants.BookingStatusCancelledByRenter,
		constants.BookingStatusCancelledByOwner,
		constants.BookingStatusFailed,
	}

	for _, status := range terminalStatuses {
		booking := &Booking{Status: status}
		state := GetBookingState(status)

		assert.Error(t, state.Confirm(booking))
		assert.Error(t, state.CancelByRenter(booking))
		assert.Error(t, state.CancelByOwner(booking))
		assert.Error(t, state.Complete(booking))
		assert.Error(t, state.Fail(booking))
		assert.Equal(t, status, booking.Status)
	}
}

func TestGetBookingStateUnknownStatus(t *testing.T) {
	state := GetBookingState(99)
	assert.IsType(t, &PendingState{}, state)
}
