package builders

import (
	"testing"
	"time"

	"homestay/constants"

	"github.com/stretchr/testify/assert"
)

func TestBookingBuilder(t *testing.T) {
	checkIn := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	booking := NewBookingBuilder().
		WithUser(7).
		WithRoom(3, 12).
		WithStatus(constants.BookingStatusConfirmed).
		WithGuestInfo("Nguyễn Văn A", "0912345678", "a@example.com").
		WithDates(checkIn, checkOut).
		WithGuests(2).
		WithPrice(500000, 250000, 2250000).
		Build()

	assert.Equal(t, uint(7), booking.UserID)
	assert.Equal(t, uint(3), booking.RoomID)
	assert.Equal(t, uint(12), booking.PropertyID)
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "Nguyễn Văn A", booking.GuestName)
	assert.Equal(t, "0912345678", booking.GuestPhone)
	assert.Equal(t, "a@example.com", booking.GuestEmail)
	assert.Equal(t, checkIn, booking.CheckInDate)
	assert.Equal(t, checkOut, booking.CheckOutDate)
	assert.Equal(t, 2, booking.NumberOfGuests)
	assert.Equal(t, 500000, booking.Price)
	assert.Equal(t, 250000.0, booking.DiscountPrice)
	assert.Equal(t, 2250000.0, booking.TotalPrice)
}

func TestBookingBuilderDefaults(t *testing.T) {
	booking := NewBookingBuilder().Build()

	assert.Equal(t, constants.BookingStatusPending, booking.Status)
	assert.Zero(t, booking.UserID)
	assert.Zero(t, booking.TotalPrice)
}
