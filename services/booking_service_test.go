package services

import (
	"testing"
	"time"

	"homestay/models"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestHasOverlap(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: day(10), CheckOutDate: day(15)},
	}

	// trùng hoàn toàn
	assert.True(t, HasOverlap(bookings, day(10), day(15)))

	// chồng lấn một phần
	assert.True(t, HasOverlap(bookings, day(8), day(12)))
	assert.True(t, HasOverlap(bookings, day(14), day(20)))

	// bao trùm
	assert.True(t, HasOverlap(bookings, day(5), day(25)))

	// nằm trong
	assert.True(t, HasOverlap(bookings, day(11), day(13)))

	// chạm biên: trả phòng ngày 10 hoặc nhận phòng ngày 15 không tính chồng lấn
	assert.False(t, HasOverlap(bookings, day(5), day(10)))
	assert.False(t, HasOverlap(bookings, day(15), day(20)))

	// tách biệt
	assert.False(t, HasOverlap(bookings, day(1), day(5)))
	assert.False(t, HasOverlap(bookings, day(20), day(25)))

	// không có booking nào
	assert.False(t, HasOverlap(nil, day(10), day(15)))
}

func TestHasOverlapMultipleBookings(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: day(1), CheckOutDate: day(5)},
		{CheckInDate: day(10), CheckOutDate: day(15)},
	}

	// khe trống giữa hai booking
	assert.False(t, HasOverlap(bookings, day(5), day(10)))
	assert.True(t, HasOverlap(bookings, day(4), day(11)))
}
