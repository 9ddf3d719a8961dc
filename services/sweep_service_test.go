package services

import (
	"testing"
	"time"

	"homestay/constants"
	"homestay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCutoff(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	// 01:30 sáng giờ VN
	now := time.Date(2025, 7, 15, 1, 30, 0, 0, loc)
	cutoff := SweepCutoff(now, loc)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, loc), cutoff)

	// now ở UTC vẫn quy về đầu ngày theo giờ VN
	nowUTC := time.Date(2025, 7, 14, 18, 0, 0, 0, time.UTC) // 01:00 ngày 15 giờ VN
	cutoff = SweepCutoff(nowUTC, loc)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, loc), cutoff)
}

func TestEligibleForCompletion(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)
	cutoff := time.Date(2025, 7, 15, 0, 0, 0, 0, loc)

	booking := &models.Booking{
		Status:       constants.BookingStatusConfirmed,
		CheckOutDate: time.Date(2025, 7, 14, 0, 0, 0, 0, loc),
	}
	assert.True(t, EligibleForCompletion(booking, cutoff))

	// trả phòng đúng mốc cutoff vẫn đủ điều kiện
	booking.CheckOutDate = cutoff
	assert.True(t, EligibleForCompletion(booking, cutoff))

	// chưa đến ngày trả phòng
	booking.CheckOutDate = time.Date(2025, 7, 16, 0, 0, 0, 0, loc)
	assert.False(t, EligibleForCompletion(booking, cutoff))

	// chỉ booking đã xác nhận mới được chuyển sang hoàn thành
	booking.CheckOutDate = time.Date(2025, 7, 10, 0, 0, 0, 0, loc)
	for _, status := range []int{
		constants.BookingStatusPending,
		constants.BookingStatusCompleted,
		constants.BookingStatusCancelledByRenter,
		constants.BookingStatusCancelledByOwner,
		constants.BookingStatusFailed,
	} {
		booking.Status = status
		assert.False(t, EligibleForCompletion(booking, cutoff))
	}
}
