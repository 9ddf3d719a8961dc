package services

import (
	"testing"
	"time"

	"homestay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() *models.CancellationPolicy {
	return &models.CancellationPolicy{
		Rules: []models.CancellationRule{
			{DaysBeforeCheckIn: 14, RefundPercentage: 100},
			{DaysBeforeCheckIn: 7, RefundPercentage: 50},
			{DaysBeforeCheckIn: 0, RefundPercentage: 0},
		},
	}
}

func TestDaysBeforeCheckIn(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	now := time.Date(2025, 6, 1, 23, 59, 0, 0, loc)
	checkIn := time.Date(2025, 6, 8, 0, 0, 0, 0, loc)
	assert.Equal(t, 7, DaysBeforeCheckIn(now, checkIn))

	// giờ trong ngày không ảnh hưởng kết quả
	now = time.Date(2025, 6, 1, 0, 1, 0, 0, loc)
	assert.Equal(t, 7, DaysBeforeCheckIn(now, checkIn))

	// hủy đúng ngày nhận phòng
	now = time.Date(2025, 6, 8, 10, 0, 0, 0, loc)
	assert.Equal(t, 0, DaysBeforeCheckIn(now, checkIn))

	// hủy sau ngày nhận phòng
	now = time.Date(2025, 6, 10, 10, 0, 0, 0, loc)
	assert.Equal(t, -2, DaysBeforeCheckIn(now, checkIn))
}

func TestSelectRefundRule(t *testing.T) {
	rules := testPolicy().Rules

	rule, err := SelectRefundRule(rules, 20)
	require.NoError(t, err)
	assert.Equal(t, 100, rule.RefundPercentage)

	rule, err = SelectRefundRule(rules, 14)
	require.NoError(t, err)
	assert.Equal(t, 100, rule.RefundPercentage)

	rule, err = SelectRefundRule(rules, 13)
	require.NoError(t, err)
	assert.Equal(t, 50, rule.RefundPercentage)

	rule, err = SelectRefundRule(rules, 7)
	require.NoError(t, err)
	assert.Equal(t, 50, rule.RefundPercentage)

	rule, err = SelectRefundRule(rules, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, rule.RefundPercentage)

	// không rule nào thỏa thì lấy rule có ngưỡng nhỏ nhất
	rule, err = SelectRefundRule(rules, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, rule.DaysBeforeCheckIn)
	assert.Equal(t, 0, rule.RefundPercentage)

	_, err = SelectRefundRule(nil, 10)
	assert.Error(t, err)
}

func TestComputeRefund(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	policy := testPolicy()
	checkIn := time.Date(2025, 6, 20, 0, 0, 0, 0, loc)

	// trước 14 ngày: hoàn 100%
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
	amount, pct, err := ComputeRefund(policy, now, checkIn, 1500000)
	require.NoError(t, err)
	assert.Equal(t, 100, pct)
	assert.Equal(t, 1500000.0, amount)

	// trước 7 ngày: hoàn 50%
	now = time.Date(2025, 6, 12, 12, 0, 0, 0, loc)
	amount, pct, err = ComputeRefund(policy, now, checkIn, 1500000)
	require.NoError(t, err)
	assert.Equal(t, 50, pct)
	assert.Equal(t, 750000.0, amount)

	// sát ngày: không hoàn
	now = time.Date(2025, 6, 19, 12, 0, 0, 0, loc)
	amount, pct, err = ComputeRefund(policy, now, checkIn, 1500000)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)
	assert.Equal(t, 0.0, amount)

	// hủy sau ngày nhận phòng vẫn áp rule nhỏ nhất
	now = time.Date(2025, 6, 25, 12, 0, 0, 0, loc)
	amount, pct, err = ComputeRefund(policy, now, checkIn, 1500000)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)
	assert.Equal(t, 0.0, amount)

	// làm tròn 2 chữ số thập phân
	now = time.Date(2025, 6, 12, 12, 0, 0, 0, loc)
	amount, _, err = ComputeRefund(policy, now, checkIn, 333333.33)
	require.NoError(t, err)
	assert.Equal(t, 166666.67, amount)
}

func TestComputeRefundInvalidPolicy(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
	checkIn := time.Date(2025, 6, 20, 0, 0, 0, 0, loc)

	_, _, err := ComputeRefund(nil, now, checkIn, 1000000)
	assert.Error(t, err)

	_, _, err = ComputeRefund(&models.CancellationPolicy{}, now, checkIn, 1000000)
	assert.Error(t, err)
}

func TestComputeRefundClampsPercentage(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
	checkIn := time.Date(2025, 6, 20, 0, 0, 0, 0, loc)

	policy := &models.CancellationPolicy{
		Rules: []models.CancellationRule{
			{DaysBeforeCheckIn: 0, RefundPercentage: 150},
		},
	}
	amount, pct, err := ComputeRefund(policy, now, checkIn, 1000000)
	require.NoError(t, err)
	assert.Equal(t, 100, pct)
	assert.Equal(t, 1000000.0, amount)

	policy.Rules[0].RefundPercentage = -10
	amount, pct, err = ComputeRefund(policy, now, checkIn, 1000000)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)
	assert.Equal(t, 0.0, amount)
}
