package services

import (
	"math"
	"sort"
	"time"

	"homestay/errors"
	"homestay/models"
)

// StartOfDay chuẩn hóa timestamp về đầu ngày
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBeforeCheckIn tính số ngày (theo lịch) từ now đến ngày nhận phòng.
// Cả hai mốc được chuẩn hóa về đầu ngày trước khi trừ để tránh lỗi làm tròn nửa ngày.
func DaysBeforeCheckIn(now, checkIn time.Time) int {
	from := StartOfDay(now)
	to := StartOfDay(checkIn.In(now.Location()))
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// SelectRefundRule chọn rule có ngưỡng daysBeforeCheckIn lớn nhất mà vẫn <= daysBefore.
// Nếu không rule nào thỏa, áp dụng rule có ngưỡng nhỏ nhất để luôn có kết quả.
func SelectRefundRule(rules []models.CancellationRule, daysBefore int) (models.CancellationRule, error) {
	if len(rules) == 0 {
		return models.CancellationRule{}, errors.ErrInvalidPolicy
	}

	sorted := make([]models.CancellationRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DaysBeforeCheckIn > sorted[j].DaysBeforeCheckIn
	})

	for _, rule := range sorted {
		if rule.DaysBeforeCheckIn <= daysBefore {
			return rule, nil
		}
	}
	return sorted[len(sorted)-1], nil
}

// ComputeRefund tính số tiền hoàn cho khách khi hủy booking.
// Kết quả luôn nằm trong [0, totalPrice], làm tròn 2 chữ số thập phân.
func ComputeRefund(policy *models.CancellationPolicy, now, checkIn time.Time, totalPrice float64) (float64, int, error) {
	if policy == nil || len(policy.Rules) == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidPolicy,
			"Chính sách hủy không có rule nào", errors.ErrInvalidPolicy)
	}

	daysBefore := DaysBeforeCheckIn(now, checkIn)
	rule, err := SelectRefundRule(policy.Rules, daysBefore)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidPolicy,
			"Chính sách hủy không có rule nào", err)
	}

	pct := rule.RefundPercentage
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	amount := math.Round(totalPrice*float64(pct)) / 100
	if amount < 0 {
		amount = 0
	}
	if amount > totalPrice {
		amount = totalPrice
	}
	return amount, pct, nil
}
