package services

import (
	"context"
	"time"
	_ "time/tzdata"

	"homestay/constants"
	"homestay/models"
	"homestay/services/logger"

	"gorm.io/gorm"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

// SweepService quét các booking đã qua ngày trả phòng và chuyển sang trạng thái hoàn thành
type SweepService struct {
	db     *gorm.DB
	logger logger.Logger
}

type SweepServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewSweepService(opts SweepServiceOptions) *SweepService {
	return &SweepService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// SweepCutoff trả về mốc đầu ngày hôm nay theo timezone cố định.
// Booking có check_out_date <= mốc này đủ điều kiện hoàn thành.
func SweepCutoff(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EligibleForCompletion kiểm tra một booking có đủ điều kiện chuyển sang hoàn thành không
func EligibleForCompletion(b *models.Booking, cutoff time.Time) bool {
	return b.Status == constants.BookingStatusConfirmed && !b.CheckOutDate.After(cutoff)
}

// CompletePastCheckouts chuyển các booking đã xác nhận có ngày trả phòng <= hôm nay
// sang trạng thái hoàn thành. Dùng một câu UPDATE có điều kiện duy nhất nên chạy lại
// nhiều lần trong ngày (hoặc hai lần chạy chồng nhau) không đổi gì trên các booking
// đã hoàn thành.
func (s *SweepService) CompletePastCheckouts(ctx context.Context) (int64, error) {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	cutoff := SweepCutoff(now, loc)

	result := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ? AND check_out_date <= ?", constants.BookingStatusConfirmed, cutoff).
		Updates(map[string]interface{}{
			"status":     constants.BookingStatusCompleted,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		s.logger.Info("Đã hoàn thành %d booking qua ngày trả phòng", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
