package services

import (
	"context"
	"time"

	"homestay/constants"
	"homestay/errors"
	"homestay/models"
	"homestay/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activeStatuses các trạng thái booking đang giữ phòng
var activeStatuses = []int{constants.BookingStatusPending, constants.BookingStatusConfirmed}

// HasOverlap kiểm tra khoảng [checkIn, checkOut) có chồng lấn với booking nào không.
// Hai khoảng chỉ chạm nhau tại biên (trả phòng ngày nhận phòng của khách sau) không tính là chồng lấn.
func HasOverlap(bookings []models.Booking, checkIn, checkOut time.Time) bool {
	for _, b := range bookings {
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			return true
		}
	}
	return false
}

// BookingService xử lý logic kiểm tra phòng trống và tạo booking
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// IsRangeAvailable kiểm tra phòng có trống trong khoảng [checkIn, checkOut) không
func (s *BookingService) IsRangeAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			roomID, activeStatuses, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra phòng trống", err)
	}

	return count == 0, nil
}

// CreateWithGuard tạo booking trong transaction, giữ khóa trên phòng để tránh
// hai request cùng đặt một phòng trùng ngày. Pre-check ở controller chỉ mang
// tính lạc quan, kiểm tra cuối cùng nằm trong transaction này.
func (s *BookingService) CreateWithGuard(ctx context.Context, booking *models.Booking) error {
	if err := booking.ValidateDates(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", err)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi bắt đầu transaction", tx.Error)
	}

	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRoomNotFound
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi khóa phòng", err)
	}

	if booking.NumberOfGuests > room.People {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách vượt quá sức chứa của phòng", nil)
	}

	var count int64
	if err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			booking.RoomID, activeStatuses, booking.CheckOutDate, booking.CheckInDate).
		Count(&count).Error; err != nil {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra phòng trống", err)
	}

	if count > 0 {
		tx.Rollback()
		return errors.ErrRoomUnavailable
	}

	if err := tx.Create(booking).Error; err != nil {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo booking", err)
	}

	if err := tx.Commit().Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi commit transaction", err)
	}

	s.logger.Info("Đã tạo booking %d cho phòng %d từ %s đến %s",
		booking.ID, booking.RoomID,
		booking.CheckInDate.Format("02/01/2006"), booking.CheckOutDate.Format("02/01/2006"))
	return nil
}

// GetActiveBookings lấy các booking đang giữ phòng của một phòng
func (s *BookingService) GetActiveBookings(ctx context.Context, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND status IN ?", roomID, activeStatuses).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách booking", err)
	}
	return bookings, nil
}

// IsFirstBooking kiểm tra người dùng chưa từng có booking nào (bất kể trạng thái)
func (s *BookingService) IsFirstBooking(ctx context.Context, userID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra lịch sử booking", err)
	}
	return count == 0, nil
}
