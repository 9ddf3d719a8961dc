package models

import (
	"time"

	"homestay/constants"
	"homestay/errors"
)

type Booking struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"index"`
	User           User      `json:"user" gorm:"foreignKey:UserID"`
	PropertyID     uint      `json:"propertyId"`
	Property       Property  `json:"property" gorm:"foreignKey:PropertyID"`
	RoomID         uint      `json:"roomId" gorm:"index"`
	Room           Room      `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate    time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate   time.Time `json:"checkOutDate" gorm:"index"`
	Status         int       `json:"status" gorm:"index"`
	NumberOfGuests int       `json:"numberOfGuests"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	GuestName      string    `json:"guestName,omitempty"`
	GuestEmail     string    `json:"guestEmail,omitempty"`
	GuestPhone     string    `json:"guestPhone,omitempty"`
	Price          int       `json:"price"`         // Giá cơ bản cho cả kỳ lưu trú
	DiscountPrice  float64   `json:"discountPrice"` // Giá giảm cho đơn đầu tiên
	TotalPrice     float64   `json:"totalPrice"`    // Tổng giá
}

// ValidateDates kiểm tra ngày trả phòng phải sau ngày nhận phòng
func (b *Booking) ValidateDates() error {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return errors.ErrInvalidDateRange
	}
	return nil
}

// IsActive cho biết booking có đang giữ phòng hay không
func (b *Booking) IsActive() bool {
	return b.Status == constants.BookingStatusPending || b.Status == constants.BookingStatusConfirmed
}
