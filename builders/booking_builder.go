package builders

import (
	"time"

	"homestay/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID, propertyID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	b.booking.PropertyID = propertyID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithDates thêm ngày nhận và trả phòng
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuests thêm số khách
func (b *BookingBuilder) WithGuests(numberOfGuests int) *BookingBuilder {
	b.booking.NumberOfGuests = numberOfGuests
	return b
}

// WithPrice thêm giá cơ bản, giá giảm và tổng giá
func (b *BookingBuilder) WithPrice(price int, discountPrice, totalPrice float64) *BookingBuilder {
	b.booking.Price = price
	b.booking.DiscountPrice = discountPrice
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
