package dto

import "time"

// CreateCheckoutRequest là DTO cho request tạo phiên thanh toán đặt phòng
type CreateCheckoutRequest struct {
	RoomID         uint   `json:"roomId" binding:"required"`
	CheckInDate    string `json:"checkInDate" binding:"required,bookingdate"`
	CheckOutDate   string `json:"checkOutDate" binding:"required,bookingdate"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required,gt=0"`
	GuestName      string `json:"guestName,omitempty"`
	GuestEmail     string `json:"guestEmail,omitempty"`
	GuestPhone     string `json:"guestPhone,omitempty"`
}

// CheckoutSessionResponse là DTO trả về sau khi tạo phiên thanh toán
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CancelBookingRequest là DTO cho request hủy booking
type CancelBookingRequest struct {
	ID uint `json:"id" binding:"required"`
}

// ChangeBookingStatusRequest là DTO cho request đổi trạng thái booking
type ChangeBookingStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// AvailabilityResponse là DTO cho response kiểm tra phòng trống
type AvailabilityResponse struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Available    bool   `json:"available"`
}

// BookingPropertyResponse là DTO cho thông tin chỗ ở trong booking
type BookingPropertyResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Avatar  string `json:"avatar"`
}

// BookingRoomResponse là DTO cho thông tin phòng trong booking
type BookingRoomResponse struct {
	ID         uint   `json:"id"`
	PropertyID uint   `json:"propertyId"`
	RoomName   string `json:"roomName"`
	Price      int    `json:"price"`
}

// BookingResponse là DTO cho response booking
type BookingResponse struct {
	ID             uint                    `json:"id"`
	User           ActorResponse           `json:"user"`
	Property       BookingPropertyResponse `json:"property"`
	Room           BookingRoomResponse     `json:"room"`
	CheckInDate    string                  `json:"checkInDate"`
	CheckOutDate   string                  `json:"checkOutDate"`
	Status         int                     `json:"status"`
	StatusName     string                  `json:"statusName"`
	NumberOfGuests int                     `json:"numberOfGuests"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	Price          int                     `json:"price"`
	DiscountPrice  float64                 `json:"discountPrice"`
	TotalPrice     float64                 `json:"totalPrice"`
}

// CancelBookingResponse là DTO cho response hủy booking kèm hoàn tiền
type CancelBookingResponse struct {
	BookingID        uint    `json:"bookingId"`
	Status           int     `json:"status"`
	StatusName       string  `json:"statusName"`
	RefundPercentage int     `json:"refundPercentage"`
	RefundAmount     float64 `json:"refundAmount"`
}
