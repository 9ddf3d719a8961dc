package dto

import "time"

// PaymentResponse là DTO cho response thanh toán
type PaymentResponse struct {
	ID           uint          `json:"id"`
	PaymentCode  string        `json:"paymentCode"`
	BookingID    uint          `json:"bookingId"`
	SessionID    string        `json:"sessionId"`
	Amount       float64       `json:"amount"`
	RefundAmount float64       `json:"refundAmount"`
	Status       int           `json:"status"`
	PaymentDate  *time.Time    `json:"paymentDate,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	User         ActorResponse `json:"user"`
}
