package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	PaymentCode  string     `json:"paymentCode" gorm:"unique;size:20"` // Mã thanh toán duy nhất
	BookingID    uint       `json:"bookingId"`
	Booking      Booking    `json:"booking" gorm:"foreignKey:BookingID"`
	SessionID    string     `json:"sessionId" gorm:"uniqueIndex;size:64"` // Mã phiên checkout từ cổng thanh toán
	Amount       float64    `json:"amount"`
	RefundAmount float64    `json:"refundAmount"`
	Status       int        `json:"status"` // 0: chờ, 1: thành công, 2: thất bại, 3: đã hoàn tiền
	PaymentDate  *time.Time `json:"paymentDate,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (payment *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	payment.PaymentCode = fmt.Sprintf("HMS%d", time.Now().UnixNano()%1e15)

	var count int64
	if err := tx.Model(&Payment{}).Where("payment_code = ?", payment.PaymentCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("PaymentCode đã tồn tại, hãy thử lại")
	}
	return nil
}
