package models

import (
	"fmt"
	"time"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId"`
	PropertyID uint      `json:"propertyId" gorm:"index"`
	Comment    string    `json:"comment"` // Bình luận của người dùng
	Star       int       `json:"star"`    // Số sao (điểm đánh giá)
	Hidden     bool      `json:"hidden" gorm:"default:false"` // Moderator ẩn đánh giá
	CreateAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
}

func (r *Review) ValidateStar() error {
	if r.Star < 1 || r.Star > 5 {
		return fmt.Errorf("invalid star: %d, must be between 1 and 5", r.Star)
	}
	return nil
}
