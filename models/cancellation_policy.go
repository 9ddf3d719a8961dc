package models

import (
	"fmt"
	"time"
)

type CancellationPolicy struct {
	ID         uint               `json:"id" gorm:"primaryKey"`
	PropertyID uint               `json:"propertyId" gorm:"index"`
	IsCustom   bool               `json:"isCustom" gorm:"default:false"`
	Rules      []CancellationRule `json:"rules" gorm:"foreignKey:PolicyID"`
	CreatedAt  time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CancellationRule struct {
	ID                uint `json:"id" gorm:"primaryKey"`
	PolicyID          uint `json:"policyId" gorm:"index"`
	DaysBeforeCheckIn int  `json:"daysBeforeCheckIn"`
	RefundPercentage  int  `json:"refundPercentage"` // Phần trăm hoàn tiền [0,100]
}

func (r *CancellationRule) ValidatePercentage() error {
	if r.RefundPercentage < 0 || r.RefundPercentage > 100 {
		return fmt.Errorf("invalid refundPercentage: %d, must be between 0 and 100", r.RefundPercentage)
	}
	return nil
}
