package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	PropertyID  uint            `json:"propertyId" gorm:"index"`
	RoomName    string          `json:"roomName"`
	NumBed      int             `json:"numBed"`
	NumTolet    int             `json:"numTolet"`
	Acreage     int             `json:"acreage"`
	Price       int             `json:"price"`  // Giá mỗi đêm
	People      int             `json:"people"` // Số khách tối đa
	Description string          `json:"description"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Status      int             `json:"status" gorm:"default:1"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	Parent      Property        `json:"parent" gorm:"foreignKey:PropertyID"`
	Bookings    []Booking       `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", r.Status)
	}
	return nil
}
