package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Property struct {
	ID               uint                `json:"id" gorm:"primaryKey"`
	UserID           uint                `json:"userId"` // ID của chủ nhà
	User             User                `json:"user" gorm:"foreignKey:UserID"`
	Name             string              `json:"name"`
	Address          string              `json:"address"`
	CountryID        uint                `json:"countryId"`
	Country          Country             `json:"country" gorm:"foreignKey:CountryID"`
	CityID           uint                `json:"cityId"`
	City             City                `json:"city" gorm:"foreignKey:CityID"`
	PropertyTypeID   uint                `json:"propertyTypeId"`
	PropertyType     PropertyType        `json:"propertyType" gorm:"foreignKey:PropertyTypeID"`
	CreateAt         time.Time           `gorm:"autoCreateTime"`
	UpdateAt         time.Time           `gorm:"autoUpdateTime"`
	Avatar           string              `json:"avatar"`
	Img              json.RawMessage     `json:"img" gorm:"type:json"`
	ShortDescription string              `json:"shortDescription"`
	Description      string              `json:"description"`
	Status           int                 `json:"status"` // 0: chờ duyệt, 1: đã duyệt, 2: đã ẩn
	Rooms            []Room              `json:"rooms" gorm:"foreignKey:PropertyID"`
	Reviews          []Review            `json:"reviews" gorm:"foreignKey:PropertyID"`
	Amenities        []Amenity           `json:"amenities" gorm:"many2many:property_amenities;"`
	HouseRules       []HouseRule         `json:"houseRules" gorm:"many2many:property_house_rules;"`
	Policy           *CancellationPolicy `json:"policy,omitempty" gorm:"foreignKey:PropertyID"`
	People           int                 `json:"people"`
	NumBed           int                 `json:"numBed"`
	Price            int                 `json:"price"` // Giá thấp nhất trong các phòng
	TimeCheckIn      string              `json:"timeCheckIn"`
	TimeCheckOut     string              `json:"timeCheckOut"`
	Longitude        float64             `json:"longitude"`
	Latitude         float64             `json:"latitude"`
}

func (p *Property) ValidateStatus() error {
	if p.Status < 0 || p.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", p.Status)
	}
	return nil
}
