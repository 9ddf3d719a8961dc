package dto

import (
	"encoding/json"
	"time"
)

// SearchFilters bộ lọc tìm kiếm chỗ ở
type SearchFilters struct {
	TypeID     *uint      `json:"typeId,omitempty"`
	City       string     `json:"city,omitempty"`
	Country    string     `json:"country,omitempty"`
	Name       string     `json:"name,omitempty"`
	NumBed     *int       `json:"numBed,omitempty"`
	People     *int       `json:"people,omitempty"`
	PriceMin   *int       `json:"priceMin,omitempty"`
	PriceMax   *int       `json:"priceMax,omitempty"`
	AmenityIDs []int      `json:"amenityIds,omitempty"`
	FromDate   *time.Time `json:"fromDate,omitempty"`
	ToDate     *time.Time `json:"toDate,omitempty"`
	Status     *int       `json:"status,omitempty"`
}

// CreatePropertyRequest là DTO cho request tạo chỗ ở
type CreatePropertyRequest struct {
	Name             string          `json:"name" binding:"required"`
	Address          string          `json:"address" binding:"required"`
	City             string          `json:"city" binding:"required"`
	Country          string          `json:"country" binding:"required"`
	PropertyTypeID   uint            `json:"propertyTypeId" binding:"required"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	AmenityIDs       []uint          `json:"amenityIds"`
	HouseRuleIDs     []uint          `json:"houseRuleIds"`
	People           int             `json:"people"`
	NumBed           int             `json:"numBed"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
}

// UpdatePropertyRequest là DTO cho request cập nhật chỗ ở
type UpdatePropertyRequest struct {
	ID               uint            `json:"id" binding:"required"`
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	AmenityIDs       []uint          `json:"amenityIds"`
	HouseRuleIDs     []uint          `json:"houseRuleIds"`
	People           int             `json:"people"`
	NumBed           int             `json:"numBed"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
}

// ChangePropertyStatusRequest là DTO cho request đổi trạng thái chỗ ở
type ChangePropertyStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// PropertyResponse là DTO cho response chỗ ở
type PropertyResponse struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	City             string          `json:"city"`
	Country          string          `json:"country"`
	PropertyType     string          `json:"propertyType"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	ShortDescription string          `json:"shortDescription"`
	Status           int             `json:"status"`
	People           int             `json:"people"`
	NumBed           int             `json:"numBed"`
	Price            int             `json:"price"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
	AvgStar          float64         `json:"avgStar"`
	NumReviews       int             `json:"numReviews"`
}

// PropertyDetailResponse là DTO cho response chi tiết chỗ ở
type PropertyDetailResponse struct {
	PropertyResponse
	Description  string           `json:"description"`
	TimeCheckIn  string           `json:"timeCheckIn"`
	TimeCheckOut string           `json:"timeCheckOut"`
	Amenities    []string         `json:"amenities"`
	HouseRules   []string         `json:"houseRules"`
	Rooms        []RoomResponse   `json:"rooms"`
	Reviews      []ReviewResponse `json:"reviews"`
	Policy       *PolicyResponse  `json:"policy,omitempty"`
	User         UserInfo         `json:"user"`
}
