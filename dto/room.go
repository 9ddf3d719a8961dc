package dto

import "encoding/json"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	PropertyID  uint            `json:"propertyId" binding:"required"`
	RoomName    string          `json:"roomName" binding:"required"`
	Price       int             `json:"price" binding:"required,gt=0"`
	People      int             `json:"people" binding:"required,gt=0"`
	NumBed      int             `json:"numBed"`
	NumTolet    int             `json:"numTolet"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	ID          uint            `json:"id" binding:"required"`
	RoomName    string          `json:"roomName"`
	Price       int             `json:"price"`
	People      int             `json:"people"`
	NumBed      int             `json:"numBed"`
	NumTolet    int             `json:"numTolet"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// ChangeRoomStatusRequest là DTO cho request đổi trạng thái phòng
type ChangeRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomResponse là DTO cho response phòng
type RoomResponse struct {
	ID         uint   `json:"id"`
	PropertyID uint   `json:"propertyId"`
	RoomName   string `json:"roomName"`
	Price      int    `json:"price"`
	People     int    `json:"people"`
	NumBed     int    `json:"numBed"`
	Status     int    `json:"status"`
	Avatar     string `json:"avatar"`
}

// RoomBookedRange khoảng ngày phòng đã được giữ
type RoomBookedRange struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       int    `json:"status"`
}
