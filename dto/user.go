package dto

import "time"

// UserResponse là DTO cho response thông tin user
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `json:"role"`
	Status      int       `json:"status"`
	Gender      int       `json:"gender"`
	DateOfBirth string    `json:"dateOfBirth"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UpdateUserRequest là DTO cho request cập nhật thông tin user
type UpdateUserRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Gender      int    `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
}

// ChangeUserStatusRequest là DTO cho request đổi trạng thái user
type ChangeUserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// AssignPropertiesRequest là DTO gán danh sách chỗ ở cho moderator
type AssignPropertiesRequest struct {
	UserID      uint    `json:"userId" binding:"required"`
	PropertyIDs []int64 `json:"propertyIds" binding:"required"`
}
