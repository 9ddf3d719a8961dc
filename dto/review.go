package dto

import "time"

// CreateReviewRequest là DTO cho request tạo đánh giá
type CreateReviewRequest struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	Star       int    `json:"star" binding:"required,gte=1,lte=5"`
	Comment    string `json:"comment"`
}

// UpdateReviewRequest là DTO cho request cập nhật đánh giá
type UpdateReviewRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Star    int    `json:"star" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// ModerateReviewRequest là DTO cho request ẩn/hiện đánh giá
type ModerateReviewRequest struct {
	ID     uint `json:"id" binding:"required"`
	Hidden bool `json:"hidden"`
}

// ReviewResponse là DTO cho response đánh giá
type ReviewResponse struct {
	ID         uint      `json:"id"`
	PropertyID uint      `json:"propertyId"`
	Comment    string    `json:"comment"`
	Star       int       `json:"star"`
	Hidden     bool      `json:"hidden"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	User       UserInfo  `json:"user"`
}
