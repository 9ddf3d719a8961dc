package controllers

import (
	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/validator"

	"github.com/gin-gonic/gin"
)

// GetReviewsByProperty lấy danh sách đánh giá hiển thị của một chỗ ở
func GetReviewsByProperty(c *gin.Context) {
	propertyIdStr := c.Query("propertyId")
	if propertyIdStr == "" {
		response.BadRequest(c, "Thiếu propertyId")
		return
	}

	var reviews []models.Review
	if err := config.DB.
		Preload("User").
		Where("property_id = ? AND hidden = ?", propertyIdStr, false).
		Order("create_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	response.SuccessWithTotal(c, reviewResponses, len(reviewResponses))
}

// CreateReview tạo đánh giá cho chỗ ở. Chỉ người thuê từng hoàn thành
// kỳ lưu trú tại chỗ ở mới được đánh giá, mỗi người một đánh giá.
func CreateReview(c *gin.Context) {
	currentUserID, _, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var completedCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND property_id = ? AND status = ?",
			currentUserID, request.PropertyID, constants.BookingStatusCompleted).
		Count(&completedCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if completedCount == 0 {
		response.Forbidden(c)
		return
	}

	var existing models.Review
	if err := config.DB.Where("user_id = ? AND property_id = ?",
		currentUserID, request.PropertyID).First(&existing).Error; err == nil {
		response.Conflict(c, "Bạn đã đánh giá chỗ ở này rồi")
		return
	}

	review := models.Review{
		UserID:     currentUserID,
		PropertyID: request.PropertyID,
		Star:       request.Star,
		Comment:    request.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").First(&review, review.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()
	response.Success(c, convertToReviewResponse(review))
}

// UpdateReview cập nhật đánh giá của chính mình
func UpdateReview(c *gin.Context) {
	currentUserID, _, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").First(&review, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	review.Star = request.Star
	review.Comment = request.Comment
	if err := review.ValidateStar(); err != nil {
		response.BadRequest(c, "Số sao phải từ 1 đến 5")
		return
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()
	response.Success(c, convertToReviewResponse(review))
}

// DeleteReview xóa đánh giá của chính mình (hoặc admin)
func DeleteReview(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	reviewId := c.Param("id")

	var review models.Review
	if err := config.DB.First(&review, reviewId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()
	response.Success(c, gin.H{"message": "Đã xóa đánh giá"})
}

// ModerateReview ẩn/hiện đánh giá (moderator phụ trách hoặc admin)
func ModerateReview(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").First(&review, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == constants.RoleModerator {
		var moderator models.User
		if err := config.DB.First(&moderator, currentUserID).Error; err != nil {
			response.ServerError(c)
			return
		}
		if !moderatorManagesProperty(&moderator, review.PropertyID) {
			response.Forbidden(c)
			return
		}
	} else if currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	review.Hidden = request.Hidden
	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()
	response.Success(c, convertToReviewResponse(review))
}
