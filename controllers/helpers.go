package controllers

import (
	"context"
	"strings"
	"time"

	"homestay/dto"
	"homestay/models"
	"homestay/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	return services.GetUserIDFromToken(tokenString)
}

func getAuthUser(c *gin.Context) (uint, int, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, 0, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, userRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		return 0, 0, false
	}
	return userID, userRole, true
}

// Chuyển chuỗi ngày string thành dạng timestamp
func ConvertDateToISOFormat(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(dto.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

// DeleteKeysByPattern xóa tất cả các key theo pattern
func DeleteKeysByPattern(ctx context.Context, rdb *redis.Client, pattern string) error {
	iter := rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func convertToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:         room.ID,
		PropertyID: room.PropertyID,
		RoomName:   room.RoomName,
		Price:      room.Price,
		People:     room.People,
		NumBed:     room.NumBed,
		Status:     room.Status,
		Avatar:     room.Avatar,
	}
}

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		PropertyID: review.PropertyID,
		Comment:    review.Comment,
		Star:       review.Star,
		Hidden:     review.Hidden,
		CreatedAt:  review.CreateAt,
		UpdatedAt:  review.UpdateAt,
		User: dto.UserInfo{
			ID:     review.User.ID,
			Name:   review.User.Name,
			Avatar: review.User.Avatar,
		},
	}
}

func convertToPolicyResponse(policy *models.CancellationPolicy) *dto.PolicyResponse {
	if policy == nil {
		return nil
	}
	rules := make([]dto.PolicyRuleResponse, 0, len(policy.Rules))
	for _, rule := range policy.Rules {
		rules = append(rules, dto.PolicyRuleResponse{
			DaysBeforeCheckIn: rule.DaysBeforeCheckIn,
			RefundPercentage:  rule.RefundPercentage,
		})
	}
	return &dto.PolicyResponse{
		ID:         policy.ID,
		PropertyID: policy.PropertyID,
		IsCustom:   policy.IsCustom,
		Rules:      rules,
	}
}

func convertToBookingPropertyResponse(property models.Property) dto.BookingPropertyResponse {
	return dto.BookingPropertyResponse{
		ID:      property.ID,
		Name:    property.Name,
		Address: property.Address,
		City:    property.City.Name,
		Avatar:  property.Avatar,
	}
}

func convertToBookingRoomResponse(room models.Room) dto.BookingRoomResponse {
	return dto.BookingRoomResponse{
		ID:         room.ID,
		PropertyID: room.PropertyID,
		RoomName:   room.RoomName,
		Price:      room.Price,
	}
}
