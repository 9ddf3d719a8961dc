package controllers

import (
	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPolicyByProperty lấy chính sách hủy của một chỗ ở
func GetPolicyByProperty(c *gin.Context) {
	propertyIdStr := c.Query("propertyId")
	if propertyIdStr == "" {
		response.BadRequest(c, "Thiếu propertyId")
		return
	}

	var policy models.CancellationPolicy
	if err := config.DB.Preload("Rules").
		Where("property_id = ?", propertyIdStr).
		First(&policy).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToPolicyResponse(&policy))
}

// UpdatePolicy thay thế chính sách hủy của chỗ ở (chủ nhà)
func UpdatePolicy(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if property.UserID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	rules := make([]models.CancellationRule, 0, len(request.Rules))
	for _, rule := range request.Rules {
		rules = append(rules, models.CancellationRule{
			DaysBeforeCheckIn: rule.DaysBeforeCheckIn,
			RefundPercentage:  rule.RefundPercentage,
		})
	}

	if err := validator.ValidatePolicyRules(rules); err != nil {
		response.BadRequest(c, "Chính sách hủy không hợp lệ")
		return
	}

	var policy models.CancellationPolicy
	err := config.DB.Preload("Rules").
		Where("property_id = ?", request.PropertyID).
		First(&policy).Error
	if err == gorm.ErrRecordNotFound {
		policy = models.CancellationPolicy{PropertyID: request.PropertyID}
		if err := config.DB.Create(&policy).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if err != nil {
		response.ServerError(c)
		return
	}

	// Thay thế toàn bộ rule cũ
	if err := config.DB.Where("policy_id = ?", policy.ID).
		Delete(&models.CancellationRule{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	for i := range rules {
		rules[i].PolicyID = policy.ID
	}
	if err := config.DB.Create(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.CancellationPolicy{}).
		Where("id = ?", policy.ID).
		Update("is_custom", request.IsCustom).Error; err != nil {
		response.ServerError(c)
		return
	}
	policy.IsCustom = request.IsCustom
	policy.Rules = rules

	invalidatePropertyCache()
	response.Success(c, convertToPolicyResponse(&policy))
}
