package controllers

import (
	"strconv"
	"strings"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetProfile lấy thông tin tài khoản hiện tại
func GetProfile(c *gin.Context) {
	currentUserID, _, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(&user))
}

// UpdateUser cập nhật thông tin tài khoản
func UpdateUser(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	// Chỉ admin được sửa tài khoản người khác
	if request.ID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.PhoneNumber != "" {
		user.PhoneNumber = request.PhoneNumber
	}
	if request.Avatar != "" {
		user.Avatar = request.Avatar
	}
	if request.DateOfBirth != "" {
		user.DateOfBirth = request.DateOfBirth
	}
	user.Gender = request.Gender

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(&user))
}

// GetUsers lấy danh sách user có filter và phân trang (admin/moderator)
func GetUsers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	roleFilter := c.Query("role")
	statusFilter := c.Query("status")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.User{})
	if nameFilter != "" {
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			"%"+strings.ToLower(nameFilter)+"%", "%"+strings.ToLower(nameFilter)+"%")
	}
	if roleFilter != "" {
		if parsedRole, err := strconv.Atoi(roleFilter); err == nil {
			tx = tx.Where("role = ?", parsedRole)
		}
	}
	if statusFilter != "" {
		if parsedStatus, err := strconv.Atoi(statusFilter); err == nil {
			tx = tx.Where("status = ?", parsedStatus)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := tx.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		userResponses = append(userResponses, convertToUserResponse(&users[i]))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, int(total))
}

// GetUserByID lấy thông tin user theo id
func GetUserByID(c *gin.Context) {
	userId := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, userId).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(&user))
}

// ChangeUserStatus khóa/mở khóa tài khoản (admin)
func ChangeUserStatus(c *gin.Context) {
	var request dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status < constants.UserStatusInactive || request.Status > constants.UserStatusBanned {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Role == constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	user.Status = request.Status
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Trạng thái tài khoản đã được cập nhật"})
}

// CreateModerator tạo tài khoản moderator (admin)
func CreateModerator(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hashedPassword, err := services.HashPassword(request.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    hashedPassword,
		PhoneNumber: request.PhoneNumber,
		Role:        constants.RoleModerator,
		IsVerified:  true,
		Status:      constants.UserStatusActive,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.Conflict(c, "Email hoặc số điện thoại đã được đăng ký")
		return
	}

	response.Success(c, convertToUserResponse(&user))
}

// AssignProperties gán danh sách chỗ ở cho moderator phụ trách (admin)
func AssignProperties(c *gin.Context) {
	var request dto.AssignPropertiesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.UserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Role != constants.RoleModerator {
		response.BadRequest(c, "User không phải moderator")
		return
	}

	var count int64
	if err := config.DB.Model(&models.Property{}).
		Where("id IN ?", request.PropertyIDs).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count != int64(len(request.PropertyIDs)) {
		response.BadRequest(c, "Danh sách chỗ ở chứa id không tồn tại")
		return
	}

	user.PropertyIDs = pq.Int64Array(request.PropertyIDs)
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã gán chỗ ở cho moderator"})
}

// moderatorManagesProperty kiểm tra moderator có phụ trách chỗ ở không
func moderatorManagesProperty(moderator *models.User, propertyID uint) bool {
	for _, id := range moderator.PropertyIDs {
		if uint(id) == propertyID {
			return true
		}
	}
	return false
}
