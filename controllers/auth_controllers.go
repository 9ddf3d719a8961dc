package controllers

import (
	"fmt"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/services"
	"homestay/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUser đăng ký tài khoản mới và gửi mã xác thực qua email
func RegisterUser(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Role != constants.RoleRenter && request.Role != constants.RoleOwner {
		response.BadRequest(c, "Role không hợp lệ")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        request.Role,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", request.Email, request.PhoneNumber).
		First(&existing).Error; err == nil {
		response.Conflict(c, "Email hoặc số điện thoại đã được đăng ký")
		return
	}

	hashedPassword, err := services.HashPassword(request.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashedPassword
	user.Code = services.GenerateVerificationCode()
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendVerificationEmail(user.Email, user.Code); err != nil {
		fmt.Println("Gửi email không thành công:", err)
	}

	response.Success(c, convertToUserResponse(&user))
}

// VerifyCode xác thực mã được gửi qua email
func VerifyCode(c *gin.Context) {
	var request dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Code != request.Code {
		response.BadRequest(c, "Mã xác thực không đúng")
		return
	}

	if services.CodeExpired(user.CodeCreatedAt) {
		response.BadRequest(c, "Mã xác thực đã hết hạn")
		return
	}

	user.IsVerified = true
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Xác thực tài khoản thành công"})
}

// ResendVerificationCode gửi lại mã xác thực
func ResendVerificationCode(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Code = services.GenerateVerificationCode()
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendVerificationEmail(user.Email, user.Code); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã gửi lại mã xác thực"})
}

// Login đăng nhập bằng email hoặc số điện thoại
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", request.Identifier, request.Identifier).
		First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.CheckPassword(user.Password, request.Password); err != nil {
		response.BadRequest(c, "Mật khẩu không đúng")
		return
	}

	if !user.IsVerified {
		response.BadRequest(c, "Tài khoản chưa được xác thực")
		return
	}

	if user.Status == constants.UserStatusBanned {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.CreateToken(&user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User:        convertToUserResponse(&user),
	})
}

// AuthGoogle đăng nhập bằng tài khoản Google
func AuthGoogle(c *gin.Context) {
	var request dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := services.VerifyGoogleIDToken(request.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	var user models.User
	err = config.DB.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:        name,
			Email:       email,
			Avatar:      picture,
			IsVerified:  true,
			Role:        constants.RoleRenter,
			PhoneNumber: fmt.Sprintf("0%d", time.Now().UnixNano()%1e10),
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if err != nil {
		response.ServerError(c)
		return
	}

	if user.Status == constants.UserStatusBanned {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.CreateToken(&user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User:        convertToUserResponse(&user),
	})
}

// ForgetPassword gửi mã đặt lại mật khẩu qua email
func ForgetPassword(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Code = services.GenerateVerificationCode()
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendVerificationEmail(user.Email, user.Code); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã gửi mã đặt lại mật khẩu"})
}

// ResetPassword đặt lại mật khẩu bằng mã xác thực
func ResetPassword(c *gin.Context) {
	var request dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Code != request.Code {
		response.BadRequest(c, "Mã xác thực không đúng")
		return
	}

	if services.CodeExpired(user.CodeCreatedAt) {
		response.BadRequest(c, "Mã xác thực đã hết hạn")
		return
	}

	hashedPassword, err := services.HashPassword(request.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Password = hashedPassword
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đặt lại mật khẩu thành công"})
}

// Logout đăng xuất (client tự hủy token)
func Logout(c *gin.Context) {
	response.Success(c, gin.H{"message": "Đăng xuất thành công"})
}
