package dto

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"` // Email hoặc số điện thoại
	Password   string `json:"password" binding:"required"`
}

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
}

// GoogleAuthRequest là DTO cho request đăng nhập Google
type GoogleAuthRequest struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// VerifyCodeRequest là DTO cho request xác thực mã
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ResetPasswordRequest là DTO cho request đặt lại mật khẩu
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// LoginResponse là DTO cho response đăng nhập
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}
