package services

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"homestay/errors"
	"homestay/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword so sánh mật khẩu với chuỗi băm
func CheckPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu không đúng", err)
	}
	return nil
}

// CreateToken tạo access token chứa userID và role
func CreateToken(user *models.User) (string, error) {
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Chưa cấu hình ACCESS_TOKEN_SECRET", nil)
	}

	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": user.ID,
			"role":   user.Role,
		},
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateVerificationCode sinh mã xác thực 6 chữ số
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// CodeExpired kiểm tra mã xác thực đã hết hạn chưa (15 phút)
func CodeExpired(codeCreatedAt time.Time) bool {
	return time.Since(codeCreatedAt) > 15*time.Minute
}

// SendVerificationEmail gửi mã xác thực cho người dùng
func SendVerificationEmail(email, code string) error {
	mess := fmt.Sprintf("Mã xác thực của bạn là: <strong>%s</strong>. Mã có hiệu lực trong 15 phút.", code)
	return SendNews(email, "Mã xác thực tài khoản", mess)
}

// VerifyGoogleIDToken xác thực id token từ Google Sign-In
func VerifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenID, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token Google không hợp lệ", err)
	}
	return payload, nil
}
