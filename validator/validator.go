package validator

import (
	"regexp"

	"homestay/errors"
	"homestay/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^0\d{9,10}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateReview validate thông tin đánh giá
func ValidateReview(review *models.Review) error {
	if review.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "PropertyID không được để trống", nil)
	}

	if err := review.ValidateStar(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao phải từ 1 đến 5", err)
	}

	return nil
}

// ValidatePolicyRules validate danh sách rule của chính sách hủy
func ValidatePolicyRules(rules []models.CancellationRule) error {
	if len(rules) == 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPolicy, "Chính sách hủy phải có ít nhất một rule", nil)
	}

	seen := make(map[int]bool)
	for i := range rules {
		if err := rules[i].ValidatePercentage(); err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, "Phần trăm hoàn tiền phải từ 0 đến 100", err)
		}
		if rules[i].DaysBeforeCheckIn < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Ngưỡng số ngày không được âm", nil)
		}
		if seen[rules[i].DaysBeforeCheckIn] {
			return errors.NewAppError(errors.ErrCodeValidation, "Ngưỡng số ngày bị trùng trong chính sách", nil)
		}
		seen[rules[i].DaysBeforeCheckIn] = true
	}

	return nil
}
