package validator

import (
	"testing"

	"homestay/constants"
	"homestay/errors"
	"homestay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *models.User {
	return &models.User{
		Email:       "khach@example.com",
		Password:    "matkhau123",
		PhoneNumber: "0912345678",
		Role:        constants.RoleRenter,
	}
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser(validUser()))

	user := validUser()
	user.Email = ""
	err := ValidateUser(user)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	user = validUser()
	user.Email = "khong-phai-email"
	err = ValidateUser(user)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)

	user = validUser()
	user.Password = "12345"
	err = ValidateUser(user)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	user = validUser()
	user.PhoneNumber = "12345"
	err = ValidateUser(user)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidPhone, errors.GetAppError(err).Code)

	user = validUser()
	user.Role = 5
	err = ValidateUser(user)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRole, errors.GetAppError(err).Code)
}

func TestValidateReview(t *testing.T) {
	review := &models.Review{PropertyID: 1, Star: 4}
	assert.NoError(t, ValidateReview(review))

	review = &models.Review{Star: 4}
	assert.Error(t, ValidateReview(review))

	review = &models.Review{PropertyID: 1, Star: 0}
	assert.Error(t, ValidateReview(review))

	review = &models.Review{PropertyID: 1, Star: 6}
	assert.Error(t, ValidateReview(review))
}

func TestValidatePolicyRules(t *testing.T) {
	rules := []models.CancellationRule{
		{DaysBeforeCheckIn: 7, RefundPercentage: 100},
		{DaysBeforeCheckIn: 3, RefundPercentage: 50},
		{DaysBeforeCheckIn: 0, RefundPercentage: 0},
	}
	assert.NoError(t, ValidatePolicyRules(rules))

	assert.Error(t, ValidatePolicyRules(nil))

	bad := []models.CancellationRule{{DaysBeforeCheckIn: 7, RefundPercentage: 120}}
	assert.Error(t, ValidatePolicyRules(bad))

	bad = []models.CancellationRule{{DaysBeforeCheckIn: -1, RefundPercentage: 50}}
	assert.Error(t, ValidatePolicyRules(bad))

	bad = []models.CancellationRule{
		{DaysBeforeCheckIn: 7, RefundPercentage: 100},
		{DaysBeforeCheckIn: 7, RefundPercentage: 50},
	}
	assert.Error(t, ValidatePolicyRules(bad))
}
