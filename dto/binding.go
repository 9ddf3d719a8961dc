package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout định dạng ngày dùng trong request
const DateLayout = "02/01/2006"

// RegisterCustomValidations đăng ký rule validate ngày dd/MM/yyyy cho binding tag
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
	}
}

// ParseDate chuyển chuỗi ngày dd/MM/yyyy thành time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}
