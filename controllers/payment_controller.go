package controllers

import (
	"strconv"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"

	"github.com/gin-gonic/gin"
)

func convertToPaymentResponse(payment models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:           payment.ID,
		PaymentCode:  payment.PaymentCode,
		BookingID:    payment.BookingID,
		SessionID:    payment.SessionID,
		Amount:       payment.Amount,
		RefundAmount: payment.RefundAmount,
		Status:       payment.Status,
		PaymentDate:  payment.PaymentDate,
		CreatedAt:    payment.CreatedAt,
		User: dto.ActorResponse{
			Name:        payment.Booking.User.Name,
			Email:       payment.Booking.User.Email,
			PhoneNumber: payment.Booking.User.PhoneNumber,
		},
	}
}

// GetPayments lấy danh sách thanh toán có filter và phân trang (owner/admin)
func GetPayments(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if currentUserRole != constants.RoleOwner && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Payment{}).
		Preload("Booking.User")

	if currentUserRole == constants.RoleOwner {
		tx = tx.Where("payments.booking_id IN (?)",
			config.DB.Model(&models.Booking{}).Select("id").Where("property_id IN (?)",
				config.DB.Model(&models.Property{}).Select("id").Where("user_id = ?", currentUserID)))
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if parsedStatus, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("payments.status = ?", parsedStatus)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	if err := tx.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		paymentResponses = append(paymentResponses, convertToPaymentResponse(payment))
	}

	response.SuccessWithPagination(c, paymentResponses, page, limit, int(total))
}

// GetPaymentDetail lấy chi tiết thanh toán
func GetPaymentDetail(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	paymentId := c.Param("id")

	var payment models.Payment
	if err := config.DB.
		Preload("Booking.User").
		First(&payment, paymentId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canAccessBooking(&payment.Booking, currentUserID, currentUserRole) {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToPaymentResponse(payment))
}
