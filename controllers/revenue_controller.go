package controllers

import (
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
)

// GetOwnerRevenue thống kê doanh thu của chủ nhà hiện tại.
// Doanh thu tính trên các booking hoàn thành, trừ phần đã hoàn cho khách.
func GetOwnerRevenue(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if currentUserRole != constants.RoleOwner && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	fromDate := services.StartOfDay(time.Now().AddDate(0, -1, 0))
	toDate := time.Now()
	if fromDateStr := c.Query("fromDate"); fromDateStr != "" {
		parsed, err := ConvertDateToISOFormat(fromDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		fromDate = parsed
	}
	if toDateStr := c.Query("toDate"); toDateStr != "" {
		parsed, err := ConvertDateToISOFormat(toDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		toDate = parsed
	}

	ownedProperties := config.DB.Model(&models.Property{}).
		Select("id").Where("user_id = ?", currentUserID)

	var bookings []models.Booking
	if err := config.DB.
		Where("property_id IN (?) AND status IN ? AND updated_at BETWEEN ? AND ?",
			ownedProperties,
			[]int{constants.BookingStatusConfirmed, constants.BookingStatusCompleted},
			fromDate, toDate).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	totalRevenue := 0.0
	revenueByDay := make(map[string]float64)
	countByDay := make(map[string]int)
	for _, booking := range bookings {
		totalRevenue += booking.TotalPrice
		day := booking.UpdatedAt.Format("02/01/2006")
		revenueByDay[day] += booking.TotalPrice
		countByDay[day]++
	}

	// Trừ phần tiền đã hoàn cho khách trong kỳ
	var refunds []models.Payment
	if err := config.DB.
		Where("booking_id IN (?) AND status = ?",
			config.DB.Model(&models.Booking{}).Select("id").Where("property_id IN (?)", ownedProperties),
			constants.PaymentStatusRefunded).
		Find(&refunds).Error; err != nil {
		response.ServerError(c)
		return
	}
	refundedTotal := 0.0
	for _, payment := range refunds {
		refundedTotal += payment.RefundAmount
	}

	var dailyRevenue []dto.DayRevenue
	for day := services.StartOfDay(fromDate); !day.After(toDate); day = day.AddDate(0, 0, 1) {
		key := day.Format("02/01/2006")
		dailyRevenue = append(dailyRevenue, dto.DayRevenue{
			Date:         key,
			Revenue:      revenueByDay[key],
			BookingCount: countByDay[key],
		})
	}

	response.Success(c, dto.OwnerRevenueResponse{
		FromDate:      fromDate.Format("02/01/2006"),
		ToDate:        toDate.Format("02/01/2006"),
		TotalRevenue:  totalRevenue - refundedTotal,
		RefundedTotal: refundedTotal,
		BookingCount:  len(bookings),
		DailyRevenue:  dailyRevenue,
	})
}

// GetAdminStats thống kê tổng quan cho admin
func GetAdminStats(c *gin.Context) {
	var totalUsers, totalOwners, totalProperties, pendingProperties int64
	var totalBookings, activeBookings, totalReviews int64

	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Model(&models.User{}).
		Where("role = ?", constants.RoleOwner).Count(&totalOwners).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Model(&models.Property{}).Count(&totalProperties).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Model(&models.Property{}).
		Where("status = ?", constants.PropertyStatusPending).Count(&pendingProperties).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Model(&models.Booking{}).Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Model(&models.Booking{}).
		Where("status IN ?", []int{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
		Count(&activeBookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Model(&models.Review{}).Count(&totalReviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalPaid float64
	if err := config.DB.Model(&models.Payment{}).
		Where("status IN ?", []int{constants.PaymentStatusSuccess, constants.PaymentStatusRefunded}).
		Select("COALESCE(SUM(amount - refund_amount), 0)").
		Scan(&totalPaid).Error; err != nil {
		response.ServerError(c)
		return
	}

	var revenueToday float64
	startOfToday := services.StartOfDay(time.Now())
	if err := config.DB.Model(&models.Payment{}).
		Where("status IN ? AND payment_date >= ?",
			[]int{constants.PaymentStatusSuccess, constants.PaymentStatusRefunded}, startOfToday).
		Select("COALESCE(SUM(amount - refund_amount), 0)").
		Scan(&revenueToday).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"totalUsers":        totalUsers,
		"totalOwners":       totalOwners,
		"totalProperties":   totalProperties,
		"pendingProperties": pendingProperties,
		"totalBookings":     totalBookings,
		"activeBookings":    activeBookings,
		"totalReviews":      totalReviews,
		"netRevenue":        totalPaid,
		"revenueToday":      revenueToday,
	})
}
