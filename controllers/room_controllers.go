package controllers

import (
	"strconv"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/services"
	"homestay/services/logger"

	"github.com/gin-gonic/gin"
)

func newBookingService() *services.BookingService {
	return services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
}

// refreshPropertyMinPrice cập nhật giá hiển thị của chỗ ở theo phòng rẻ nhất
func refreshPropertyMinPrice(propertyID uint) {
	var minPrice int
	err := config.DB.Model(&models.Room{}).
		Where("property_id = ? AND status != ?", propertyID, constants.RoomStatusMaintenance).
		Select("COALESCE(MIN(price), 0)").
		Scan(&minPrice).Error
	if err != nil {
		return
	}
	_ = config.DB.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("price", minPrice).Error
}

// GetRoomsByProperty lấy danh sách phòng của một chỗ ở
func GetRoomsByProperty(c *gin.Context) {
	propertyIdStr := c.Query("propertyId")
	if propertyIdStr == "" {
		response.BadRequest(c, "Thiếu propertyId")
		return
	}

	var rooms []models.Room
	if err := config.DB.
		Where("property_id = ?", propertyIdStr).
		Order("price ASC").
		Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithTotal(c, roomResponses, len(roomResponses))
}

// GetRoomDetail lấy chi tiết phòng
func GetRoomDetail(c *gin.Context) {
	roomId := c.Param("id")

	var room models.Room
	if err := config.DB.Preload("Parent").First(&room, roomId).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// CreateRoom tạo phòng mới trong chỗ ở (chủ nhà)
func CreateRoom(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateRoomRequest
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

	room := models.Room{
		PropertyID:  request.PropertyID,
		RoomName:    request.RoomName,
		Price:       request.Price,
		People:      request.People,
		NumBed:      request.NumBed,
		NumTolet:    request.NumTolet,
		Acreage:     request.Acreage,
		Description: request.Description,
		Avatar:      request.Avatar,
		Img:         request.Img,
		Status:      constants.RoomStatusAvailable,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshPropertyMinPrice(room.PropertyID)
	invalidatePropertyCache()
	response.Success(c, convertToRoomResponse(room))
}

// UpdateRoom cập nhật phòng (chủ nhà)
func UpdateRoom(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Parent").First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if room.Parent.UserID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if request.RoomName != "" {
		room.RoomName = request.RoomName
	}
	if request.Price > 0 {
		room.Price = request.Price
	}
	if request.People > 0 {
		room.People = request.People
	}
	if request.NumBed > 0 {
		room.NumBed = request.NumBed
	}
	if request.NumTolet > 0 {
		room.NumTolet = request.NumTolet
	}
	if request.Acreage > 0 {
		room.Acreage = request.Acreage
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if request.Avatar != "" {
		room.Avatar = request.Avatar
	}
	if request.Img != nil {
		room.Img = request.Img
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshPropertyMinPrice(room.PropertyID)
	invalidatePropertyCache()
	response.Success(c, convertToRoomResponse(room))
}

// ChangeRoomStatus đổi trạng thái phòng (chủ nhà)
func ChangeRoomStatus(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Parent").First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if room.Parent.UserID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshPropertyMinPrice(room.PropertyID)
	invalidatePropertyCache()
	response.Success(c, gin.H{"message": "Trạng thái phòng đã được cập nhật"})
}

// GetRoomBookingDates lấy các khoảng ngày phòng đã bị giữ
func GetRoomBookingDates(c *gin.Context) {
	roomIdStr := c.Query("roomId")
	roomId, err := strconv.Atoi(roomIdStr)
	if err != nil || roomId <= 0 {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	bookingService := newBookingService()
	bookings, err := bookingService.GetActiveBookings(c.Request.Context(), uint(roomId))
	if err != nil {
		response.ServerError(c)
		return
	}

	ranges := make([]dto.RoomBookedRange, 0, len(bookings))
	for _, booking := range bookings {
		ranges = append(ranges, dto.RoomBookedRange{
			CheckInDate:  booking.CheckInDate.Format(dto.DateLayout),
			CheckOutDate: booking.CheckOutDate.Format(dto.DateLayout),
			Status:       booking.Status,
		})
	}

	response.SuccessWithTotal(c, ranges, len(ranges))
}

// CheckRoomAvailability kiểm tra phòng có trống trong khoảng ngày không
func CheckRoomAvailability(c *gin.Context) {
	roomIdStr := c.Query("roomId")
	roomId, err := strconv.Atoi(roomIdStr)
	if err != nil || roomId <= 0 {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	checkInDate, err := ConvertDateToISOFormat(c.Query("checkInDate"))
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOutDate, err := ConvertDateToISOFormat(c.Query("checkOutDate"))
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	if !checkOutDate.After(checkInDate) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomId).Error; err != nil {
		response.NotFound(c)
		return
	}

	available := room.Status == constants.RoomStatusAvailable
	if available {
		bookingService := newBookingService()
		available, err = bookingService.IsRangeAvailable(c.Request.Context(), uint(roomId), checkInDate, checkOutDate)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, dto.AvailabilityResponse{
		RoomID:       uint(roomId),
		CheckInDate:  checkInDate.Format(dto.DateLayout),
		CheckOutDate: checkOutDate.Format(dto.DateLayout),
		Available:    available,
	})
}
