package controllers

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"homestay/builders"
	"homestay/commands"
	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/errors"
	"homestay/models"
	"homestay/response"
	"homestay/services"
	"homestay/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// Phần trăm giảm giá cho booking đầu tiên của người thuê
const firstBookingDiscountPercent = 10

var notifierMelody *melody.Melody

// InitNotifier thiết lập melody instance cho thông báo realtime
func InitNotifier(m *melody.Melody) {
	notifierMelody = m
}

func broadcastBookingStatus(bookingID uint, status int) {
	if notifierMelody == nil {
		return
	}
	message := notification.NewMessageBuilder(bookingID, constants.BookingStatusName(status)).Build()
	if err := notification.NewMelodyService(notifierMelody).SendMessage(message); err != nil {
		log.Printf("Lỗi khi gửi thông báo booking %d: %v", bookingID, err)
	}
}

func invalidateBookingCache(userID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "bookings:all")
	_ = services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("bookings:all:user:%d", userID))
	_ = services.DeleteFromRedis(config.Ctx, rdb, "properties:all")
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	var user dto.ActorResponse
	if booking.UserID != 0 {
		user = dto.ActorResponse{Name: booking.User.Name, Email: booking.User.Email, PhoneNumber: booking.User.PhoneNumber}
	} else {
		user = dto.ActorResponse{Name: booking.GuestName, Email: booking.GuestEmail, PhoneNumber: booking.GuestPhone}
	}

	return dto.BookingResponse{
		ID:             booking.ID,
		User:           user,
		Property:       convertToBookingPropertyResponse(booking.Property),
		Room:           convertToBookingRoomResponse(booking.Room),
		CheckInDate:    booking.CheckInDate.Format(dto.DateLayout),
		CheckOutDate:   booking.CheckOutDate.Format(dto.DateLayout),
		Status:         booking.Status,
		StatusName:     constants.BookingStatusName(booking.Status),
		NumberOfGuests: booking.NumberOfGuests,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
		Price:          booking.Price,
		DiscountPrice:  booking.DiscountPrice,
		TotalPrice:     booking.TotalPrice,
	}
}

// CreateCheckoutSession tạo phiên thanh toán cho yêu cầu đặt phòng.
// Booking chỉ được tạo sau khi phiên được thanh toán thành công.
func CreateCheckoutSession(c *gin.Context) {
	currentUserID, _, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkInDate, err := dto.ParseDate(request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOutDate, err := dto.ParseDate(request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	if !checkOutDate.After(checkInDate) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	today := services.StartOfDay(time.Now())
	if checkInDate.Before(today) {
		response.BadRequest(c, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Parent").First(&room, request.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if room.Status != constants.RoomStatusAvailable ||
		room.Parent.Status != constants.PropertyStatusApproved {
		response.BadRequest(c, "Phòng hiện không nhận đặt")
		return
	}

	if request.NumberOfGuests > room.People {
		response.BadRequest(c, "Số khách vượt quá sức chứa của phòng")
		return
	}

	// Pre-check lạc quan, kiểm tra cuối cùng nằm trong transaction khi tạo booking
	bookingService := newBookingService()
	available, err := bookingService.IsRangeAvailable(c.Request.Context(), room.ID, checkInDate, checkOutDate)
	if err != nil {
		response.ServerError(c)
		return
	}
	if !available {
		response.Conflict(c, "Phòng đã được đặt trong khoảng thời gian này")
		return
	}

	numDays := int(checkOutDate.Sub(checkInDate).Hours() / 24)
	price := room.Price * numDays

	discountPrice := 0.0
	isFirst, err := bookingService.IsFirstBooking(c.Request.Context(), currentUserID)
	if err != nil {
		response.ServerError(c)
		return
	}
	if isFirst {
		discountPrice = float64(price*firstBookingDiscountPercent) / 100
	}

	totalPrice := float64(price) - discountPrice

	gateway := services.NewGatewayClientFromEnv()
	session, err := gateway.CreateSession(totalPrice, "VND", map[string]string{
		"userId":         strconv.FormatUint(uint64(currentUserID), 10),
		"roomId":         strconv.FormatUint(uint64(room.ID), 10),
		"propertyId":     strconv.FormatUint(uint64(room.PropertyID), 10),
		"checkInDate":    request.CheckInDate,
		"checkOutDate":   request.CheckOutDate,
		"numberOfGuests": strconv.Itoa(request.NumberOfGuests),
		"guestName":      request.GuestName,
		"guestEmail":     request.GuestEmail,
		"guestPhone":     request.GuestPhone,
		"price":          strconv.Itoa(price),
		"discountPrice":  fmt.Sprintf("%.2f", discountPrice),
		"totalPrice":     fmt.Sprintf("%.2f", totalPrice),
	})
	if err != nil {
		response.UpstreamError(c, "Không tạo được phiên thanh toán")
		return
	}

	response.Success(c, dto.CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

func bookingFromSession(session *services.CheckoutSession, status int) (*models.Booking, error) {
	userID, err := strconv.ParseUint(session.Metadata["userId"], 10, 64)
	if err != nil {
		return nil, err
	}
	roomID, err := strconv.ParseUint(session.Metadata["roomId"], 10, 64)
	if err != nil {
		return nil, err
	}
	propertyID, err := strconv.ParseUint(session.Metadata["propertyId"], 10, 64)
	if err != nil {
		return nil, err
	}
	checkInDate, err := dto.ParseDate(session.Metadata["checkInDate"])
	if err != nil {
		return nil, err
	}
	checkOutDate, err := dto.ParseDate(session.Metadata["checkOutDate"])
	if err != nil {
		return nil, err
	}
	numberOfGuests, _ := strconv.Atoi(session.Metadata["numberOfGuests"])
	price, _ := strconv.Atoi(session.Metadata["price"])
	discountPrice, _ := strconv.ParseFloat(session.Metadata["discountPrice"], 64)
	totalPrice, _ := strconv.ParseFloat(session.Metadata["totalPrice"], 64)

	booking := builders.NewBookingBuilder().
		WithUser(uint(userID)).
		WithRoom(uint(roomID), uint(propertyID)).
		WithStatus(status).
		WithGuestInfo(session.Metadata["guestName"], session.Metadata["guestPhone"], session.Metadata["guestEmail"]).
		WithDates(checkInDate, checkOutDate).
		WithGuests(numberOfGuests).
		WithPrice(price, discountPrice, totalPrice).
		Build()
	return booking, nil
}

// CheckoutReturn xử lý redirect từ cổng thanh toán sau khi người dùng
// hoàn tất hoặc hủy thanh toán. Chỉ phiên đã thanh toán mới sinh booking
// giữ phòng; phiên hủy sinh booking thất bại để đối soát.
func CheckoutReturn(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.BadRequest(c, "Thiếu session_id")
		return
	}

	// Idempotent: phiên đã xử lý rồi thì trả lại kết quả cũ
	var existingPayment models.Payment
	if err := config.DB.Where("session_id = ?", sessionID).First(&existingPayment).Error; err == nil {
		var booking models.Booking
		if err := config.DB.Preload("User").Preload("Property.City").Preload("Room").
			First(&booking, existingPayment.BookingID).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, convertToBookingResponse(booking))
		return
	}

	gateway := services.NewGatewayClientFromEnv()
	session, err := gateway.RetrieveSession(sessionID)
	if err != nil {
		response.UpstreamError(c, "Không xác minh được phiên thanh toán")
		return
	}

	if session.PaymentStatus != services.SessionStatusPaid {
		// Phiên không được thanh toán: ghi nhận booking thất bại, không giữ phòng
		booking, err := bookingFromSession(session, constants.BookingStatusFailed)
		if err != nil {
			response.BadRequest(c, "Phiên thanh toán thiếu thông tin đặt phòng")
			return
		}
		if err := commands.NewCreateBookingCommand(booking, config.DB).Execute(); err != nil {
			response.ServerError(c)
			return
		}
		payment := models.Payment{
			BookingID: booking.ID,
			SessionID: sessionID,
			Amount:    booking.TotalPrice,
			Status:    constants.PaymentStatusFailed,
		}
		if err := config.DB.Create(&payment).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.BadRequest(c, "Phiên thanh toán chưa được thanh toán")
		return
	}

	booking, err := bookingFromSession(session, constants.BookingStatusPending)
	if err != nil {
		response.BadRequest(c, "Phiên thanh toán thiếu thông tin đặt phòng")
		return
	}

	bookingService := newBookingService()
	if err := bookingService.CreateWithGuard(c.Request.Context(), booking); err != nil {
		if err == errors.ErrRoomUnavailable {
			// Khách đã trả tiền nhưng phòng vừa bị giữ bởi booking khác:
			// ghi nhận thất bại và đánh dấu hoàn toàn bộ tiền
			booking.Status = constants.BookingStatusFailed
			if err := commands.NewCreateBookingCommand(booking, config.DB).Execute(); err != nil {
				response.ServerError(c)
				return
			}
			now := time.Now()
			payment := models.Payment{
				BookingID:    booking.ID,
				SessionID:    sessionID,
				Amount:       booking.TotalPrice,
				RefundAmount: booking.TotalPrice,
				Status:       constants.PaymentStatusRefunded,
				PaymentDate:  &now,
			}
			if err := config.DB.Create(&payment).Error; err != nil {
				response.ServerError(c)
				return
			}
			response.Conflict(c, "Phòng đã được đặt trong khoảng thời gian này, tiền sẽ được hoàn lại")
			return
		}
		response.ServerError(c)
		return
	}

	now := time.Now()
	payment := models.Payment{
		BookingID:   booking.ID,
		SessionID:   sessionID,
		Amount:      booking.TotalPrice,
		Status:      constants.PaymentStatusSuccess,
		PaymentDate: &now,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").Preload("Property.City").Preload("Room").
		First(booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponse := convertToBookingResponse(*booking)
	if bookingResponse.User.Email != "" {
		if err := services.SendBookingEmail(bookingResponse.User.Email, booking.ID, booking.TotalPrice,
			bookingResponse.CheckInDate, bookingResponse.CheckOutDate); err != nil {
			fmt.Println("Gửi email không thành công:", err)
		}
	}

	broadcastBookingStatus(booking.ID, booking.Status)
	invalidateBookingCache(booking.UserID)
	response.Success(c, bookingResponse)
}

// loadBookingsForRole lấy danh sách booking trong phạm vi quyền của người gọi
func loadBookingsForRole(userID uint, role int) ([]models.Booking, error) {
	baseTx := config.DB.Model(&models.Booking{}).
		Preload("Property.City").
		Preload("Room").
		Preload("User")

	switch role {
	case constants.RoleOwner:
		baseTx = baseTx.Where("bookings.property_id IN (?)",
			config.DB.Model(&models.Property{}).Select("id").Where("user_id = ?", userID))
	case constants.RoleModerator:
		var moderator models.User
		if err := config.DB.First(&moderator, userID).Error; err != nil {
			return nil, err
		}
		if len(moderator.PropertyIDs) == 0 {
			return []models.Booking{}, nil
		}
		baseTx = baseTx.Where("bookings.property_id IN ?", []int64(moderator.PropertyIDs))
	}

	var bookings []models.Booking
	if err := baseTx.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBookings lấy danh sách booking có filter và phân trang (owner/moderator/admin)
func GetBookings(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if currentUserRole == constants.RoleRenter {
		response.Forbidden(c)
		return
	}

	cacheKey := fmt.Sprintf("bookings:all:user:%d", currentUserID)
	rdb, redisErr := config.ConnectRedis()

	var allBookings []models.Booking
	if redisErr != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings) != nil || len(allBookings) == 0 {
		var err error
		allBookings, err = loadBookingsForRole(currentUserID, currentUserRole)
		if err != nil {
			response.ServerError(c)
			return
		}

		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
			}
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	phoneStr := c.Query("phoneNumber")
	priceStr := c.Query("price")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
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

	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(booking.Property.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if phoneStr != "" {
			phone := booking.User.PhoneNumber
			if phone == "" {
				phone = booking.GuestPhone
			}
			if !strings.Contains(strings.ToLower(phone), strings.ToLower(phoneStr)) {
				continue
			}
		}
		if priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err == nil && booking.TotalPrice < price {
				continue
			}
		}
		if fromDateStr != "" {
			fromDateISO, err := ConvertDateToISOFormat(fromDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if booking.CheckInDate.Before(fromDateISO) {
				continue
			}
		}
		if toDateStr != "" {
			toDateISO, err := ConvertDateToISOFormat(toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if booking.CheckOutDate.After(toDateISO) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatusFilter, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatusFilter {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	// Xếp theo update mới nhất
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filteredBookings))
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

// GetBookingsByUser lấy lịch sử booking của người thuê hiện tại
func GetBookingsByUser(c *gin.Context) {
	currentUserID, _, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
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

	var totalBookings int64
	if err := config.DB.Model(&models.Booking{}).
		Where("user_id = ?", currentUserID).
		Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Preload("User").
		Preload("Property.City").
		Preload("Room").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

// GetBookingDetail lấy chi tiết booking
func GetBookingDetail(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingId := c.Param("id")

	var booking models.Booking
	if err := config.DB.
		Preload("User").
		Preload("Property.City").
		Preload("Room").
		First(&booking, bookingId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canAccessBooking(&booking, currentUserID, currentUserRole) {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

func canAccessBooking(booking *models.Booking, userID uint, role int) bool {
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleModerator:
		var moderator models.User
		if err := config.DB.First(&moderator, userID).Error; err != nil {
			return false
		}
		return moderatorManagesProperty(&moderator, booking.PropertyID)
	case constants.RoleOwner:
		var property models.Property
		if err := config.DB.First(&property, booking.PropertyID).Error; err != nil {
			return false
		}
		return property.UserID == userID || booking.UserID == userID
	default:
		return booking.UserID == userID
	}
}

// CancelBooking hủy booking theo chính sách hủy của chỗ ở. Người thuê và
// chủ nhà đều hủy được; chủ nhà hủy thì khách luôn được hoàn toàn bộ tiền.
func CancelBooking(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.
		Preload("User").
		Preload("Property.Policy.Rules").
		First(&booking, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	isRenter := booking.UserID == currentUserID
	isOwner := booking.Property.UserID == currentUserID || currentUserRole == constants.RoleAdmin
	if !isRenter && !isOwner {
		response.Forbidden(c)
		return
	}

	state := models.GetBookingState(booking.Status)

	var refundAmount float64
	var refundPercentage int

	if isRenter && !isOwner {
		if err := state.CancelByRenter(&booking); err != nil {
			response.BadRequest(c, "Booking không thể hủy ở trạng thái hiện tại")
			return
		}
		var err error
		refundAmount, refundPercentage, err = services.ComputeRefund(
			booking.Property.Policy, time.Now(), booking.CheckInDate, booking.TotalPrice)
		if err != nil {
			log.Printf("Chính sách hủy của chỗ ở %d không hợp lệ: %v", booking.PropertyID, err)
			response.ServerError(c)
			return
		}
	} else {
		if err := state.CancelByOwner(&booking); err != nil {
			response.BadRequest(c, "Booking không thể hủy ở trạng thái hiện tại")
			return
		}
		// Chủ nhà hủy: hoàn toàn bộ tiền cho khách
		refundAmount = booking.TotalPrice
		refundPercentage = 100
	}

	booking.UpdatedAt = time.Now()
	if err := commands.NewUpdateBookingCommand(&booking, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	// Cập nhật payment sang trạng thái hoàn tiền
	var payment models.Payment
	if err := config.DB.Where("booking_id = ? AND status = ?",
		booking.ID, constants.PaymentStatusSuccess).First(&payment).Error; err == nil {
		payment.RefundAmount = refundAmount
		payment.Status = constants.PaymentStatusRefunded
		if err := config.DB.Save(&payment).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	if booking.User.Email != "" {
		if err := services.SendCancellationEmail(booking.User.Email, booking.ID, refundAmount, refundPercentage); err != nil {
			fmt.Println("Gửi email không thành công:", err)
		}
	}

	broadcastBookingStatus(booking.ID, booking.Status)
	invalidateBookingCache(booking.UserID)

	response.Success(c, dto.CancelBookingResponse{
		BookingID:        booking.ID,
		Status:           booking.Status,
		StatusName:       constants.BookingStatusName(booking.Status),
		RefundPercentage: refundPercentage,
		RefundAmount:     refundAmount,
	})
}

// PreviewRefund xem trước số tiền được hoàn nếu hủy booking bây giờ
func PreviewRefund(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingId := c.Param("id")

	var booking models.Booking
	if err := config.DB.
		Preload("Property.Policy.Rules").
		First(&booking, bookingId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canAccessBooking(&booking, currentUserID, currentUserRole) {
		response.Forbidden(c)
		return
	}

	refundAmount, refundPercentage, err := services.ComputeRefund(
		booking.Property.Policy, time.Now(), booking.CheckInDate, booking.TotalPrice)
	if err != nil {
		log.Printf("Chính sách hủy của chỗ ở %d không hợp lệ: %v", booking.PropertyID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, dto.RefundPreviewResponse{
		BookingID:         booking.ID,
		DaysBeforeCheckIn: services.DaysBeforeCheckIn(time.Now(), booking.CheckInDate),
		RefundPercentage:  refundPercentage,
		RefundAmount:      refundAmount,
	})
}

// ChangeBookingStatus chuyển trạng thái booking (chủ nhà xác nhận, admin can thiệp)
func ChangeBookingStatus(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Property").First(&booking, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if booking.Property.UserID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	state := models.GetBookingState(booking.Status)

	var err error
	switch request.Status {
	case constants.BookingStatusConfirmed:
		err = state.Confirm(&booking)
	case constants.BookingStatusCancelledByOwner:
		err = state.CancelByOwner(&booking)
	case constants.BookingStatusCompleted:
		err = state.Complete(&booking)
	case constants.BookingStatusFailed:
		err = state.Fail(&booking)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}
	if err != nil {
		response.BadRequest(c, "Không thể chuyển sang trạng thái này")
		return
	}

	booking.UpdatedAt = time.Now()
	if err := commands.NewUpdateBookingCommand(&booking, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	broadcastBookingStatus(booking.ID, booking.Status)
	invalidateBookingCache(booking.UserID)
	response.Success(c, gin.H{"message": "Trạng thái booking đã được cập nhật"})
}
