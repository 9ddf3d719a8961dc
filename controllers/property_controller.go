package controllers

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// Rule mặc định khi chủ nhà chưa thiết lập chính sách hủy
var defaultPolicyRules = []models.CancellationRule{
	{DaysBeforeCheckIn: 7, RefundPercentage: 100},
	{DaysBeforeCheckIn: 3, RefundPercentage: 50},
	{DaysBeforeCheckIn: 0, RefundPercentage: 0},
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func reviewStats(reviews []models.Review) (float64, int) {
	total := 0
	count := 0
	for _, review := range reviews {
		if review.Hidden {
			continue
		}
		total += review.Star
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return float64(total) / float64(count), count
}

func convertToPropertyResponse(property models.Property) dto.PropertyResponse {
	avgStar, numReviews := reviewStats(property.Reviews)
	return dto.PropertyResponse{
		ID:               property.ID,
		Name:             property.Name,
		Address:          property.Address,
		City:             property.City.Name,
		Country:          property.Country.Name,
		PropertyType:     property.PropertyType.Name,
		Avatar:           property.Avatar,
		Img:              property.Img,
		ShortDescription: property.ShortDescription,
		Status:           property.Status,
		People:           property.People,
		NumBed:           property.NumBed,
		Price:            property.Price,
		Longitude:        property.Longitude,
		Latitude:         property.Latitude,
		AvgStar:          avgStar,
		NumReviews:       numReviews,
	}
}

// Load dữ liệu từ DB
func loadPropertiesFromDB(allProperties *[]models.Property) error {
	return config.DB.Model(&models.Property{}).
		Preload("City").
		Preload("Country").
		Preload("PropertyType").
		Preload("Rooms").
		Preload("Reviews").
		Preload("Amenities").
		Preload("User").
		Find(allProperties).Error
}

func getCachedProperties(c *gin.Context) ([]models.Property, error) {
	cacheKey := "properties:all"

	rdb, err := config.ConnectRedis()
	if err != nil {
		var allProperties []models.Property
		return allProperties, loadPropertiesFromDB(&allProperties)
	}

	var allProperties []models.Property
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allProperties); err == nil && len(allProperties) > 0 {
		return allProperties, nil
	}

	if err := loadPropertiesFromDB(&allProperties); err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allProperties, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách chỗ ở vào Redis: %v", err)
	}
	return allProperties, nil
}

func invalidatePropertyCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "properties:all")
}

// busyRoomIDs trả về các phòng đang bị giữ trong khoảng [fromDate, toDate)
func busyRoomIDs(fromDate, toDate time.Time) (map[uint]bool, error) {
	var bookings []models.Booking
	err := config.DB.
		Where("status IN ? AND check_in_date < ? AND check_out_date > ?",
			[]int{constants.BookingStatusPending, constants.BookingStatusConfirmed}, toDate, fromDate).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	busy := make(map[uint]bool)
	for _, booking := range bookings {
		busy[booking.RoomID] = true
	}
	return busy, nil
}

func parseSearchFilters(c *gin.Context) (*dto.SearchFilters, error) {
	filters := &dto.SearchFilters{}

	if typeStr := c.Query("type"); typeStr != "" {
		if parsed, err := strconv.Atoi(typeStr); err == nil {
			typeID := uint(parsed)
			filters.TypeID = &typeID
		}
	}
	if city := c.Query("city"); city != "" {
		decoded, _ := url.QueryUnescape(city)
		filters.City = decoded
	}
	if country := c.Query("country"); country != "" {
		decoded, _ := url.QueryUnescape(country)
		filters.Country = decoded
	}
	if name := c.Query("name"); name != "" {
		decoded, _ := url.QueryUnescape(name)
		filters.Name = decoded
	}
	if numBedStr := c.Query("numBed"); numBedStr != "" {
		if parsed, err := strconv.Atoi(numBedStr); err == nil {
			filters.NumBed = &parsed
		}
	}
	if peopleStr := c.Query("people"); peopleStr != "" {
		if parsed, err := strconv.Atoi(peopleStr); err == nil {
			filters.People = &parsed
		}
	}
	if priceMinStr := c.Query("priceMin"); priceMinStr != "" {
		if parsed, err := strconv.Atoi(priceMinStr); err == nil {
			filters.PriceMin = &parsed
		}
	}
	if priceMaxStr := c.Query("priceMax"); priceMaxStr != "" {
		if parsed, err := strconv.Atoi(priceMaxStr); err == nil {
			filters.PriceMax = &parsed
		}
	}
	if amenityStr := c.Query("amenities"); amenityStr != "" {
		for _, part := range strings.Split(amenityStr, ",") {
			if parsed, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				filters.AmenityIDs = append(filters.AmenityIDs, parsed)
			}
		}
	}
	if fromDateStr := c.Query("fromDate"); fromDateStr != "" {
		fromDate, err := ConvertDateToISOFormat(fromDateStr)
		if err != nil {
			return nil, fmt.Errorf("sai định dạng fromDate")
		}
		filters.FromDate = &fromDate
	}
	if toDateStr := c.Query("toDate"); toDateStr != "" {
		toDate, err := ConvertDateToISOFormat(toDateStr)
		if err != nil {
			return nil, fmt.Errorf("sai định dạng toDate")
		}
		filters.ToDate = &toDate
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if parsed, err := strconv.Atoi(statusStr); err == nil {
			filters.Status = &parsed
		}
	}

	return filters, nil
}

func propertyMatchesFilters(property *models.Property, filters *dto.SearchFilters, busy map[uint]bool) bool {
	if filters.TypeID != nil && property.PropertyTypeID != *filters.TypeID {
		return false
	}
	if filters.City != "" && !strings.Contains(normalizeInput(property.City.Name), normalizeInput(filters.City)) {
		return false
	}
	if filters.Country != "" && !strings.Contains(normalizeInput(property.Country.Name), normalizeInput(filters.Country)) {
		return false
	}
	if filters.Name != "" && !strings.Contains(normalizeInput(property.Name), normalizeInput(filters.Name)) {
		return false
	}
	if filters.NumBed != nil && property.NumBed < *filters.NumBed {
		return false
	}
	if filters.People != nil && property.People < *filters.People {
		return false
	}
	if filters.PriceMin != nil && property.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && property.Price > *filters.PriceMax {
		return false
	}

	if len(filters.AmenityIDs) > 0 {
		owned := make(map[int]bool)
		for _, amenity := range property.Amenities {
			owned[int(amenity.ID)] = true
		}
		for _, id := range filters.AmenityIDs {
			if !owned[id] {
				return false
			}
		}
	}

	// Lọc theo khoảng ngày: chỗ ở phải còn ít nhất một phòng hoạt động chưa bị giữ
	if filters.FromDate != nil && filters.ToDate != nil && busy != nil {
		hasFreeRoom := false
		for _, room := range property.Rooms {
			if room.Status != constants.RoomStatusAvailable {
				continue
			}
			if !busy[room.ID] {
				hasFreeRoom = true
				break
			}
		}
		if !hasFreeRoom {
			return false
		}
	}

	return true
}

// GetProperties lấy danh sách chỗ ở đã duyệt cho người thuê, có filter và phân trang.
// Filter của lần tìm trước được nhớ theo session và gộp với lần tìm sau.
func GetProperties(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Gộp với filter đã lưu của session
	if sessionId, exists := c.Get("sessionId"); exists {
		if rdb, err := config.ConnectRedis(); err == nil {
			key := sessionId.(string)
			if oldFilters, err := services.GetLastFilters(config.Ctx, rdb, key); err == nil {
				filters = services.MergeFilters(oldFilters, filters)
			}
			if err := services.SaveLastFilters(config.Ctx, rdb, key, filters); err != nil {
				log.Printf("Lỗi khi lưu filter của session: %v", err)
			}
		}
	}

	allProperties, err := getCachedProperties(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	var busy map[uint]bool
	if filters.FromDate != nil && filters.ToDate != nil {
		busy, err = busyRoomIDs(*filters.FromDate, *filters.ToDate)
		if err != nil {
			response.ServerError(c)
			return
		}
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

	filtered := make([]models.Property, 0)
	for _, property := range allProperties {
		// Người thuê chỉ thấy chỗ ở đã duyệt
		if property.Status != constants.PropertyStatusApproved {
			continue
		}
		if !propertyMatchesFilters(&property, filters, busy) {
			continue
		}
		filtered = append(filtered, property)
	}

	total := len(filtered)
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdateAt.After(filtered[j].UpdateAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Property{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(filtered))
	for _, property := range filtered {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(property))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, total)
}

type scoredProperty struct {
	property models.Property
	score    int
}

func prepareCityList(properties []models.Property) []string {
	uniqueValues := make(map[string]bool)
	for _, property := range properties {
		if property.City.Name != "" {
			uniqueValues[normalizeInput(property.City.Name)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculatePropertyScore(query string, property *models.Property, cmCity *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if cmCity.Closest(normalizedQuery) == normalizeInput(property.City.Name) {
		score += 13
	}

	similarity := calculateSimilarity(normalizedQuery, normalizeInput(property.Name))
	if similarity > 0.7 || strings.Contains(normalizedQuery, normalizeInput(property.Name)) {
		score += 20
	}

	if strings.Contains(normalizedQuery, normalizeInput(property.PropertyType.Name)) {
		score += 15
	}

	maxAmenityScore := 12
	amenityScore := 0
	for _, amenity := range property.Amenities {
		normalizedAmenity := normalizeInput(amenity.Name)
		if calculateSimilarity(normalizedQuery, normalizedAmenity) > 0.7 ||
			strings.Contains(normalizedQuery, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	score += amenityScore

	return score
}

// SearchProperties tìm kiếm gần đúng theo câu truy vấn tự do
func SearchProperties(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "Thiếu câu truy vấn")
		return
	}

	allProperties, err := getCachedProperties(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	approved := make([]models.Property, 0, len(allProperties))
	for _, property := range allProperties {
		if property.Status == constants.PropertyStatusApproved {
			approved = append(approved, property)
		}
	}

	cmCity := createMatcher(prepareCityList(approved))

	scoreCh := make(chan scoredProperty, len(approved))
	var wg sync.WaitGroup
	for _, property := range approved {
		wg.Add(1)
		go func(property models.Property) {
			defer wg.Done()
			score := calculatePropertyScore(query, &property, cmCity)
			if score > 0 {
				scoreCh <- scoredProperty{property: property, score: score}
			}
		}(property)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []scoredProperty
	for sp := range scoreCh {
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	propertyResponses := make([]dto.PropertyResponse, 0, len(scored))
	for _, sp := range scored {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(sp.property))
	}

	response.SuccessWithTotal(c, propertyResponses, len(propertyResponses))
}

// GetPropertyDetail lấy chi tiết chỗ ở kèm phòng, đánh giá và chính sách hủy
func GetPropertyDetail(c *gin.Context) {
	propertyId := c.Param("id")

	var property models.Property
	if err := config.DB.
		Preload("City").
		Preload("Country").
		Preload("PropertyType").
		Preload("Rooms").
		Preload("Reviews", "hidden = ?", false).
		Preload("Reviews.User").
		Preload("Amenities").
		Preload("HouseRules").
		Preload("Policy.Rules").
		Preload("User").
		First(&property, propertyId).Error; err != nil {
		response.NotFound(c)
		return
	}

	amenities := make([]string, 0, len(property.Amenities))
	for _, amenity := range property.Amenities {
		amenities = append(amenities, amenity.Name)
	}
	houseRules := make([]string, 0, len(property.HouseRules))
	for _, rule := range property.HouseRules {
		houseRules = append(houseRules, rule.Name)
	}
	roomResponses := make([]dto.RoomResponse, 0, len(property.Rooms))
	for _, room := range property.Rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}
	reviewResponses := make([]dto.ReviewResponse, 0, len(property.Reviews))
	for _, review := range property.Reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	detail := dto.PropertyDetailResponse{
		PropertyResponse: convertToPropertyResponse(property),
		Description:      property.Description,
		TimeCheckIn:      property.TimeCheckIn,
		TimeCheckOut:     property.TimeCheckOut,
		Amenities:        amenities,
		HouseRules:       houseRules,
		Rooms:            roomResponses,
		Reviews:          reviewResponses,
		Policy:           convertToPolicyResponse(property.Policy),
		User: dto.UserInfo{
			ID:     property.User.ID,
			Name:   property.User.Name,
			Avatar: property.User.Avatar,
		},
	}

	response.Success(c, detail)
}

func findOrCreateCountry(name string) (models.Country, error) {
	var country models.Country
	err := config.DB.Where("name = ?", name).First(&country).Error
	if err == gorm.ErrRecordNotFound {
		country = models.Country{Name: name}
		err = config.DB.Create(&country).Error
	}
	return country, err
}

func findOrCreateCity(name string, countryID uint) (models.City, error) {
	var city models.City
	err := config.DB.Where("name = ? AND country_id = ?", name, countryID).First(&city).Error
	if err == gorm.ErrRecordNotFound {
		city = models.City{Name: name, CountryID: countryID}
		err = config.DB.Create(&city).Error
	}
	return city, err
}

// CreateProperty tạo chỗ ở mới (chủ nhà), kèm geocoding địa chỉ và chính sách hủy mặc định
func CreateProperty(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if currentUserRole != constants.RoleOwner && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	var request dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	country, err := findOrCreateCountry(request.Country)
	if err != nil {
		response.ServerError(c)
		return
	}
	city, err := findOrCreateCity(request.City, country.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	property := models.Property{
		UserID:           currentUserID,
		Name:             request.Name,
		Address:          request.Address,
		CountryID:        country.ID,
		CityID:           city.ID,
		PropertyTypeID:   request.PropertyTypeID,
		Avatar:           request.Avatar,
		Img:              request.Img,
		ShortDescription: request.ShortDescription,
		Description:      request.Description,
		Status:           constants.PropertyStatusPending,
		People:           request.People,
		NumBed:           request.NumBed,
		TimeCheckIn:      request.TimeCheckIn,
		TimeCheckOut:     request.TimeCheckOut,
	}

	// Geocoding địa chỉ, lỗi không chặn việc tạo chỗ ở
	if location, err := services.GetLocationFromAddress(request.Address, request.City, request.Country); err == nil {
		property.Latitude = location.Lat
		property.Longitude = location.Lng
	} else {
		log.Printf("Lỗi geocoding cho địa chỉ %s: %v", request.Address, err)
	}

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(request.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Where("id IN ?", request.AmenityIDs).Find(&amenities).Error; err == nil {
			_ = config.DB.Model(&property).Association("Amenities").Append(amenities)
		}
	}
	if len(request.HouseRuleIDs) > 0 {
		var houseRules []models.HouseRule
		if err := config.DB.Where("id IN ?", request.HouseRuleIDs).Find(&houseRules).Error; err == nil {
			_ = config.DB.Model(&property).Association("HouseRules").Append(houseRules)
		}
	}

	// Mỗi chỗ ở luôn có chính sách hủy, mặc định nếu chủ nhà chưa thiết lập
	policy := models.CancellationPolicy{
		PropertyID: property.ID,
		IsCustom:   false,
	}
	for _, rule := range defaultPolicyRules {
		policy.Rules = append(policy.Rules, models.CancellationRule{
			DaysBeforeCheckIn: rule.DaysBeforeCheckIn,
			RefundPercentage:  rule.RefundPercentage,
		})
	}
	if err := config.DB.Create(&policy).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()
	response.Success(c, convertToPropertyResponse(property))
}

// UpdateProperty cập nhật chỗ ở (chủ nhà hoặc admin)
func UpdateProperty(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if property.UserID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if request.Name != "" {
		property.Name = request.Name
	}
	if request.Address != "" {
		property.Address = request.Address
	}
	if request.ShortDescription != "" {
		property.ShortDescription = request.ShortDescription
	}
	if request.Description != "" {
		property.Description = request.Description
	}
	if request.Avatar != "" {
		property.Avatar = request.Avatar
	}
	if request.Img != nil {
		property.Img = request.Img
	}
	if request.People > 0 {
		property.People = request.People
	}
	if request.NumBed > 0 {
		property.NumBed = request.NumBed
	}
	if request.TimeCheckIn != "" {
		property.TimeCheckIn = request.TimeCheckIn
	}
	if request.TimeCheckOut != "" {
		property.TimeCheckOut = request.TimeCheckOut
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(request.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Where("id IN ?", request.AmenityIDs).Find(&amenities).Error; err == nil {
			_ = config.DB.Model(&property).Association("Amenities").Replace(amenities)
		}
	}
	if len(request.HouseRuleIDs) > 0 {
		var houseRules []models.HouseRule
		if err := config.DB.Where("id IN ?", request.HouseRuleIDs).Find(&houseRules).Error; err == nil {
			_ = config.DB.Model(&property).Association("HouseRules").Replace(houseRules)
		}
	}

	invalidatePropertyCache()
	response.Success(c, convertToPropertyResponse(property))
}

// ChangePropertyStatus duyệt/ẩn chỗ ở (moderator phụ trách hoặc admin)
func ChangePropertyStatus(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.ChangePropertyStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	switch currentUserRole {
	case constants.RoleAdmin:
		// Admin duyệt/ẩn mọi chỗ ở
	case constants.RoleModerator:
		var moderator models.User
		if err := config.DB.First(&moderator, currentUserID).Error; err != nil {
			response.ServerError(c)
			return
		}
		if !moderatorManagesProperty(&moderator, property.ID) {
			response.Forbidden(c)
			return
		}
	case constants.RoleOwner:
		// Chủ nhà chỉ được ẩn chỗ ở của mình
		if property.UserID != currentUserID || request.Status != constants.PropertyStatusHidden {
			response.Forbidden(c)
			return
		}
	default:
		response.Forbidden(c)
		return
	}

	property.Status = request.Status
	if err := property.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()
	response.Success(c, gin.H{"message": "Trạng thái chỗ ở đã được cập nhật"})
}

// GetPropertiesByOwner lấy danh sách chỗ ở của chủ nhà hiện tại
func GetPropertiesByOwner(c *gin.Context) {
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

	var total int64
	if err := config.DB.Model(&models.Property{}).
		Where("user_id = ?", currentUserID).
		Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var properties []models.Property
	if err := config.DB.
		Preload("City").
		Preload("Country").
		Preload("PropertyType").
		Preload("Reviews").
		Where("user_id = ?", currentUserID).
		Order("update_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(property))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, int(total))
}

// GetPendingProperties lấy danh sách chỗ ở chờ duyệt (moderator/admin)
func GetPendingProperties(c *gin.Context) {
	currentUserID, currentUserRole, ok := getAuthUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	tx := config.DB.Model(&models.Property{}).
		Preload("City").
		Preload("Country").
		Preload("PropertyType").
		Where("status = ?", constants.PropertyStatusPending)

	if currentUserRole == constants.RoleModerator {
		var moderator models.User
		if err := config.DB.First(&moderator, currentUserID).Error; err != nil {
			response.ServerError(c)
			return
		}
		if len(moderator.PropertyIDs) == 0 {
			response.SuccessWithTotal(c, []dto.PropertyResponse{}, 0)
			return
		}
		tx = tx.Where("id IN ?", []int64(moderator.PropertyIDs))
	}

	var properties []models.Property
	if err := tx.Order("create_at ASC").Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(property))
	}

	response.SuccessWithTotal(c, propertyResponses, len(propertyResponses))
}
