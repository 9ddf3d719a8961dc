package controllers

import (
	"homestay/config"
	"homestay/models"
	"homestay/response"

	"github.com/gin-gonic/gin"
)

// GetCountries lấy danh sách quốc gia
func GetCountries(c *gin.Context) {
	var countries []models.Country
	if err := config.DB.Order("name ASC").Find(&countries).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, countries, len(countries))
}

// GetCities lấy danh sách thành phố, lọc theo quốc gia nếu có
func GetCities(c *gin.Context) {
	tx := config.DB.Order("name ASC")
	if countryId := c.Query("countryId"); countryId != "" {
		tx = tx.Where("country_id = ?", countryId)
	}

	var cities []models.City
	if err := tx.Find(&cities).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, cities, len(cities))
}

// GetAmenities lấy danh sách tiện nghi đang hoạt động
func GetAmenities(c *gin.Context) {
	var amenities []models.Amenity
	if err := config.DB.Where("status = ?", 1).Order("name ASC").Find(&amenities).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, amenities, len(amenities))
}

// CreateAmenity tạo tiện nghi mới (admin)
func CreateAmenity(c *gin.Context) {
	var request struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	amenity := models.Amenity{Name: request.Name, Status: 1}
	if err := config.DB.Create(&amenity).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, amenity)
}

// GetPropertyTypes lấy danh sách loại chỗ ở
func GetPropertyTypes(c *gin.Context) {
	var propertyTypes []models.PropertyType
	if err := config.DB.Where("status = ?", 1).Order("name ASC").Find(&propertyTypes).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, propertyTypes, len(propertyTypes))
}

// CreatePropertyType tạo loại chỗ ở mới (admin)
func CreatePropertyType(c *gin.Context) {
	var request struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	propertyType := models.PropertyType{Name: request.Name, Status: 1}
	if err := config.DB.Create(&propertyType).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, propertyType)
}

// GetHouseRules lấy danh sách nội quy
func GetHouseRules(c *gin.Context) {
	var houseRules []models.HouseRule
	if err := config.DB.Where("status = ?", 1).Order("name ASC").Find(&houseRules).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, houseRules, len(houseRules))
}

// CreateHouseRule tạo nội quy mới (admin)
func CreateHouseRule(c *gin.Context) {
	var request struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	houseRule := models.HouseRule{Name: request.Name, Status: 1}
	if err := config.DB.Create(&houseRule).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, houseRule)
}
