package routes

import (
	"context"
	"net/http"

	"homestay/config"
	"homestay/constants"
	"homestay/controllers"
	middlewares "homestay/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.InitNotifier(m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.POST("/verifyCode", controllers.VerifyCode)

	v1.GET("/profile", controllers.GetProfile)
	v1.PUT("/users", middlewares.AuthMiddleware(), controllers.UpdateUser)
	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleModerator, constants.RoleAdmin), controllers.GetUsers)
	v1.GET("/users/:id", middlewares.AuthMiddleware(constants.RoleModerator, constants.RoleAdmin), controllers.GetUserByID)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ChangeUserStatus)
	v1.POST("/moderators", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateModerator)
	v1.PUT("/moderatorProperties", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.AssignProperties)

	v1.GET("/property", controllers.GetProperties)
	v1.GET("/propertySearch", controllers.SearchProperties)
	v1.GET("/property/:id", controllers.GetPropertyDetail)
	v1.POST("/property", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.CreateProperty)
	v1.PUT("/propertyUpdate", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.UpdateProperty)
	v1.PUT("/propertyStatus", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleModerator, constants.RoleAdmin), controllers.ChangePropertyStatus)
	v1.GET("/propertyOwner", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.GetPropertiesByOwner)
	v1.GET("/propertyPending", middlewares.AuthMiddleware(constants.RoleModerator, constants.RoleAdmin), controllers.GetPendingProperties)

	v1.GET("/room", controllers.GetRoomsByProperty)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.POST("/room", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.ChangeRoomStatus)
	v1.GET("/checkRoom", controllers.GetRoomBookingDates)
	v1.GET("/checkAvailability", controllers.CheckRoomAvailability)

	v1.POST("/checkout", middlewares.AuthMiddleware(), controllers.CreateCheckoutSession)
	v1.GET("/checkout/return", controllers.CheckoutReturn)
	v1.GET("/booking", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleModerator, constants.RoleAdmin), controllers.GetBookings)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), controllers.GetBookingsByUser)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(), controllers.CancelBooking)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.ChangeBookingStatus)
	v1.GET("/booking/:id/refundPreview", middlewares.AuthMiddleware(), controllers.PreviewRefund)

	v1.GET("/reviews", controllers.GetReviewsByProperty)
	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.PUT("/reviewUpdate", middlewares.AuthMiddleware(), controllers.UpdateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteReview)
	v1.PUT("/reviewModerate", middlewares.AuthMiddleware(constants.RoleModerator, constants.RoleAdmin), controllers.ModerateReview)

	v1.GET("/policy", controllers.GetPolicyByProperty)
	v1.PUT("/policyUpdate", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.UpdatePolicy)

	v1.GET("/payments", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.GetPayments)
	v1.GET("/payments/:id", middlewares.AuthMiddleware(), controllers.GetPaymentDetail)

	v1.GET("/countries", controllers.GetCountries)
	v1.GET("/cities", controllers.GetCities)
	v1.GET("/amenities", controllers.GetAmenities)
	v1.POST("/amenities", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateAmenity)
	v1.GET("/propertyTypes", controllers.GetPropertyTypes)
	v1.POST("/propertyTypes", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreatePropertyType)
	v1.GET("/houseRules", controllers.GetHouseRules)
	v1.POST("/houseRules", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateHouseRule)

	v1.GET("/ownerRevenue", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.GetOwnerRevenue)
	v1.GET("/adminStats", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAdminStats)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
