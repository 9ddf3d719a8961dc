package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"homestay/config"
	"homestay/dto"
	"homestay/jobs"
	"homestay/routes"
	"homestay/services"
	"homestay/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	// if err := config.DB.AutoMigrate(&models.User{}, &models.Country{}, &models.City{},
	// 	&models.Amenity{}, &models.PropertyType{}, &models.HouseRule{}, &models.Property{},
	// 	&models.Room{}, &models.Booking{}, &models.Payment{}, &models.Review{},
	// 	&models.CancellationPolicy{}, &models.CancellationRule{}); err != nil {
	// 	panic("Failed to migrate tables: " + err.Error())
	// }
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	dto.RegisterCustomValidations()

	sweepService := services.NewSweepService(services.SweepServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetBookingCompleter(sweepService)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	go func() {
		pingURL := os.Getenv("SELF_PING_URL")
		if pingURL == "" {
			return
		}
		for {
			resp, err := http.Get(pingURL)
			if err != nil {
				log.Printf("Error pinging /ping endpoint: %v", err)
			} else {
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				log.Printf("Ping response: %s", string(body))
			}
			time.Sleep(5 * time.Minute)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
