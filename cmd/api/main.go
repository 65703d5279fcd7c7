package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/asharma-dev/lpg-booking-backend/internal/database"
	"github.com/asharma-dev/lpg-booking-backend/internal/handlers"
	"github.com/asharma-dev/lpg-booking-backend/internal/middleware"
	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis is optional; without it the admin view is served uncached.
	if err := services.InitCache(); err != nil {
		log.Printf("Cache initialization warning: %v", err)
	}

	// Initialize snapshot export (S3 or local fallback)
	if err := services.InitExport(); err != nil {
		log.Fatalf("Failed to initialize export storage: %v", err)
	}

	// Live admin event feed
	hub := services.NewHub()
	go hub.Run()

	s := store.New(db)

	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Front-end entry point and assets
	r.StaticFile("/", "./static/index.html")
	r.Static("/static", "./static")

	api := r.Group("/api")
	{
		// Consumer routes
		users := api.Group("/users")
		{
			users.GET("", handlers.GetUser(s))
			users.GET("/check", handlers.CheckUser(s))
			users.POST("", handlers.CreateUser(s))
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", handlers.GetBookings(s))
			bookings.GET("/single", handlers.GetBooking(s))
			bookings.POST("", handlers.CreateBooking(s))
			bookings.PUT("/:id", handlers.UpdateBooking(s))
		}

		payments := api.Group("/payments")
		{
			payments.GET("", handlers.QueryPayments(s))
			payments.POST("", handlers.CreatePayment(s))
			payments.PUT("/:id", handlers.UpdatePayment(s))
		}

		api.POST("/feedback", handlers.CreateFeedback(s))
		api.POST("/deliveryIssues", handlers.CreateDeliveryIssue(s))
		api.POST("/sosAlerts", handlers.CreateSOSAlert(s, hub))
		api.POST("/sms", handlers.SendSMS())

		// Admin surface
		api.POST("/admin/login", handlers.AdminLogin())

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth())
		{
			admin.GET("/users", handlers.ListUsers(s))
			admin.GET("/bookings", handlers.ListBookings(s))
			admin.GET("/payments", handlers.ListPayments(s))
			admin.GET("/feedback", handlers.ListFeedback(s))
			admin.GET("/deliveryIssues", handlers.ListDeliveryIssues(s))
			admin.GET("/sosAlerts", handlers.ListSOSAlerts(s))
			admin.GET("/feed", handlers.AdminFeed(hub))
			admin.POST("/export", handlers.ExportDatabase(s))
		}

		api.GET("/view-database", middleware.AdminAuth(), handlers.ViewDatabase(s))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
