package handlers

import (
	"encoding/json"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
	"github.com/asharma-dev/lpg-booking-backend/pkg/utils"
)

type adminLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin compares the submitted credentials against the configured
// admin account and issues a token. Bad credentials answer 200 with
// success:false, never an HTTP error.
func AdminLogin() gin.HandlerFunc {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if passwordHash == "" {
		// Demo credential, matching the shipped front-end.
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash default admin password: %v", err)
		}
		passwordHash = string(hash)
	}

	return func(c *gin.Context) {
		var input adminLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(200, gin.H{"success": false})
			return
		}

		if input.Username != username ||
			bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(input.Password)) != nil {
			c.JSON(200, gin.H{"success": false})
			return
		}

		token, err := utils.GenerateAdminToken(input.Username)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"success": true, "token": token})
	}
}

// ListUsers returns the full users collection.
func ListUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.Users()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"users": users})
	}
}

func ListBookings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := s.Bookings()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"bookings": bookings})
	}
}

func ListPayments(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := s.Payments()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"payments": payments})
	}
}

func ListFeedback(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedback, err := s.Feedback()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"feedback": feedback})
	}
}

func ListDeliveryIssues(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		issues, err := s.DeliveryIssues()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"deliveryIssues": issues})
	}
}

func ListSOSAlerts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts, err := s.SOSAlerts()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"sosAlerts": alerts})
	}
}

// ViewDatabase returns every collection's full contents, for the admin
// inspection screen. The rendered body is cached for a short window.
func ViewDatabase(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cached, ok := services.GetDatabaseView(ctx); ok {
			c.Data(200, "application/json; charset=utf-8", cached)
			return
		}

		collections, err := s.Collections()
		if err != nil {
			respondError(c, err)
			return
		}

		body, err := json.Marshal(gin.H{"database": collections})
		if err != nil {
			respondError(c, err)
			return
		}

		services.SetDatabaseView(ctx, body)
		c.Data(200, "application/json; charset=utf-8", body)
	}
}

// ExportDatabase snapshots every collection to the configured export
// storage and returns the snapshot location.
func ExportDatabase(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := s.Collections()
		if err != nil {
			respondError(c, err)
			return
		}

		data, err := json.MarshalIndent(gin.H{"database": collections}, "", "  ")
		if err != nil {
			respondError(c, err)
			return
		}

		location, err := services.ExportSnapshot(data)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": "Export complete", "location": location})
	}
}
