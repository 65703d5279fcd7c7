package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
)

// GetUser looks a consumer up by consumerNo and mobile. Absence is not an
// error: the body carries {"user": null}.
func GetUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		consumerNo := c.Query("consumerNo")
		mobile := c.Query("mobile")

		user, err := s.GetUser(consumerNo, mobile)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"user": user})
	}
}

// CheckUser matches by email or mobile; the registration screen uses it to
// detect an existing account.
func CheckUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		mobile := c.Query("mobile")

		user, err := s.GetUserByEmailOrMobile(email, mobile)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"user": user})
	}
}

// CreateUser registers a new consumer.
func CreateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.CreateUser(&user); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(201, gin.H{"message": "User created"})
	}
}
