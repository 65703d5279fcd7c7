package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
)

// CreateFeedback files a consumer comment.
func CreateFeedback(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var feedback models.Feedback
		if err := c.ShouldBindJSON(&feedback); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.CreateFeedback(&feedback); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(201, gin.H{"message": "Feedback created"})
	}
}

// CreateDeliveryIssue files a problem report against a booking.
func CreateDeliveryIssue(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var issue models.DeliveryIssue
		if err := c.ShouldBindJSON(&issue); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.CreateDeliveryIssue(&issue); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(201, gin.H{"message": "Delivery issue created"})
	}
}

// CreateSOSAlert records an emergency alert and pushes it to any connected
// admin dashboards.
func CreateSOSAlert(s *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var alert models.SOSAlert
		if err := c.ShouldBindJSON(&alert); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.CreateSOSAlert(&alert); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		hub.SendSOSAlert(alert)
		c.JSON(201, gin.H{"message": "SOS alert created"})
	}
}
