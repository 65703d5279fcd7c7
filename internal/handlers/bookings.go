package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
)

// GetBookings lists all bookings for a consumer.
func GetBookings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		consumerNo := c.Query("consumerNo")

		bookings, err := s.BookingsByConsumer(consumerNo)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"bookings": bookings})
	}
}

// GetBooking resolves a single booking by id and owning consumer.
func GetBooking(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Query("bookingId")
		consumerNo := c.Query("consumerNo")

		booking, err := s.GetBooking(bookingID, consumerNo)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"booking": booking})
	}
}

// CreateBooking places a new cylinder booking.
func CreateBooking(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.CreateBooking(&booking); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(201, gin.H{"message": "Booking created"})
	}
}

// UpdateBooking merges partial fields into an existing booking. The merged
// record goes back through schema validation before it is saved.
func UpdateBooking(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var update models.BookingUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.UpdateBooking(id, update); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(200, gin.H{"message": "Booking updated"})
	}
}
