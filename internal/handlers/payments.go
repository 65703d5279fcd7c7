package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
)

// QueryPayments lists payments for a set of bookings, given as a
// comma-separated bookingIds query parameter.
func QueryPayments(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := strings.Split(c.Query("bookingIds"), ",")

		payments, err := s.PaymentsByBookings(ids)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"payments": payments})
	}
}

// CreatePayment records a payment. For compatibility with older clients the
// POST body may instead carry a bookingIds array, in which case the request
// is answered as a query, same as GET /api/payments.
func CreatePayment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var lookup struct {
			BookingIDs []string `json:"bookingIds"`
		}
		if err := json.Unmarshal(body, &lookup); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if lookup.BookingIDs != nil {
			payments, err := s.PaymentsByBookings(lookup.BookingIDs)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(200, gin.H{"payments": payments})
			return
		}

		var payment models.Payment
		if err := json.Unmarshal(body, &payment); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.CreatePayment(&payment); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(201, gin.H{"message": "Payment created"})
	}
}

// UpdatePayment merges partial fields into an existing payment.
func UpdatePayment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var update models.PaymentUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := s.UpdatePayment(id, update); err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateDatabaseView(c.Request.Context())
		c.JSON(200, gin.H{"message": "Payment updated"})
	}
}
