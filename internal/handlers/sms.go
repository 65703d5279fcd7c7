package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/pkg/utils"
)

type smsInput struct {
	Mobile  string `json:"mobile" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendSMS forwards a notification message to the SMS gateway (or the log,
// when no gateway is configured).
func SendSMS() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input smsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := utils.SendSMS(input.Mobile, input.Message); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": "SMS sent"})
	}
}
