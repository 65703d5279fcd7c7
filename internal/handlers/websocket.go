package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/internal/services"
)

// AdminFeed upgrades the connection and attaches it to the live event hub.
func AdminFeed(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		services.HandleWebSocket(hub, c.Writer, c.Request)
	}
}
