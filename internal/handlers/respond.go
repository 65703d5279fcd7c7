package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
)

// statusFor maps the store error taxonomy to response codes. An earlier
// revision of this service answered 500 for everything; the tagged mapping
// keeps the message bodies identical while making the kind visible.
func statusFor(err error) int {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return 400
	case errors.Is(err, store.ErrDuplicateKey):
		return 409
	case errors.Is(err, store.ErrNotFound):
		return 404
	case errors.Is(err, store.ErrStoreUnavailable):
		return 503
	default:
		return 500
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
