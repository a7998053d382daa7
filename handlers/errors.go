package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingSvc "turfbook/services/booking"
)

// writeServiceError maps booking service errors onto HTTP responses:
// notFound 404, conflict 409, serviceUnavailable 503, everything else 502.
func writeServiceError(c *gin.Context, err error) {
	var be *bookingSvc.BookingError
	if !errors.As(err, &be) {
		getLogger(c).Error("unexpected handler error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage backend failed"})
		return
	}
	switch be.Code {
	case bookingSvc.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": be.Message})
	case bookingSvc.CodeConflict:
		c.JSON(http.StatusConflict, gin.H{"error": be.Message})
	case bookingSvc.CodeServiceUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": be.Message})
	default:
		getLogger(c).Error("persistence error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": be.Message})
	}
}
