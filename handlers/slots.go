package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetSlotsHandler returns the day's slot grid for a court, annotated with
// price and availability. GET /api/slots?date=YYYY-MM-DD&court=ID
func (hb *HandlerBundle) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	court := c.Query("court")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if court == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court is required"})
		return
	}

	slots, err := hb.Bookings.ListSlots(c.Request.Context(), date, court)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"court": court,
		"slots": slots,
	})
}
