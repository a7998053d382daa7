package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/models"
	bookingSvc "turfbook/services/booking"
)

// JoinWaitlistHandler records a waitlist request for a full slot.
// POST /api/waitlist
func (hb *HandlerBundle) JoinWaitlistHandler(c *gin.Context) {
	var req bookingSvc.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	entry, err := hb.Bookings.JoinWaitlist(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListWaitlistHandler returns waitlist entries, optionally for one date.
// GET /api/waitlist?date=YYYY-MM-DD
func (hb *HandlerBundle) ListWaitlistHandler(c *gin.Context) {
	entries, err := hb.Bookings.ListWaitlist(c.Request.Context(), models.WishlistFilter{Date: c.Query("date")})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"waitlist": entries})
}

// DeleteWaitlistEntryHandler removes an entry. DELETE /api/waitlist/:id
func (hb *HandlerBundle) DeleteWaitlistEntryHandler(c *gin.Context) {
	if err := hb.Bookings.DeleteWaitlistEntry(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ConvertWaitlistEntryHandler promotes an open entry into a pending booking.
// POST /api/waitlist/:id/convert
func (hb *HandlerBundle) ConvertWaitlistEntryHandler(c *gin.Context) {
	bookingID, err := hb.Bookings.ConvertWaitlistEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID})
}
