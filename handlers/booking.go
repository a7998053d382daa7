package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/models"
	bookingSvc "turfbook/services/booking"
)

// CreateBookingHandler places a booking. POST /api/bookings
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req bookingSvc.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bookings": created})
}

// ListBookingsHandler returns bookings for one date, or a date range when
// start/end are given. GET /api/bookings?date=... or ?start=...&end=...
func (hb *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	court := c.Query("court")
	if start, end := c.Query("start"), c.Query("end"); start != "" && end != "" {
		bookings, err := hb.Bookings.ListBookingsRange(c.Request.Context(), start, end, court)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	f := models.BookingFilter{
		Date:   c.Query("date"),
		Court:  court,
		Status: c.Query("status"),
	}
	bookings, err := hb.Bookings.ListBookings(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler returns one booking. GET /api/bookings/:id
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmBookingHandler confirms a pending booking. PUT /api/bookings/:id/confirm
func (hb *HandlerBundle) ConfirmBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.ConfirmBooking(c.Request.Context(), c.Param("id"), adminActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler cancels a booking. PUT /api/bookings/:id/cancel
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.CancelBooking(c.Request.Context(), c.Param("id"), adminActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler hard-deletes a cancelled booking. DELETE /api/bookings/:id
func (hb *HandlerBundle) DeleteBookingHandler(c *gin.Context) {
	if err := hb.Bookings.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// PurgeBookingsHandler removes every booking on a date.
// DELETE /api/bookings?date=YYYY-MM-DD
func (hb *HandlerBundle) PurgeBookingsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	n, err := hb.Bookings.DeleteAllBookings(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func adminActor(c *gin.Context) string {
	if actor := c.GetString("adminUser"); actor != "" {
		return actor
	}
	return "admin"
}
