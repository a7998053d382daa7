package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/models"
)

func TestBookingFromDoc(t *testing.T) {
	t.Run("modern shape", func(t *testing.T) {
		b := BookingFromDoc("b1", map[string]interface{}{
			"court":    "7A",
			"date":     "2026-03-14",
			"slotId":   "1800-1900",
			"start":    "2026-03-14T18:00:00Z",
			"end":      "2026-03-14T19:00:00Z",
			"amount":   float64(2500),
			"status":   "confirmed",
			"userName": "Asha",
			"phone":    "+91900000001",
		})
		assert.Equal(t, "b1", b.ID)
		assert.Equal(t, "7A", b.Court)
		assert.Equal(t, "confirmed", b.Status)
		assert.Equal(t, 2500.0, b.Amount)
		require.True(t, b.HasTimeRange())
		assert.Equal(t, time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC), b.Start.UTC())
	})

	t.Run("legacy field variants", func(t *testing.T) {
		b := BookingFromDoc("b2", map[string]interface{}{
			"courtId":  "5A",
			"date":     "2026-03-14",
			"slot":     "0600_0700",
			"startISO": "2026-03-14T06:00:00Z",
			"endAt":    "2026-03-14T07:00:00Z",
			"price":    1500,
			"name":     "Ravi",
		})
		assert.Equal(t, "5A", b.Court)
		assert.Equal(t, "0600_0700", b.SlotID)
		assert.Equal(t, 1500.0, b.Amount)
		assert.Equal(t, "Ravi", b.UserName)
		assert.True(t, b.HasTimeRange())
	})

	t.Run("missing status defaults to pending", func(t *testing.T) {
		b := BookingFromDoc("b3", map[string]interface{}{"court": "7A", "date": "2026-03-14"})
		assert.Equal(t, models.BookingStatusPending, b.Status)
		assert.False(t, b.HasTimeRange())
		assert.True(t, b.IsActive())
	})
}

func TestWishlistFromDoc(t *testing.T) {
	w := WishlistFromDoc("w1", map[string]interface{}{
		"date":   "2026-03-14",
		"court":  "5B",
		"slotId": "1800-1900",
		"name":   "Meera",
		"price":  1500,
	})
	assert.Equal(t, "w1", w.ID)
	assert.Equal(t, "5B", w.Court)
	assert.Equal(t, "Meera", w.UserName)
	assert.Equal(t, 1500.0, w.Amount)
	assert.Equal(t, models.WishlistStatusOpen, w.Status)
}
