package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turfbook/models"
)

const day = "2026-03-14"

func TestOverlaps(t *testing.T) {
	a := mustSlot(day, "1800-1900")
	assert.True(t, Overlaps(a, mustSlot(day, "1830-1930")))
	assert.True(t, Overlaps(a, mustSlot(day, "1800-1900")))
	assert.True(t, Overlaps(a, mustSlot(day, "1700-2000")))
	// touching endpoints do not overlap
	assert.False(t, Overlaps(a, mustSlot(day, "1900-2000")))
	assert.False(t, Overlaps(a, mustSlot(day, "1700-1800")))
}

func TestIsBookableExclusiveCourt(t *testing.T) {
	engine := NewAvailabilityEngine(NewCatalog(exclusiveSite()))
	existing := []models.Booking{activeBooking("7A", day, "1800-1900")}

	assert.False(t, engine.IsBookable(mustSlot(day, "1800-1900"), "7A", existing))
	assert.False(t, engine.IsBookable(mustSlot(day, "1830-1930"), "7A", existing))
	assert.True(t, engine.IsBookable(mustSlot(day, "1900-2000"), "7A", existing))
	assert.True(t, engine.IsBookable(mustSlot(day, "1700-1800"), "7A", existing))
}

func TestIsBookableSharedResource(t *testing.T) {
	engine := NewAvailabilityEngine(NewCatalog(testSite()))
	slot := mustSlot(day, "1800-1900")

	t.Run("empty pitch takes anything", func(t *testing.T) {
		assert.True(t, engine.IsBookable(slot, "5A", nil))
		assert.True(t, engine.IsBookable(slot, "7A", nil))
	})

	t.Run("one half leaves one unit of pitch", func(t *testing.T) {
		existing := []models.Booking{activeBooking("5A", day, "1800-1900")}
		// capacity is tracked per resource, not per court: 1+1 <= 2
		assert.True(t, engine.IsBookable(slot, "5B", existing))
		assert.True(t, engine.IsBookable(slot, "5A", existing))
		assert.False(t, engine.IsBookable(slot, "7A", existing))
	})

	t.Run("full ground blocks everything", func(t *testing.T) {
		existing := []models.Booking{activeBooking("7A", day, "1800-1900")}
		assert.False(t, engine.IsBookable(slot, "5A", existing))
		assert.False(t, engine.IsBookable(slot, "5B", existing))
		assert.False(t, engine.IsBookable(slot, "7A", existing))
	})

	t.Run("both halves fill the pitch", func(t *testing.T) {
		existing := []models.Booking{
			activeBooking("5A", day, "1800-1900"),
			activeBooking("5B", day, "1800-1900"),
		}
		assert.False(t, engine.IsBookable(slot, "5A", existing))
		assert.False(t, engine.IsBookable(slot, "5B", existing))
	})
}

func TestIsBookableCancellationReleasesCapacity(t *testing.T) {
	engine := NewAvailabilityEngine(NewCatalog(exclusiveSite()))
	b := activeBooking("7A", day, "1800-1900")
	b.Status = models.BookingStatusCancelled

	assert.True(t, engine.IsBookable(mustSlot(day, "1800-1900"), "7A", []models.Booking{b}))
}

func TestIsBookableLegacyRecords(t *testing.T) {
	engine := NewAvailabilityEngine(NewCatalog(exclusiveSite()))
	slot := mustSlot(day, "1800-1900")

	t.Run("range derived from slot label", func(t *testing.T) {
		existing := []models.Booking{{
			Court:     "7A",
			Date:      day,
			SlotLabel: "6:00 PM - 7:00 PM",
			Status:    models.BookingStatusConfirmed,
		}}
		assert.False(t, engine.IsBookable(slot, "7A", existing))
	})

	t.Run("range derived from slot id", func(t *testing.T) {
		existing := []models.Booking{{
			Court:  "7A",
			Date:   day,
			SlotID: "1800-1900",
			Status: models.BookingStatusPending,
		}}
		assert.False(t, engine.IsBookable(slot, "7A", existing))
	})

	t.Run("unresolvable record is skipped", func(t *testing.T) {
		existing := []models.Booking{{
			Court:  "7A",
			Date:   day,
			SlotID: "mystery",
			Status: models.BookingStatusConfirmed,
		}}
		assert.True(t, engine.IsBookable(slot, "7A", existing))
	})
}

func TestOccupiedUnits(t *testing.T) {
	engine := NewAvailabilityEngine(NewCatalog(testSite()))
	slot := mustSlot(day, "1800-1900")
	existing := []models.Booking{
		activeBooking("5A", day, "1800-1900"),
		activeBooking("7A", day, "1900-2000"), // touching, not counted
		activeBooking("5B", day, "1830-1930"),
	}
	assert.Equal(t, 2, engine.OccupiedUnits(slot, "main-pitch", existing))
}
