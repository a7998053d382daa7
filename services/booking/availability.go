package booking

import (
	"go.uber.org/zap"

	"turfbook/models"
	"turfbook/utils"
)

// AvailabilityEngine decides whether a slot on a court can accept another
// booking, given the set of bookings already on the same date. Capacity is
// tracked per physical resource, so half-ground courts that share a pitch
// compete for the same units.
type AvailabilityEngine struct {
	Catalog Catalog
}

func NewAvailabilityEngine(cat Catalog) AvailabilityEngine {
	return AvailabilityEngine{Catalog: cat}
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(a, b models.Slot) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// OccupiedUnits sums the units of every non-cancelled booking that overlaps
// the slot on the given resource. Bookings whose time range cannot be
// established are skipped with a warning rather than blocking the slot.
func (e AvailabilityEngine) OccupiedUnits(slot models.Slot, resourceID string, existing []models.Booking) int {
	occupied := 0
	for i := range existing {
		b := &existing[i]
		if !b.IsActive() {
			continue
		}
		if e.Catalog.ResourceIDFor(b.Court) != resourceID {
			continue
		}
		rng, ok := bookingRange(b)
		if !ok {
			utils.GetLogger().Warn("booking has no resolvable time range, skipping in availability",
				zap.String("bookingId", b.ID),
				zap.String("court", b.Court),
				zap.String("date", b.Date))
			continue
		}
		if Overlaps(slot, rng) {
			occupied += e.Catalog.UnitsFor(b.Court)
		}
	}
	return occupied
}

// IsBookable reports whether the slot can take a booking on the court: the
// resource must still have capacity for the court's units on top of what the
// overlapping bookings already consume.
func (e AvailabilityEngine) IsBookable(slot models.Slot, courtID string, existing []models.Booking) bool {
	resourceID := e.Catalog.ResourceIDFor(courtID)
	capacity := e.Catalog.CapacityFor(resourceID)
	occupied := e.OccupiedUnits(slot, resourceID, existing)
	return occupied+e.Catalog.UnitsFor(courtID) <= capacity
}

// CheckBookable is IsBookable as an error, suitable for the repositories'
// transactional create hook.
func (e AvailabilityEngine) CheckBookable(slot models.Slot, courtID string) func(existing []models.Booking) error {
	return func(existing []models.Booking) error {
		if !e.IsBookable(slot, courtID, existing) {
			return NewConflictError("slot is no longer available")
		}
		return nil
	}
}

// bookingRange resolves the effective time interval of a booking. Canonical
// start/end fields win; otherwise the range is derived from the slot label or
// slot id and anchored onto the booking date.
func bookingRange(b *models.Booking) (models.Slot, bool) {
	if b.HasTimeRange() {
		return models.Slot{Start: b.Start, End: b.End}, true
	}
	for _, text := range []string{b.SlotLabel, b.SlotID} {
		if text == "" {
			continue
		}
		start, end, ok := utils.DeriveRangeFromSlotText(text)
		if !ok {
			continue
		}
		if s, e2, ok := utils.AnchorRange(b.Date, start, end); ok {
			return models.Slot{Start: s, End: e2}, true
		}
		return models.Slot{Start: start, End: end}, true
	}
	return models.Slot{}, false
}
