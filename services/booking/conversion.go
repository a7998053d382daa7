package booking

import (
	"context"

	"go.uber.org/zap"

	"turfbook/models"
	"turfbook/utils"
)

// ConvertWaitlistEntry promotes an open waitlist entry into a pending
// booking. When a remote conversion endpoint is configured it owns the
// transaction; if it is unreachable the service logs one warning and falls
// back to the local transactional conversion, which gives the same
// exclusivity guarantee.
func (s *DefaultBookingService) ConvertWaitlistEntry(ctx context.Context, id string) (string, error) {
	if s.Remote != nil {
		bookingID, err := s.Remote.Convert(ctx, id)
		switch {
		case err == nil:
			s.notifyConverted(ctx, id, bookingID)
			return bookingID, nil
		case IsConflict(err) || IsNotFound(err):
			return "", err
		default:
			utils.GetLogger().Warn("remote conversion unavailable, using local transaction",
				zap.String("wishlistId", id),
				zap.Error(err))
		}
	}

	cat := NewCatalog(s.site())
	engine := NewAvailabilityEngine(cat)

	amountFor := func(entry models.WishlistEntry) float64 {
		if rng, ok := wishlistRange(&entry); ok {
			return cat.PriceFor(entry.Court, rng.Start)
		}
		return cat.AmountFor(entry.Court)
	}
	// The repository already rejects an exact slot-id claim; when the entry's
	// time range is derivable, re-run the full capacity check as well so
	// overlapping bookings under other slot ids are caught too.
	extra := func(entry models.WishlistEntry, existing []models.Booking) error {
		rng, ok := wishlistRange(&entry)
		if !ok {
			return nil
		}
		if !engine.IsBookable(rng, entry.Court, existing) {
			return NewConflictError("slot has no remaining capacity")
		}
		return nil
	}

	bookingID, err := s.Wishlist.Convert(ctx, id, amountFor, extra)
	if err != nil {
		return "", fromRepoError(err, "converting waitlist entry")
	}
	s.notifyConverted(ctx, id, bookingID)
	return bookingID, nil
}

func (s *DefaultBookingService) notifyConverted(ctx context.Context, wishlistID, bookingID string) {
	if s.Notifier == nil {
		return
	}
	entry, err := s.Wishlist.GetByID(ctx, wishlistID)
	if err != nil {
		return
	}
	s.Notifier.WishlistConverted(ctx, *entry, bookingID)
}

func wishlistRange(entry *models.WishlistEntry) (models.Slot, bool) {
	b := models.Booking{
		Date:      entry.Date,
		SlotID:    entry.SlotID,
		SlotLabel: entry.SlotLabel,
	}
	return bookingRange(&b)
}
