package wishlistRepo

import (
	"context"

	"turfbook/models"
)

// AmountFn derives the booking amount for an entry that does not carry one
// (typically from the court catalogue price).
type AmountFn func(entry models.WishlistEntry) float64

// ConflictCheck is an optional extra validation run inside the conversion
// transaction against all bookings on the entry's date, on top of the
// mandatory exact-slot scan. It lets the caller re-run the full
// resource-capacity check when the entry's time range is derivable.
type ConflictCheck func(entry models.WishlistEntry, existing []models.Booking) error

// WishlistRepository is the persistence boundary for waitlist entries.
type WishlistRepository interface {
	Query(ctx context.Context, f models.WishlistFilter) ([]models.WishlistEntry, error)
	GetByID(ctx context.Context, id string) (*models.WishlistEntry, error)
	Create(ctx context.Context, w *models.WishlistEntry) (string, error)
	Delete(ctx context.Context, id string) error

	// Convert atomically promotes an open entry into a pending booking:
	// inside one transaction it re-reads the entry, scans the date's
	// bookings for a non-cancelled claim on the same slot id, runs the
	// extra check when provided, then writes the booking and marks the
	// entry converted. No writes happen on conflict. Returns the new
	// booking id.
	Convert(ctx context.Context, wishlistID string, amountFor AmountFn, extra ConflictCheck) (string, error)
}
