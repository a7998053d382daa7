package bookingRepo

import (
	"context"

	"turfbook/models"
)

// AvailabilityCheck re-validates a candidate booking against the bookings
// already persisted for its date. It runs inside the store transaction so
// the decision and the write commit atomically; returning an error aborts
// the transaction with no writes.
type AvailabilityCheck func(existing []models.Booking) error

// BookingRepository is the persistence boundary for bookings.
type BookingRepository interface {
	// Query returns the bookings matching the filter, ordered by slot id
	// then creation time.
	Query(ctx context.Context, f models.BookingFilter) ([]models.Booking, error)
	// QueryRange returns bookings whose date falls in [startISO, endISO],
	// optionally restricted to one court.
	QueryRange(ctx context.Context, startISO, endISO, court string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// CreateAtomic persists a new booking only if check passes against the
	// bookings visible inside the same transaction. Returns the new id.
	CreateAtomic(ctx context.Context, b *models.Booking, check AvailabilityCheck) (string, error)

	// SetStatus updates the status and stamps the acting operator. The
	// store assigns the transition timestamp.
	SetStatus(ctx context.Context, id, status, actor string) error
	Delete(ctx context.Context, id string) error
	// DeleteAllForDate removes every booking on the date in one batch and
	// reports how many were deleted. An empty date clears all bookings.
	DeleteAllForDate(ctx context.Context, date string) (int, error)
}
