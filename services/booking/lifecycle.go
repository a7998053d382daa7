package booking

import (
	"context"

	"turfbook/models"
)

// ConfirmBooking moves a pending booking to confirmed. Confirming an already
// confirmed or cancelled booking is rejected.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, id, actor string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, "loading booking")
	}
	switch b.Status {
	case models.BookingStatusCancelled:
		return nil, NewConflictError("cannot confirm a cancelled booking")
	case models.BookingStatusConfirmed:
		return nil, NewConflictError("booking is already confirmed")
	}
	if err := s.Repo.SetStatus(ctx, id, models.BookingStatusConfirmed, actor); err != nil {
		return nil, fromRepoError(err, "confirming booking")
	}
	b.Status = models.BookingStatusConfirmed
	b.ConfirmedBy = actor
	if s.Notifier != nil {
		s.Notifier.BookingConfirmed(ctx, *b)
	}
	return b, nil
}

// CancelBooking releases the booking's capacity. Pending and confirmed
// bookings may be cancelled; cancelling twice is rejected.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, actor string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, "loading booking")
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, NewConflictError("booking is already cancelled")
	}
	if err := s.Repo.SetStatus(ctx, id, models.BookingStatusCancelled, actor); err != nil {
		return nil, fromRepoError(err, "cancelling booking")
	}
	b.Status = models.BookingStatusCancelled
	b.CancelledBy = actor
	if s.Notifier != nil {
		s.Notifier.BookingCancelled(ctx, *b)
	}
	return b, nil
}

// DeleteBooking hard-removes a booking. Only cancelled bookings may be
// deleted; active ones must be cancelled first so capacity accounting stays
// explicit.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fromRepoError(err, "loading booking")
	}
	if b.IsActive() {
		return NewConflictError("only cancelled bookings can be deleted")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "deleting booking")
	}
	return nil
}

// DeleteAllBookings purges every booking on a date regardless of status.
// This is the operator's reset hatch, not part of the normal lifecycle.
func (s *DefaultBookingService) DeleteAllBookings(ctx context.Context, date string) (int, error) {
	n, err := s.Repo.DeleteAllForDate(ctx, date)
	if err != nil {
		return 0, fromRepoError(err, "purging bookings")
	}
	return n, nil
}
