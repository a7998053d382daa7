package booking

import (
	"context"

	"turfbook/models"
)

// CreateBookingRequest carries everything needed to place a booking. SlotID
// must name a slot in the date's generated grid. RepeatWeeks > 1 books the
// same slot on the following weeks as well.
type CreateBookingRequest struct {
	Court       string `json:"court" binding:"required"`
	Date        string `json:"date" binding:"required"`
	SlotID      string `json:"slotId" binding:"required"`
	UserName    string `json:"userName" binding:"required"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
	Coupon      string `json:"coupon"`
	RepeatWeeks int    `json:"repeatWeeks"`
}

// WaitlistRequest asks for a spot on the waitlist for a full slot.
type WaitlistRequest struct {
	Court     string `json:"court" binding:"required"`
	Date      string `json:"date" binding:"required"`
	SlotID    string `json:"slotId" binding:"required"`
	SlotLabel string `json:"slotLabel"`
	UserName  string `json:"userName" binding:"required"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// BookingService is the application core behind the HTTP surface.
type BookingService interface {
	ListSlots(ctx context.Context, dateISO, courtID string) ([]models.AnnotatedSlot, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, f models.BookingFilter) ([]models.Booking, error)
	ListBookingsRange(ctx context.Context, startISO, endISO, court string) ([]models.Booking, error)

	ConfirmBooking(ctx context.Context, id, actor string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, actor string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	DeleteAllBookings(ctx context.Context, date string) (int, error)

	JoinWaitlist(ctx context.Context, req WaitlistRequest) (*models.WishlistEntry, error)
	ListWaitlist(ctx context.Context, f models.WishlistFilter) ([]models.WishlistEntry, error)
	DeleteWaitlistEntry(ctx context.Context, id string) error
	ConvertWaitlistEntry(ctx context.Context, id string) (string, error)
}
