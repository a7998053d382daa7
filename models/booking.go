package models

import "time"

// Booking statuses. A cancelled booking may still be hard-deleted.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is the canonical booking record. Persisted documents may carry
// older field variants (startISO, startAt, price, ...); the repository
// boundary normalizes them into this shape before the core ever sees them.
type Booking struct {
	ID        string    `firestore:"-" bson:"id" json:"id"`
	Court     string    `firestore:"court" bson:"court" json:"court"`
	Date      string    `firestore:"date" bson:"date" json:"date"` // "YYYY-MM-DD"
	SlotID    string    `firestore:"slotId,omitempty" bson:"slotId,omitempty" json:"slotId,omitempty"`
	SlotLabel string    `firestore:"slotLabel,omitempty" bson:"slotLabel,omitempty" json:"slotLabel,omitempty"`
	Start     time.Time `firestore:"start,omitempty" bson:"start,omitempty" json:"start,omitzero"`
	End       time.Time `firestore:"end,omitempty" bson:"end,omitempty" json:"end,omitzero"`

	Amount   float64 `firestore:"amount" bson:"amount" json:"amount"`
	Discount float64 `firestore:"discount,omitempty" bson:"discount,omitempty" json:"discount,omitempty"`
	Coupon   string  `firestore:"coupon,omitempty" bson:"coupon,omitempty" json:"coupon,omitempty"`

	Status   string `firestore:"status" bson:"status" json:"status"`
	UserName string `firestore:"userName" bson:"userName" json:"userName"`
	Phone    string `firestore:"phone,omitempty" bson:"phone,omitempty" json:"phone,omitempty"`
	Notes    string `firestore:"notes,omitempty" bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt   time.Time  `firestore:"createdAt,serverTimestamp" bson:"createdAt" json:"createdAt"`
	ConfirmedAt *time.Time `firestore:"confirmedAt,omitempty" bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	ConfirmedBy string     `firestore:"confirmedBy,omitempty" bson:"confirmedBy,omitempty" json:"confirmedBy,omitempty"`
	CancelledAt *time.Time `firestore:"cancelledAt,omitempty" bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancelledBy string     `firestore:"cancelledBy,omitempty" bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`

	// Set when the booking was produced by a wishlist conversion.
	ConvertedFromWishlist string `firestore:"convertedFromWishlist,omitempty" bson:"convertedFromWishlist,omitempty" json:"convertedFromWishlist,omitempty"`
}

// HasTimeRange reports whether the record carries a usable start/end pair.
func (b *Booking) HasTimeRange() bool {
	return !b.Start.IsZero() && !b.End.IsZero() && b.Start.Before(b.End)
}

// IsActive reports whether the booking still holds capacity.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// BookingFilter narrows booking queries. Zero values mean "any".
type BookingFilter struct {
	Date   string
	Court  string
	Status string
}
