package models

import "time"

// Wishlist entry statuses. Converted entries are immutable and carry the
// resulting booking id.
const (
	WishlistStatusOpen      = "open"
	WishlistStatusConverted = "converted"
)

// WishlistEntry holds a customer's request for a slot that was at capacity
// when they asked for it.
type WishlistEntry struct {
	ID        string `firestore:"-" bson:"id" json:"id"`
	Date      string `firestore:"date" bson:"date" json:"date"`
	Court     string `firestore:"court" bson:"court" json:"court"`
	SlotID    string `firestore:"slotId" bson:"slotId" json:"slotId"`
	SlotLabel string `firestore:"slotLabel,omitempty" bson:"slotLabel,omitempty" json:"slotLabel,omitempty"`

	UserName string  `firestore:"userName" bson:"userName" json:"userName"`
	Phone    string  `firestore:"phone,omitempty" bson:"phone,omitempty" json:"phone,omitempty"`
	Notes    string  `firestore:"notes,omitempty" bson:"notes,omitempty" json:"notes,omitempty"`
	Coupon   string  `firestore:"coupon,omitempty" bson:"coupon,omitempty" json:"coupon,omitempty"`
	Amount   float64 `firestore:"amount,omitempty" bson:"amount,omitempty" json:"amount,omitempty"`

	Status    string    `firestore:"status" bson:"status" json:"status"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" bson:"createdAt" json:"createdAt"`

	ConvertedToBookingID string     `firestore:"convertedToBookingId,omitempty" bson:"convertedToBookingId,omitempty" json:"convertedToBookingId,omitempty"`
	ConvertedAt          *time.Time `firestore:"convertedAt,omitempty" bson:"convertedAt,omitempty" json:"convertedAt,omitempty"`
}

// WishlistFilter narrows wishlist queries.
type WishlistFilter struct {
	Date string
}
