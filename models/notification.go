package models

import "time"

// AdminNotification is an entry in the operator's notification feed.
type AdminNotification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // e.g. "booking-pending", "booking-confirmed", "sms-mock"
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	BookingID string    `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
