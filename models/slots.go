package models

import "time"

// Slot is a candidate bookable interval, derived from business hours and the
// court's duration/buffer. Slots are never persisted; they are recomputed on
// every availability check.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotID renders the compact identifier used in persisted bookings,
// e.g. "1800-1900".
func (s Slot) SlotID() string {
	return s.Start.Format("1504") + "-" + s.End.Format("1504")
}

// AnnotatedSlot is a slot as presented to the booking UI: whether it can be
// booked right now and at what price.
type AnnotatedSlot struct {
	Slot
	SlotID   string  `json:"slotId"`
	Bookable bool    `json:"bookable"`
	Price    float64 `json:"price"`
}
